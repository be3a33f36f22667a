package Stacks

type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Len() int
	Empty() bool
}

var _ Stack[int] = (*ArrayStack[int])(nil)

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
