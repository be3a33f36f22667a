package Stacks

// ArrayStack is a growable LIFO stack backed by a slice. The zero value is an empty stack
// ready to use. Popped slots are zeroed so the stack doesn't keep popped items alive.
type ArrayStack[T any] struct {
	content []T
}

func MakeArrayStack[T any](initCap uint) *ArrayStack[T] {
	return &ArrayStack[T]{make([]T, 0, initCap)}
}

func (this *ArrayStack[T]) Empty() bool {
	return len(this.content) == 0
}

func (this *ArrayStack[T]) Len() int {
	return len(this.content)
}

func (this *ArrayStack[T]) Push(item T) {
	this.content = append(this.content, item)
}

func (this *ArrayStack[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyStackError{}
	}
	last := len(this.content) - 1
	item = this.content[last]
	this.content[last] = *new(T)
	this.content = this.content[:last]
	return item, nil
}

// Peek returns the top of the stack, or the zero value of T if the stack is empty.
func (this *ArrayStack[T]) Peek() T {
	if this.Empty() {
		return *new(T)
	}
	return this.content[len(this.content)-1]
}

// Get the i-th item counting from the bottom of the stack. 0<=i<Len().
func (this *ArrayStack[T]) Get(i int) T {
	return this.content[i]
}

// Clear the stack. The capacity is kept.
func (this *ArrayStack[T]) Clear() {
	clear(this.content)
	this.content = this.content[:0]
}

// Shrink the capacity down to the current length.
func (this *ArrayStack[T]) Shrink() {
	nc := make([]T, len(this.content), len(this.content)|1)
	copy(nc, this.content)
	this.content = nc
}
