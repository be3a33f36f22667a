package Trees

import "iter"

// Tree is a self-adjusting search tree over distinct keys.
// Every method may restructure the tree, including the lookups, so a Tree must
// not be shared between goroutines without external locking. Methods implemented
// recursively are noted, otherwise they are iterative.
type Tree[T any] interface {
	//Insert v to the Tree. Returns an error that is ErrDuplicateKey if v is already
	//present, in which case the tree is unchanged.
	Insert(v T) error
	//Remove v from the Tree. Returns false if v isn't in the Tree. Absence isn't an error.
	Remove(v T) bool
	//Contains reports whether v is in the Tree. The lookup itself may reshape the tree.
	Contains(v T) bool
	//Size of the tree.
	Size() int
	//Empty reports whether the tree has no elements.
	Empty() bool
	//Clear the tree.
	Clear()
	//Walk returns the in-order sequence of (depth, element) pairs; the root has depth 0.
	//The tree must not be modified while the sequence is being consumed.
	Walk() iter.Seq2[int, T]
	//Corrupt returns whether the tree violates the search tree order anywhere.
	Corrupt() bool
}

var _ Tree[int] = (*SplayTree[int])(nil)
