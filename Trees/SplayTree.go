package Trees

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-splay/Stacks"
	"github.com/g-m-twostay/go-splay/internal/invariants"
	"golang.org/x/exp/constraints"
)

// SplayTree is a self-adjusting binary search tree with no repeated values.
// Every access moves the node it ends on to the root through zig-zig and zig-zag
// rotations, so recently used elements stay near the top and any sequence of m operations
// on n elements costs O(m log n) in total. A single operation can still take O(n): the
// height D of the tree has no bound other than n.
// Nodes carry no parent pointers, sizes or balance information. Each operation collects
// the ancestors it passes in a path stack that is reused between calls, which makes even
// Contains a mutating, non-reentrant operation.
// The zero value isn't usable; create trees with New or NewC.
type SplayTree[T any] struct {
	root *node[T]
	cmp  func(T, T) int
	st   Stacks.ArrayStack[*node[T]] //path stack reused by every operation.
	log  journal                     //what the last Insert did, for Undo.
}

// New returns an empty SplayTree ordered by cmp.Compare.
func New[T constraints.Ordered]() *SplayTree[T] {
	return NewC[T](cmp.Compare[T])
}

// NewC returns an empty SplayTree ordered by cmp, which returns a negative number if
// first < second, 0 if first == second and a positive number if first > second.
// See cmp.Compare for an example.
func NewC[T any](cmp func(T, T) int) *SplayTree[T] {
	return &SplayTree[T]{cmp: cmp}
}

// check panics if the tree lost its search tree order. Only in invariants builds.
func (u *SplayTree[T]) check(op string) {
	if invariants.Enabled && u.Corrupt() {
		panic(errors.AssertionFailedf("splay tree out of order after %s", errors.Safe(op)))
	}
}

// Insert v and splay it to the root. If v is already in the tree the returned error is a
// *DuplicateKeyError[T] matching ErrDuplicateKey and the tree is untouched.
// Time: amortized O(log n)
func (u *SplayTree[T]) Insert(v T) error {
	access(u.root, v, u.cmp, &u.st)
	if !u.st.Empty() && u.cmp(u.st.Peek().v, v) == 0 {
		u.st.Clear()
		return errors.WithStack(&DuplicateKeyError[T]{v})
	}
	n := &node[T]{v: v}
	u.log.reset()
	if u.st.Empty() {
		u.root = n
	} else {
		if p := u.st.Peek(); u.cmp(v, p.v) < 0 {
			p.l = n
		} else {
			p.r = n
		}
		u.st.Push(n)
		for i := 1; i < u.st.Len(); i++ {
			u.log.dirs.Push(u.st.Get(i-1).r == u.st.Get(i))
		}
		splay(&u.root, &u.st, &u.log)
	}
	u.log.valid = true
	u.check("insert")
	return nil
}

// Remove v. Returns false, leaving the tree untouched, if v isn't in the tree.
// The node holding v is splayed to the root and cut off. If it has a left subtree, the
// maximum of that subtree is splayed to its top, where it has no right child, and takes
// the removed node's right subtree; otherwise the right subtree becomes the tree.
// Time: amortized O(log n)
func (u *SplayTree[T]) Remove(v T) bool {
	access(u.root, v, u.cmp, &u.st)
	if u.st.Empty() || u.cmp(u.st.Peek().v, v) != 0 {
		u.st.Clear()
		return false
	}
	x := u.st.Peek()
	splay(&u.root, &u.st, nil)
	if l := x.l; l != nil {
		for m := l; m != nil; m = m.r {
			u.st.Push(m)
		}
		splay(&l, &u.st, nil)
		l.r = x.r
		u.root = l
	} else {
		u.root = x.r
	}
	x.l, x.r = nil, nil
	u.log.reset()
	u.check("remove")
	return true
}

// Contains reports whether v is in the tree. The last node the search visits is splayed
// to the root whether it holds v or not.
// Time: amortized O(log n)
func (u *SplayTree[T]) Contains(v T) bool {
	access(u.root, v, u.cmp, &u.st)
	if u.st.Empty() {
		return false
	}
	x := u.st.Peek()
	if u.st.Len() > 1 {
		u.log.reset()
	}
	splay(&u.root, &u.st, nil)
	u.check("contains")
	return u.cmp(x.v, v) == 0
}

// Splay is Contains done with the recursive top-down splay instead of the path stack.
// The same node ends up at the root, though the shape below it may differ.
// Recursive.
// Time: amortized O(log n); Space: O(D)
func (u *SplayTree[T]) Splay(v T) bool {
	if u.root == nil {
		return false
	}
	if r := splayRec(u.root, v, u.cmp); r != u.root {
		u.root = r
		u.log.reset()
	}
	u.check("splay")
	return u.cmp(u.root.v, v) == 0
}

// Size of the tree. Recursive.
// Time: O(n)
func (u *SplayTree[T]) Size() int {
	return size(u.root)
}

// Empty reports whether the tree has no elements.
// Time: O(1)
func (u *SplayTree[T]) Empty() bool {
	return u.root == nil
}

// Clear the tree. The nodes are left to the garbage collector.
// Time: O(1)
func (u *SplayTree[T]) Clear() {
	u.root = nil
	u.st.Clear()
	u.log.reset()
}

// Clone returns a new tree with the same elements and ordering. The clone is built by
// inserting the elements in pre-order, so each insert splays and the clone's shape
// generally differs from u's. Use Copy when the shape matters.
// Time: O(n log n) amortized
func (u *SplayTree[T]) Clone() *SplayTree[T] {
	c := NewC(u.cmp)
	if u.root == nil {
		return c
	}
	st := Stacks.MakeArrayStack[*node[T]](uint(height(u.root)))
	for st.Push(u.root); !st.Empty(); {
		n, _ := st.Pop()
		_ = c.Insert(n.v)
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
	}
	c.log.reset()
	return c
}

// Copy returns a new tree with the same elements, ordering and shape as u. Recursive.
// Time: O(n)
func (u *SplayTree[T]) Copy() *SplayTree[T] {
	return &SplayTree[T]{root: copyNodes(u.root), cmp: u.cmp}
}

// Equal reports whether other has the same shape as u with equal elements at the same
// positions. Trees holding the same elements in different shapes aren't Equal. A nil
// other is an empty tree. Recursive.
// Time: O(n)
func (u *SplayTree[T]) Equal(other *SplayTree[T]) bool {
	if other == nil {
		return u.root == nil
	}
	return u == other || equal(u.root, other.root, u.cmp)
}

// frame is a node together with its depth, for walking the tree.
type frame[T any] struct {
	n *node[T]
	d int
}

// Walk [Tree.Walk]. Each call to the returned sequence starts a fresh in-order traversal.
// Time: O(n) for a whole traversal; Space: O(D)
func (u *SplayTree[T]) Walk() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var st Stacks.ArrayStack[frame[T]]
		for cur, d := u.root, 0; ; {
			for ; cur != nil; cur, d = cur.l, d+1 {
				st.Push(frame[T]{cur, d})
			}
			f, e := st.Pop()
			if e != nil || !yield(f.d, f.n.v) {
				return
			}
			cur, d = f.n.r, f.d+1
		}
	}
}

// Minimum element of the tree. Doesn't splay.
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum element of the tree. Doesn't splay.
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Depth of v below the root, which is at depth 0. Doesn't splay, so it can be used to
// observe the tree without changing it.
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) Depth(v T) (int, bool) {
	d := 0
	for cur := u.root; cur != nil; d++ {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return d, true
		}
	}
	return d, false
}

// Height is the number of levels in the tree, 0 when empty. Recursive.
func (u *SplayTree[T]) Height() int {
	return height(u.root)
}

// Corrupt [Tree.Corrupt]. Recursive.
func (u *SplayTree[T]) Corrupt() bool {
	return corrupt(u.root, nil, nil, u.cmp)
}
