package Trees

import (
	Go_Splay "github.com/g-m-twostay/go-splay"
)

// rotation is one rotation done by splay: the depth of the link it was done on, counted
// from the root, and whether it turned right.
type rotation struct {
	depth int
	right bool
}

// journal records what the last Insert did to the shape of the tree: the directions taken
// from the root down to where the new leaf was attached, and every rotation that then
// brought the leaf up to the root.
// The zero value is an empty journal. A nil *journal records nothing.
type journal struct {
	dirs  Go_Splay.BitArray // dirs.Get(i) is whether the path went right below depth i.
	rots  []rotation
	valid bool
}

func (j *journal) record(depth int, right bool) {
	if j != nil {
		j.rots = append(j.rots, rotation{depth, right})
	}
}

func (j *journal) reset() {
	j.dirs.Reset()
	j.rots = j.rots[:0]
	j.valid = false
}

// follow the first depth recorded directions down from *root and return the link there.
func follow[T any](j *journal, root **node[T], depth int) **node[T] {
	for i := range depth {
		if j.dirs.Get(i) {
			root = &(*root).r
		} else {
			root = &(*root).l
		}
	}
	return root
}

// revert the Insert recorded in j. The rotations are undone newest first, each by the
// opposite rotation on the same link. The nodes above a link are untouched by the
// rotations recorded after it, so the recorded directions still lead there. Once all are
// undone the inserted node is a leaf at the end of the recorded path and is cut off.
// Time: O(D^2) in the depth D of the attach point; Space: O(1)
func revert[T any](j *journal, root **node[T]) {
	for i := len(j.rots) - 1; i > -1; i-- {
		link := follow(j, root, j.rots[i].depth)
		if j.rots[i].right {
			*link = rotateLeft(*link)
		} else {
			*link = rotateRight(*link)
		}
	}
	*follow(j, root, j.dirs.Len()) = nil
}

// Undo the most recent Insert and return a snapshot of the tree as it was just before
// the call. The snapshot is a shape-preserving Copy, so it is Equal to the pre-undo tree.
//
// If the last change to the shape of the tree was a successful Insert, the tree returns to
// exactly the shape it had before that Insert and the inserted element is gone. Any other
// reshaping since then (Remove, a Contains or Splay that rotated, Clear) or a previous
// Undo leaves nothing to undo, and so does a tree whose root has no children. In those
// cases the tree is left as is. There is a single step of history: no redo, no undo of
// the Insert before the last one.
// Time: O(n) for the snapshot.
func (u *SplayTree[T]) Undo() *SplayTree[T] {
	snap := u.Copy()
	if u.root == nil || u.root.l == nil && u.root.r == nil || !u.log.valid {
		return snap
	}
	revert(&u.log, &u.root)
	u.log.reset()
	u.check("undo")
	return snap
}
