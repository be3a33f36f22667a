package Trees

import (
	"github.com/g-m-twostay/go-splay/Stacks"
)

// access fills st with the search path for v starting at n: the bottom of st is n, the
// top is the last node visited. The walk stops at the node equal to v or at the node
// missing the child v would be under.
// Time: O(D); Space: O(D)
func access[T any](n *node[T], v T, cmp func(T, T) int, st *Stacks.ArrayStack[*node[T]]) {
	st.Clear()
	for n != nil {
		st.Push(n)
		if c := cmp(v, n.v); c < 0 {
			n = n.l
		} else if c > 0 {
			n = n.r
		} else {
			break
		}
	}
}

// splay promotes the top of st to *link. st must hold the access path from *link down to
// that node; it is empty afterwards. Ancestors are consumed two at a time from the bottom
// of the path up, doing a zig-zig when the node and its parent lean the same way and a
// zig-zag otherwise. A single zig finishes an odd-length path. Each rotated subtree is
// re-linked into the great-grandparent before the next step.
// When j isn't nil every rotation is recorded in it.
// Time: O(D); Space: O(1)
func splay[T any](link **node[T], st *Stacks.ArrayStack[*node[T]], j *journal) {
	x, _ := st.Pop()
	for st.Len() > 1 {
		p, _ := st.Pop()
		g, _ := st.Pop()
		d := st.Len() // depth of g below *link
		if p.l == x {
			if g.l == p { // zig-zig
				rotateRight(g)
				rotateRight(p)
				j.record(d, true)
				j.record(d, true)
			} else { // zig-zag
				g.r = rotateRight(p)
				rotateLeft(g)
				j.record(d+1, true)
				j.record(d, false)
			}
		} else {
			if g.r == p { // zag-zag
				rotateLeft(g)
				rotateLeft(p)
				j.record(d, false)
				j.record(d, false)
			} else { // zag-zig
				g.l = rotateLeft(p)
				rotateRight(g)
				j.record(d+1, false)
				j.record(d, true)
			}
		}
		if !st.Empty() {
			if gg := st.Peek(); gg.l == g {
				gg.l = x
			} else {
				gg.r = x
			}
		}
	}
	if !st.Empty() {
		if p, _ := st.Pop(); p.l == x {
			rotateRight(p)
			j.record(0, true)
		} else {
			rotateLeft(p)
			j.record(0, false)
		}
	}
	*link = x
}

// splayRec brings the node equal to v, or the last node on the search path for v, to the
// top of the subtree rooted at n and returns the new subtree root. It looks two levels
// down at each step, recursing into the grandchild before rotating on the way back up.
// Recursive.
// Time: O(D); Space: O(D)
func splayRec[T any](n *node[T], v T, cmp func(T, T) int) *node[T] {
	if n == nil {
		return nil
	}
	c := cmp(v, n.v)
	if c == 0 {
		return n
	}
	if c < 0 {
		if n.l == nil {
			return n
		}
		if cl := cmp(v, n.l.v); cl < 0 { // left-left
			n.l.l = splayRec(n.l.l, v, cmp)
			n = rotateRight(n)
		} else if cl > 0 { // left-right
			n.l.r = splayRec(n.l.r, v, cmp)
			if n.l.r != nil {
				n.l = rotateLeft(n.l)
			}
		}
		if n.l == nil {
			return n
		}
		return rotateRight(n)
	}
	if n.r == nil {
		return n
	}
	if cr := cmp(v, n.r.v); cr < 0 { // right-left
		n.r.l = splayRec(n.r.l, v, cmp)
		if n.r.l != nil {
			n.r = rotateRight(n.r)
		}
	} else if cr > 0 { // right-right
		n.r.r = splayRec(n.r.r, v, cmp)
		n = rotateLeft(n)
	}
	if n.r == nil {
		return n
	}
	return rotateLeft(n)
}

// size of the subtree rooted at n. Recursive.
func size[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.l) + size(n.r)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.l), height(n.r))
}

// equal compares two subtrees in lock-step: same shape and pairwise equal elements.
// Recursive.
func equal[T any](a, b *node[T], cmp func(T, T) int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp(a.v, b.v) == 0 && equal(a.l, b.l, cmp) && equal(a.r, b.r, cmp)
}

// copyNodes duplicates the subtree rooted at n node for node. Recursive.
func copyNodes[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{n.v, copyNodes(n.l), copyNodes(n.r)}
}

// corrupt reports whether some node under n falls outside the open interval (lo, hi).
// A nil bound is unbounded. Recursive.
func corrupt[T any](n, lo, hi *node[T], cmp func(T, T) int) bool {
	if n == nil {
		return false
	}
	if lo != nil && cmp(lo.v, n.v) >= 0 || hi != nil && cmp(n.v, hi.v) >= 0 {
		return true
	}
	return corrupt(n.l, lo, n, cmp) || corrupt(n.r, n, hi, cmp)
}
