package Trees

// A node in the SplayTree.
// There is no parent pointer. Ancestors are recovered per operation from an explicit path
// stack, so every node has exactly one owner: its parent's l or r, or the tree's root.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// rotateRight performs a right rotation on p and returns the new root of the subtree,
// which is p's former left child. The caller links the result into whatever held p.
// p is returned unchanged if it has no left child.
// Time: O(1); Space: O(1)
func rotateRight[T any](p *node[T]) *node[T] {
	q := p.l
	if q == nil {
		return p
	}
	p.l = q.r
	q.r = p
	return q
}

// rotateLeft performs a left rotation on p and returns the new root of the subtree,
// which is p's former right child. The caller links the result into whatever held p.
// p is returned unchanged if it has no right child.
// Time: O(1); Space: O(1)
func rotateLeft[T any](p *node[T]) *node[T] {
	q := p.r
	if q == nil {
		return p
	}
	p.r = q.l
	q.l = p
	return q
}
