package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Node is a vertex of a BSTree. A node owns its children l and r; p points back to the
// node owning it and is nil for the root.
// The zero value is meaningful only as a detached leaf.
type Node[T constraints.Ordered] struct {
	v       T
	l, r, p *Node[T]
}

func (u *Node[T]) Value() T {
	return u.v
}

func (u *Node[T]) Left() *Node[T] {
	return u.l
}

func (u *Node[T]) Right() *Node[T] {
	return u.r
}

func (u *Node[T]) Parent() *Node[T] {
	return u.p
}

// ChildCount is 0, 1 or 2 depending on which of l and r are present.
func (u *Node[T]) ChildCount() int {
	c := 0
	if u.l != nil {
		c++
	}
	if u.r != nil {
		c++
	}
	return c
}

// Compare the values of u and o, see cmp.Compare.
func (u *Node[T]) Compare(o *Node[T]) int {
	return cmp.Compare(u.v, o.v)
}

// Next returns the node holding the smallest value greater than u.v, or nil.
// Time: O(D); Space: O(1)
func (u *Node[T]) Next() *Node[T] {
	if u.r != nil {
		return lowest(u.r)
	}
	for c, p := u, u.p; p != nil; c, p = p, p.p {
		if p.l == c {
			return p
		}
	}
	return nil
}

// Prev returns the node holding the greatest value less than u.v, or nil.
// Time: O(D); Space: O(1)
func (u *Node[T]) Prev() *Node[T] {
	if u.l != nil {
		return highest(u.l)
	}
	for c, p := u, u.p; p != nil; c, p = p, p.p {
		if p.r == c {
			return p
		}
	}
	return nil
}

// lowest node in the subtree rooting at n. n mustn't be nil.
func lowest[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// highest node in the subtree rooting at n. n mustn't be nil.
func highest[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
