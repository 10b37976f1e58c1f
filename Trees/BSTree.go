package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*BSTree[int])(nil)

// BSTree is a binary search tree with no repeated values. It doesn't balance
// itself on insertion or deletion; balance is restored only by Rebalance, which
// rebuilds the whole tree.
// Every node keeps a link to its parent, so Depth, Node.Next and Node.Prev
// can walk upwards without a stack.
// The height D of the tree is O(log n) right after Build or Rebalance and
// O(n) in the worst case after a sequence of Insert and Delete.
// A BSTree isn't safe for concurrent use, see SyncTree.
type BSTree[T constraints.Ordered] struct {
	root *Node[T] //nil when empty.
	size int
}

// New returns an empty BSTree. The zero value of BSTree is also an empty tree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// Build returns a BSTree holding the values of sli. sli needn't be sorted and may
// contain duplicates; it isn't modified. The tree is height balanced regardless
// of the order of sli.
// Time: O(n log n).
func Build[T constraints.Ordered](sli []T) *BSTree[T] {
	s := slices.Clone(sli)
	slices.Sort(s)
	s = slices.Compact(s)
	return &BSTree[T]{build(s, nil), len(s)}
}

// build a subtree under parent p from the sorted set s recursively. The lower middle
// element becomes the root of the subtree.
func build[T constraints.Ordered](s []T, p *Node[T]) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := (len(s) - 1) >> 1
	n := &Node[T]{v: s[mid], p: p}
	n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
	return n
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() int {
	return u.size
}

func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear removes all the values.
func (u *BSTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// Insert [Tree.Insert]. The descent that finds the attach point also detects duplicates.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &Node[T]{v: v}
		u.size = 1
		return true
	}
	for cur := u.root; ; {
		if v < cur.v {
			if cur.l == nil {
				cur.l = &Node[T]{v: v, p: cur}
				break
			}
			cur = cur.l
		} else if v == cur.v {
			return false
		} else {
			if cur.r == nil {
				cur.r = &Node[T]{v: v, p: cur}
				break
			}
			cur = cur.r
		}
	}
	u.size++
	return true
}

// search for v starting at cur. Returns nil if v isn't in the subtree.
func search[T constraints.Ordered](cur *Node[T], v T) *Node[T] {
	for cur != nil {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Find the node holding v. Returns nil and logs a diagnostic if there's none.
// The returned node is only valid until the next mutation of the tree: Delete
// may move another value into it.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) *Node[T] {
	return u.FindFrom(u.root, v)
}

// FindFrom is Find restricted to the subtree rooting at start.
func (u *BSTree[T]) FindFrom(start *Node[T], v T) *Node[T] {
	n := search(start, v)
	if n == nil {
		Log.WithField("value", v).Info("value not in tree")
	}
	return n
}

// Has [Tree.Has]. Unlike Find it doesn't log misses.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return search(u.root, v) != nil
}

// Delete [Tree.Delete]. Recursive.
// A node with children is never unlinked itself: it takes over the value of its
// in-order successor, or its predecessor when it has no right subtree, and that
// node is deleted instead. Only leaves are ever detached.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	n := search(u.root, v)
	if n == nil {
		return false
	}
	u.remove(n)
	u.size--
	return true
}

// remove the value held by n from the tree.
func (u *BSTree[T]) remove(n *Node[T]) {
	var d *Node[T]
	if n.r != nil {
		d = lowest(n.r)
	} else if n.l != nil {
		d = highest(n.l)
	} else {
		u.detach(n)
		return
	}
	v := d.v
	Log.WithField("value", n.v).WithField("replacement", v).Debug("cascading delete")
	u.remove(d)
	n.v = v
}

// detach leaf n from its parent.
func (u *BSTree[T]) detach(n *Node[T]) {
	if p := n.p; p == nil {
		u.root = nil
	} else if p.l == n {
		p.l = nil
	} else {
		p.r = nil
	}
	n.p = nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return lowest(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return highest(u.root).v, true
}
