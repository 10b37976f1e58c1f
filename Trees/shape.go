package Trees

import "golang.org/x/exp/constraints"

// Depth of n, the number of edges between n and the root. -1 if n is nil.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Depth(n *Node[T]) int {
	return u.DepthFrom(n, u.root)
}

// DepthFrom counts the edges walking up from n until reaching from, 0 if n==from.
// Returns -1 if from isn't an ancestor of n, or if either is nil.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) DepthFrom(n, from *Node[T]) int {
	if from == nil {
		return -1
	}
	d := 0
	for ; n != nil; n = n.p {
		if n == from {
			return d
		}
		d++
	}
	return -1
}

// HeightOf n, the number of edges on the longest downward path from n to a leaf.
// A leaf has height 0 and nil has height -1. Recursive.
// Time: O(size of the subtree); Space: O(D)
func (u *BSTree[T]) HeightOf(n *Node[T]) int {
	return height(n)
}

// Height [Tree.Height]. Recursive.
func (u *BSTree[T]) Height() int {
	return height(u.root)
}

func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.l), height(n.r))
}

// Balanced [Tree.Balanced]. An absent subtree counts as height 0 here, the same as a
// single leaf. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Balanced() bool {
	_, ok := balanced(u.root)
	return ok
}

// balanced returns the height of n and whether every node under n is balanced.
func balanced[T constraints.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := balanced(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := balanced(n.r)
	if !ok {
		return 0, false
	}
	d := max(lh, 0) - max(rh, 0)
	return 1 + max(lh, rh), -1 <= d && d <= 1
}

// Rebalance [Tree.Rebalance]. The values are collected in level order and the tree is
// rebuilt as in Build; since Build sorts its input, the order of collection doesn't
// affect the result.
// Time: O(n log n)
func (u *BSTree[T]) Rebalance() {
	vs := u.LevelOrder()
	Log.WithField("size", len(vs)).Debug("rebuilding tree")
	*u = *Build(vs)
}
