package Trees

import "golang.org/x/exp/constraints"

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Corrupt() bool {
	if u.root != nil && u.root.p != nil {
		return true
	}
	cnt := 0
	return !check(u.root, nil, nil, &cnt) || cnt != u.size
}

// check that every value under n is strictly between lo and hi, when they aren't nil,
// and that the children of every node point back to it. cnt counts the nodes visited.
func check[T constraints.Ordered](n *Node[T], lo, hi *T, cnt *int) bool {
	if n == nil {
		return true
	}
	*cnt++
	if (lo != nil && n.v <= *lo) || (hi != nil && n.v >= *hi) {
		return false
	}
	if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
		return false
	}
	return check(n.l, lo, &n.v, cnt) && check(n.r, &n.v, hi, cnt)
}
