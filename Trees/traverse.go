package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Order of a traversal.
type Order uint8

const (
	OrderLevel Order = iota
	OrderIn
	OrderPre
	OrderPost
)

func (o Order) String() string {
	switch o {
	case OrderLevel:
		return "level-order"
	case OrderIn:
		return "in-order"
	case OrderPre:
		return "pre-order"
	case OrderPost:
		return "post-order"
	}
	return "unknown"
}

// Walk calls f on every value of the tree in the given order, stopping early once f returns false.
// The tree mustn't be modified during the walk.
// Time: O(n); Space: O(D), except for OrderLevel, which needs O(n) for the queue.
func (u *BSTree[T]) Walk(o Order, f func(T) bool) {
	if u.root == nil {
		return
	}
	switch o {
	case OrderLevel:
		u.levelOrder(f)
	case OrderIn:
		u.inOrder(f)
	case OrderPre:
		u.preOrder(f)
	case OrderPost:
		postOrder(u.root, f)
	}
}

func (u *BSTree[T]) collect(o Order) []T {
	s := make([]T, 0, u.size)
	u.Walk(o, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// LevelOrder [Tree.LevelOrder]
func (u *BSTree[T]) LevelOrder() []T {
	return u.collect(OrderLevel)
}

// InOrder [Tree.InOrder]
func (u *BSTree[T]) InOrder() []T {
	return u.collect(OrderIn)
}

// PreOrder [Tree.PreOrder]
func (u *BSTree[T]) PreOrder() []T {
	return u.collect(OrderPre)
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *BSTree[T]) PostOrder() []T {
	return u.collect(OrderPost)
}

func (u *BSTree[T]) levelOrder(f func(T) bool) {
	q := Queues.MakeArrayQueue[*Node[T]](uint(u.size>>1) + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur.v) {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// inOrder uses a stack holding the path of nodes whose left subtrees are being visited.
func (u *BSTree[T]) inOrder(f func(T) bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}

func (u *BSTree[T]) preOrder(f func(T) bool) {
	st := arraystack.New()
	for st.Push(u.root); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		if !f(cur.v) {
			return
		}
		//right first so that left is popped first.
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
}

// postOrder returns false if f stopped the walk.
func postOrder[T constraints.Ordered](c *Node[T], f func(T) bool) bool {
	if c.l != nil && !postOrder(c.l, f) {
		return false
	}
	if c.r != nil && !postOrder(c.r, f) {
		return false
	}
	return f(c.v)
}
