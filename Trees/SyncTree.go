package Trees

import (
	"sync"

	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*SyncTree[int])(nil)

// SyncTree guards a BSTree with a read-write lock so it can be shared between goroutines.
// Insert, Delete and Rebalance hold the write lock for their whole duration; queries hold
// the read lock. Nodes are never handed out, so nothing escapes the lock.
type SyncTree[T constraints.Ordered] struct {
	mu sync.RWMutex
	t  *BSTree[T]
}

// Synchronized wraps t. t mustn't be used directly afterwards. A nil t is a new empty tree.
func Synchronized[T constraints.Ordered](t *BSTree[T]) *SyncTree[T] {
	if t == nil {
		t = New[T]()
	}
	return &SyncTree[T]{t: t}
}

func (u *SyncTree[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *SyncTree[T]) Delete(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Delete(v)
}

func (u *SyncTree[T]) Rebalance() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Rebalance()
}

// Find is BSTree.Find returning the value found instead of the node.
func (u *SyncTree[T]) Find(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if n := u.t.Find(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

func (u *SyncTree[T]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(v)
}

func (u *SyncTree[T]) Size() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *SyncTree[T]) Minimum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Minimum()
}

func (u *SyncTree[T]) Maximum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Maximum()
}

func (u *SyncTree[T]) LevelOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.LevelOrder()
}

func (u *SyncTree[T]) InOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.InOrder()
}

func (u *SyncTree[T]) PreOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.PreOrder()
}

func (u *SyncTree[T]) PostOrder() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.PostOrder()
}

func (u *SyncTree[T]) Height() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Height()
}

func (u *SyncTree[T]) Balanced() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Balanced()
}

func (u *SyncTree[T]) Corrupt() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Corrupt()
}

func (u *SyncTree[T]) String() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.String()
}
