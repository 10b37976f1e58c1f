package Trees

// Tree describes a binary search tree holding unique values, where the values
// are also the ordering keys.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false bool), in which case x is the zero value
// and shouldn't be used.
// Traversals return newly allocated slices; they are never nil. Calling one again
// recomputes it from the current shape of the tree.
// Methods implemented recursively should be noted, otherwise they are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returns false if v is already in the Tree, in
	//which case the Tree is left unchanged.
	Insert(v T) bool
	//Delete v from the Tree. Returns false if v isn't in the Tree.
	Delete(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() int
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//LevelOrder returns the values breadth first, each level from left to right.
	LevelOrder() []T
	//InOrder returns the values in ascending order.
	InOrder() []T
	//PreOrder returns the values visiting a node before its left then right subtree.
	PreOrder() []T
	//PostOrder returns the values visiting a node after its left then right subtree.
	PostOrder() []T
	//Height of the tree, -1 if empty.
	Height() int
	//Balanced reports whether the heights of the two subtrees of every node differ
	//by at most one.
	Balanced() bool
	//Rebalance rebuilds the tree from its values so that Balanced holds.
	Rebalance()
	//Corrupt returns whether the tree has corrupt structures: broken ordering,
	//repeated values, a wrong size, or inconsistent parent links.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
