package Trees

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestScenario_BuildThenInsert(t *testing.T) {
	tree := Build([]int{5, 10, 15})
	for _, v := range []int{3, 17, 1, 2, 13, 16, 23} {
		require.True(t, tree.Insert(v))
		require.False(t, tree.Corrupt())
	}
	require.Equal(t, []int{1, 2, 3, 5, 10, 13, 15, 16, 17, 23}, tree.InOrder())
	require.Equal(t, 10, tree.Size())
}

func TestScenario_BuildSix(t *testing.T) {
	tree := Build([]int{1, 2, 3, 4, 5, 6})
	require.Equal(t, 2, tree.HeightOf(tree.Root()))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, tree.InOrder())
	require.Equal(t, 3, tree.Root().Value())
	require.Equal(t, []int{3, 1, 5, 2, 4, 6}, tree.LevelOrder())
	require.Equal(t, []int{3, 1, 2, 5, 4, 6}, tree.PreOrder())
	require.Equal(t, []int{2, 1, 4, 6, 5, 3}, tree.PostOrder())
}

func TestScenario_DeleteFromLargeTree(t *testing.T) {
	tree := Build([]int{5, 10, 15, 3, 17, 1, 2, 13, 16, 23, 4, 11, 7, 12, 20, 25, 30})
	for _, v := range []int{25, 17, 2} {
		require.True(t, tree.Delete(v))
		require.False(t, tree.Has(v))
		require.False(t, tree.Corrupt())
	}
	require.Equal(t, []int{1, 3, 4, 5, 7, 10, 11, 12, 13, 15, 16, 20, 23, 30}, tree.InOrder())
	require.Equal(t, 14, tree.Size())
}

func TestScenario_FindMissing(t *testing.T) {
	hook := logtest.NewLocal(Log)
	defer hook.Reset()
	level := Log.GetLevel()
	Log.SetLevel(logrus.InfoLevel)
	defer Log.SetLevel(level)

	tree := Build([]int{1, 2, 3, 4, 5, 6})
	before := tree.LevelOrder()
	require.Nil(t, tree.Find(42))
	require.Equal(t, before, tree.LevelOrder())
	require.NotNil(t, hook.LastEntry())
	require.Equal(t, "value not in tree", hook.LastEntry().Message)
	require.Equal(t, 42, hook.LastEntry().Data["value"])

	hook.Reset()
	require.False(t, tree.Has(42))
	require.False(t, tree.Delete(42))
	require.Empty(t, hook.AllEntries())

	require.Nil(t, tree.FindFrom(tree.Root().Left(), 5))
	require.Equal(t, 5, tree.FindFrom(tree.Root().Right(), 5).Value())
}

func TestScenario_BuildIsBalanced(t *testing.T) {
	for _, in := range [][]int{
		{},
		{7},
		{3, 3, 3, 3},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 2, 3},
		{5, 10, 15, 3, 17, 1, 2, 13, 16, 23, 4, 11, 7, 12, 20, 25, 30, 30, 5},
	} {
		tree := Build(in)
		require.True(t, tree.Balanced(), "input %v", in)
		require.False(t, tree.Corrupt(), "input %v", in)
	}
}

func TestBSTree_DeleteShapes(t *testing.T) {
	tests := []struct {
		name   string
		build  []int
		insert []int
		delete []int
		level  []int // expected level-order afterwards
	}{
		{
			name:   "leaf",
			build:  []int{1, 2, 3, 4, 5, 6, 7},
			delete: []int{7},
			level:  []int{4, 2, 6, 1, 3, 5},
		},
		{
			name:   "two children takes successor",
			build:  []int{1, 2, 3, 4, 5, 6, 7},
			delete: []int{6},
			level:  []int{4, 2, 7, 1, 3, 5},
		},
		{
			name:   "root",
			build:  []int{1, 2, 3, 4, 5, 6, 7},
			delete: []int{4},
			level:  []int{5, 2, 6, 1, 3, 7},
		},
		{
			name:   "only left child takes predecessor",
			build:  []int{1, 2, 3, 4, 5, 6, 7},
			delete: []int{7, 6},
			level:  []int{4, 2, 5, 1, 3},
		},
		{
			name:   "only right child takes successor",
			build:  []int{1, 2, 3, 4, 5, 6, 7},
			delete: []int{5, 6},
			level:  []int{4, 2, 7, 1, 3},
		},
		{
			name:   "cascade down a chain",
			insert: []int{10, 5, 8, 9},
			delete: []int{5},
			level:  []int{10, 8, 9},
		},
		{
			name:   "left chain under root",
			insert: []int{10, 5, 3, 4},
			delete: []int{10},
			level:  []int{5, 4, 3},
		},
		{
			name:   "last value",
			build:  []int{1},
			delete: []int{1},
			level:  []int{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := Build(tc.build)
			for _, v := range tc.insert {
				require.True(t, tree.Insert(v))
			}
			n := len(tree.InOrder())
			for _, v := range tc.delete {
				require.True(t, tree.Delete(v))
				require.False(t, tree.Corrupt())
			}
			require.Equal(t, tc.level, tree.LevelOrder())
			require.Equal(t, n-len(tc.delete), tree.Size())
		})
	}
}

func TestBSTree_KeepsNodeWithChildren(t *testing.T) {
	tree := Build([]int{1, 2, 3, 4, 5, 6, 7})
	root := tree.Root()
	require.True(t, tree.Delete(4))
	require.Same(t, root, tree.Root())
	require.Equal(t, 5, root.Value())
	require.Nil(t, root.Parent())
}

func TestBSTree_String(t *testing.T) {
	tree := Build([]int{1, 2, 3, 4, 5, 6})
	want := strings.Join([]string{
		"│       ┌── 6",
		"│   ┌── 5",
		"│   │   └── 4",
		"└── 3",
		"    │   ┌── 2",
		"    └── 1",
	}, "\n") + "\n"
	require.Equal(t, want, tree.String())

	var sb strings.Builder
	require.NoError(t, tree.Fprint(&sb))
	require.Equal(t, want, sb.String())
}

func TestBSTree_DOT(t *testing.T) {
	tree := Build([]int{1, 2, 3, 4, 5, 6})
	out := tree.DOT()
	require.Contains(t, out, "digraph")
	require.Equal(t, tree.Size()-1, strings.Count(out, "->"))
	for _, v := range []string{"1", "2", "3", "4", "5", "6"} {
		require.Contains(t, out, `label="`+v+`"`)
	}
	require.Contains(t, out, `label="L"`)
	require.Contains(t, out, `label="R"`)
	require.NotContains(t, New[int]().DOT(), "->")
}
