package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/emicklei/dot"
	"golang.org/x/exp/constraints"
)

// String draws the tree sideways: the right subtree of a node is drawn above it and
// the left subtree below. An empty tree is drawn as an empty string. Recursive.
func (u *BSTree[T]) String() string {
	var sb strings.Builder
	if u.root != nil {
		draw(&sb, u.root, "", true)
	}
	return sb.String()
}

// Fprint writes String to w.
func (u *BSTree[T]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}

func draw[T constraints.Ordered](sb *strings.Builder, n *Node[T], prefix string, isLeft bool) {
	if n.r != nil {
		if isLeft {
			draw(sb, n.r, prefix+"│   ", false)
		} else {
			draw(sb, n.r, prefix+"    ", false)
		}
	}
	sb.WriteString(prefix)
	if isLeft {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}
	fmt.Fprintln(sb, n.v)
	if n.l != nil {
		if isLeft {
			draw(sb, n.l, prefix+"    ", true)
		} else {
			draw(sb, n.l, prefix+"│   ", true)
		}
	}
}

// Graph returns a graphviz rendering of the tree. Every value is a node, and edges
// to children are labelled L or R. Recursive.
func (u *BSTree[T]) Graph() *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("ordering", "out")
	if u.root != nil {
		graph(g, u.root)
	}
	return g
}

// DOT is Graph in the dot language.
func (u *BSTree[T]) DOT() string {
	return u.Graph().String()
}

func graph[T constraints.Ordered](g *dot.Graph, n *Node[T]) dot.Node {
	gn := g.Node(fmt.Sprint(n.v))
	if n.l != nil {
		g.Edge(gn, graph(g, n.l), "L")
	}
	if n.r != nil {
		g.Edge(gn, graph(g, n.r), "R")
	}
	return gn
}
