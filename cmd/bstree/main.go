// Command bstree builds a tree from the environment, applies the configured
// insertions and deletions, and prints the result.
//
//	BST_VALUES=5,10,15 BST_INSERT=3,17 BST_DELETE=10 bstree
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	formatText = "text"
	formatDOT  = "dot"
)

type Config struct {
	Values    []int  `envconfig:"BST_VALUES" default:"1,2,3,4,5,6"`
	Insert    []int  `envconfig:"BST_INSERT"`
	Delete    []int  `envconfig:"BST_DELETE"`
	Rebalance bool   `envconfig:"BST_REBALANCE" default:"false"`
	Format    string `envconfig:"BST_FORMAT" default:"text"`
	LogLevel  string `envconfig:"BST_LOG_LEVEL" default:"info"`
}

func loadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	if c.Format != formatText && c.Format != formatDOT {
		return nil, fmt.Errorf("unknown format %q", c.Format)
	}
	return &c, nil
}

func main() {
	if err := run(os.Stdout); err != nil {
		Trees.Log.Fatal(err)
	}
}

func run(w io.Writer) error {
	c, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig: %w", err)
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("logrus.ParseLevel: %w", err)
	}
	Trees.Log.SetLevel(level)
	log := Trees.Log.WithField("cmd", "bstree")

	tree := Trees.Build(c.Values)
	log.WithField("size", tree.Size()).Debug("built tree")
	for _, v := range c.Insert {
		if !tree.Insert(v) {
			log.WithField("value", v).Info("value already in tree")
		}
	}
	for _, v := range c.Delete {
		if tree.Find(v) != nil {
			tree.Delete(v)
		}
	}
	if c.Rebalance {
		tree.Rebalance()
	}

	if c.Format == formatDOT {
		_, err = io.WriteString(w, tree.DOT())
		return err
	}
	if err = tree.Fprint(w); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "level-order: %v\nin-order:    %v\npre-order:   %v\npost-order:  %v\nsize: %d height: %d balanced: %t\n",
		tree.LevelOrder(), tree.InOrder(), tree.PreOrder(), tree.PostOrder(),
		tree.Size(), tree.Height(), tree.Balanced())
	return err
}
