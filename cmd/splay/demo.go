package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/spf13/cobra"
)

var demo struct {
	remove, probe, insert int
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "insert, remove, look up, clone, insert and undo, printing the tree in between",
	Long: `
Builds a tree from --keys, removes --remove, looks up --probe and compares the tree to its
clone. It then inserts --insert, undoes that insert and inserts it again, checking that the
result is equal to the snapshot Undo returned.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), keys, demo.remove, demo.probe, demo.insert)
	},
}

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "insert --keys and print every key with its depth, in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := build(keys)
		if err != nil {
			return err
		}
		for d, v := range tree.Walk() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", d, v)
		}
		return nil
	},
}

func build(keys []int) (*Trees.SplayTree[int], error) {
	tree := Trees.New[int]()
	for _, k := range keys {
		if err := tree.Insert(k); err != nil {
			return nil, errors.Wrapf(err, "building the tree")
		}
		slog.Debug("insert", "key", k, "size", tree.Size())
	}
	return tree, nil
}

func runDemo(w io.Writer, keys []int, remove, probe, insert int) error {
	tree, err := build(keys)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Original tree:")
	printTree(w, tree)

	fmt.Fprintf(w, "\nRemoving %d:\n", remove)
	removed := tree.Remove(remove)
	slog.Debug("remove", "key", remove, "removed", removed, "size", tree.Size())
	printTree(w, tree)

	fmt.Fprintf(w, "\nIs %d in the tree?\n", probe)
	fmt.Fprintln(w, fmtBool(tree.Contains(probe)))

	// Clone re-inserts, so the shapes usually differ even though the keys are the same.
	fmt.Fprintln(w, "\nIs the clone equal to the tree?")
	fmt.Fprintln(w, fmtBool(tree.Equal(tree.Clone())))

	fmt.Fprintf(w, "\nInserting %d:\n", insert)
	if err := tree.Insert(insert); err != nil {
		return err
	}
	slog.Debug("insert", "key", insert, "size", tree.Size())
	printTree(w, tree)

	fmt.Fprintln(w, "\nUndoing the insert:")
	snap := tree.Undo()
	slog.Debug("undo", "size", tree.Size(), "snapshot size", snap.Size())
	printTree(w, tree)

	fmt.Fprintf(w, "\nInserting %d again:\n", insert)
	if err := tree.Insert(insert); err != nil {
		return err
	}
	printTree(w, tree)

	fmt.Fprintln(w, "\nIs the tree equal to the snapshot taken by the undo?")
	fmt.Fprintln(w, fmtBool(tree.Equal(snap)))
	return nil
}
