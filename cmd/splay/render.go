package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/g-m-twostay/go-splay/Trees"
)

const indent = 3

// printTree draws the tree on its side: the root on the left, right subtrees above their
// parent and left subtrees below, each level indented 3 more spaces.
func printTree[T any](w io.Writer, tree *Trees.SplayTree[T]) {
	type line struct {
		d int
		v T
	}
	var ls []line
	for d, v := range tree.Walk() {
		ls = append(ls, line{d, v})
	}
	slices.Reverse(ls)
	for _, l := range ls {
		fmt.Fprintf(w, "%s%v\n", strings.Repeat(" ", l.d*indent), l.v)
	}
	fmt.Fprintln(w)
}

var (
	yes = color.New(color.FgGreen).SprintFunc()
	no  = color.New(color.FgRed).SprintFunc()
)

func fmtBool(b bool) string {
	if b {
		return yes(b)
	}
	return no(b)
}
