// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// Print - display the tree on its side, right sub-trees above and
// left sub-trees below, each level indented by indent spaces and each
// element followed by its height in brackets
//
// format renders an element, fmt.Sprint is used if it is nil.
// returns the maximum depth of the tree
func (bag *Bag) Print(w io.Writer, indent int, format func(Element) string) int {
	if nil == format {
		format = func(e Element) string {
			return fmt.Sprint(e)
		}
	}
	if indent < 0 {
		indent = 0
	}
	return printTree(w, bag.root, 0, indent, format)
}

// internal print - returns the maximum depth of the sub-tree
func printTree(w io.Writer, tree *node, depth int, indent int, format func(Element) string) int {
	if nil == tree {
		return 0
	}
	rd := printTree(w, tree.right, depth+1, indent, format)

	fmt.Fprintf(w, "%*s%s [%d]\n", depth*indent, "", format(tree.elem), tree.height)

	ld := printTree(w, tree.left, depth+1, indent, format)

	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
