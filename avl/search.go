// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if some element in the bag is equal to elem
func (bag *Bag) Contains(elem Element) bool {
	return search(elem, bag.root, bag.compare) != nil
}

func search(elem Element, tree *node, compare Comparator) *node {
	if nil == tree {
		return nil
	}

	switch c := compare(elem, tree.elem); {
	case c < 0:
		return search(elem, tree.left, compare)
	case c > 0:
		return search(elem, tree.right, compare)
	default:
		return tree
	}
}

// Occurrences - number of elements in the bag equal to elem
func (bag *Bag) Occurrences(elem Element) int {
	return occurrences(elem, bag.root, bag.compare)
}

// equal elements can be on both sides of an equal node
func occurrences(elem Element, tree *node, compare Comparator) int {
	if nil == tree {
		return 0
	}

	switch c := compare(elem, tree.elem); {
	case c < 0:
		return occurrences(elem, tree.left, compare)
	case c > 0:
		return occurrences(elem, tree.right, compare)
	default:
		return 1 + occurrences(elem, tree.left, compare) + occurrences(elem, tree.right, compare)
	}
}
