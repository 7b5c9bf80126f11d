// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add an element to the bag, duplicates are kept
func (bag *Bag) Insert(elem Element) bool {
	if !insert(&bag.root, elem, bag.compare) {
		return false
	}
	bag.count += 1
	return true
}

// internal routine for insert
func insert(pp **node, elem Element, compare Comparator) bool {
	p := *pp
	if nil == p { // insert new node
		*pp = newNode(elem)
		return true
	}

	inserted := false
	switch c := compare(elem, p.elem); {
	case c < 0:
		inserted = insert(&p.left, elem, compare)
	case c > 0:
		inserted = insert(&p.right, elem, compare)
	default:
		// equal: grow the shorter side, right when both are the same
		if height(p.left) < height(p.right) {
			inserted = insert(&p.left, elem, compare)
		} else {
			inserted = insert(&p.right, elem, compare)
		}
	}
	if inserted {
		fixup(pp)
	}
	return inserted
}

// InsertUnbalanced - plain binary search tree insert without any
// rotations, equal elements go to the right
//
// every node on the search path has its height incremented whether
// or not the sub-tree actually grew, so after this the bag is no
// longer guaranteed to be balanced and heights may be too large.
func (bag *Bag) InsertUnbalanced(elem Element) bool {
	pp := &bag.root
	for nil != *pp {
		p := *pp
		p.height += 1
		if bag.compare(elem, p.elem) < 0 {
			pp = &p.left
		} else {
			pp = &p.right
		}
	}
	*pp = newNode(elem)
	bag.count += 1
	return true
}
