// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes one element equal to elem from the bag using the
// selected removal algorithm, false if there was no such element
func (bag *Bag) Remove(elem Element) bool {
	if IterativeRemoval == bag.removal {
		return bag.RemoveIterative(elem)
	}
	return bag.RemoveRecursive(elem)
}

// RemoveRecursive - remove one element equal to elem, rebalancing as
// the recursion unwinds
func (bag *Bag) RemoveRecursive(elem Element) bool {
	if !remove(&bag.root, elem, bag.compare) {
		return false
	}
	bag.count -= 1
	return true
}

// internal delete routine
func remove(pp **node, elem Element, compare Comparator) bool {
	p := *pp
	if nil == p { // element not in tree
		return false
	}

	removed := false
	switch c := compare(elem, p.elem); {
	case c < 0:
		removed = remove(&p.left, elem, compare)
	case c > 0:
		removed = remove(&p.right, elem, compare)
	default: // found: delete p
		if nil != p.left && nil != p.right {
			// keep the node, take a replacement from the taller side
			if height(p.left) > height(p.right) {
				p.elem = removeMax(&p.left)
			} else {
				p.elem = removeMin(&p.right)
			}
			fixup(pp)
		} else {
			splice(pp)
		}
		return true
	}
	if removed {
		fixup(pp)
	}
	return removed
}

// replace *pp by its only child (or nil) and reclaim the node
func splice(pp **node) Element {
	p := *pp
	elem := p.elem
	if nil != p.left {
		*pp = p.left
	} else {
		*pp = p.right
	}
	freeNode(p)
	return elem
}

// remove the lowest element of a non-empty sub-tree
func removeMin(pp **node) Element {
	p := *pp
	if nil == p.left {
		return splice(pp)
	}
	elem := removeMin(&p.left)
	fixup(pp)
	return elem
}

// remove the highest element of a non-empty sub-tree
func removeMax(pp **node) Element {
	p := *pp
	if nil == p.right {
		return splice(pp)
	}
	elem := removeMax(&p.right)
	fixup(pp)
	return elem
}
