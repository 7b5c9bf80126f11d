// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - check that the stored heights of the children of every
// node differ by at most one
func (bag *Bag) IsBalanced() bool {
	return isBalanced(bag.root)
}

// internal: balance checker
func isBalanced(p *node) bool {
	if nil == p {
		return true
	}
	d := height(p.left) - height(p.right)
	if d > 1 || d < -1 {
		return false
	}
	return isBalanced(p.left) && isBalanced(p.right)
}

// CheckHeights - check that every stored height is one more than
// the taller child
func (bag *Bag) CheckHeights() bool {
	_, ok := checkHeights(bag.root)
	return ok
}

// internal: returns the computed height
func checkHeights(p *node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	return h, h == p.height
}

// CheckOrder - check that an in-order walk never decreases
func (bag *Bag) CheckOrder() bool {
	ok := true
	var previous Element
	first := true
	bag.Traverse(func(e Element) {
		if !first && bag.compare(e, previous) < 0 {
			ok = false
		}
		previous = e
		first = false
	})
	return ok
}

// CheckCount - check that the element count matches the number of nodes
func (bag *Bag) CheckCount() bool {
	return bag.count == countNodes(bag.root)
}

func countNodes(p *node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
