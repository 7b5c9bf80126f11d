// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, zero for a missing node
func height(p *node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute height from the children
func updateHeight(p *node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// restore the balance of *pp after one of its sub-trees changed
// height by one, or just refresh its height
func fixup(pp **node) {
	p := *pp
	hl := height(p.left)
	hr := height(p.right)
	switch {
	case hl > hr+1:
		rebalanceRight(pp)
	case hr > hl+1:
		rebalanceLeft(pp)
	default:
		updateHeight(p)
	}
}

// right sub-tree is too tall
//
// a zig-zag (right child is left heavy) needs a double RL rotation
func rebalanceLeft(pp **node) {
	p1 := (*pp).right
	if height(p1.left) > height(p1.right) {
		rotateRight(&(*pp).right)
	}
	rotateLeft(pp)
}

// left sub-tree is too tall
//
// a zig-zag (left child is right heavy) needs a double LR rotation
func rebalanceRight(pp **node) {
	p1 := (*pp).left
	if height(p1.right) > height(p1.left) {
		rotateLeft(&(*pp).left)
	}
	rotateRight(pp)
}

// single rotation to the left
//
//	   p                 p1
//	  / \               /  \
//	 A   p1     →      p    C
//	    /  \          / \
//	   B    C        A   B
func rotateLeft(pp **node) {
	p := *pp
	p1 := p.right
	p.right = p1.left
	p1.left = p
	*pp = p1

	updateHeight(p)
	updateHeight(p1)
	rotations.increment()
}

// single rotation to the right
//
//	      p            p1
//	     / \          /  \
//	   p1   C   →    A    p
//	  /  \               / \
//	 A    B             B   C
func rotateRight(pp **node) {
	p := *pp
	p1 := p.left
	p.left = p1.right
	p1.right = p
	*pp = p1

	updateHeight(p)
	updateHeight(p1)
	rotations.increment()
}
