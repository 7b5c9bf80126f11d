// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbag/fault"
)

// Min - return the lowest element
func (bag *Bag) Min() (Element, bool) {
	p := bag.root.first()
	if nil == p {
		return nil, false
	}
	return p.elem, true
}

// internal: lowest node in a sub-tree
func (tree *node) first() *node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Max - return the highest element
func (bag *Bag) Max() (Element, bool) {
	p := bag.root.last()
	if nil == p {
		return nil, false
	}
	return p.elem, true
}

// internal: highest node in a sub-tree
func (tree *node) last() *node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Elements - copy all elements in ascending order into the buffer
// and return the number copied
//
// the buffer must hold at least Count() elements, otherwise it is
// left unchanged and an error is returned
func (bag *Bag) Elements(buffer []Element) (int, error) {
	if len(buffer) < bag.count {
		return 0, fault.ErrBufferTooSmall
	}
	return elements(bag.root, buffer, 0), nil
}

// copy the sub-tree in order starting at buffer[index]
func elements(tree *node, buffer []Element, index int) int {
	n := 0
	if nil != tree {
		n += elements(tree.left, buffer, index)
		buffer[index+n] = tree.elem
		n += 1
		n += elements(tree.right, buffer, index+n)
	}
	return n
}

// Slice - all elements in ascending order
func (bag *Bag) Slice() []Element {
	buffer := make([]Element, bag.count)
	n, _ := bag.Elements(buffer)
	return buffer[:n]
}

// Traverse - call visit once for each element in ascending order
//
// the bag must not be modified by visit
func (bag *Bag) Traverse(visit func(Element)) {
	traverse(bag.root, visit)
}

func traverse(tree *node, visit func(Element)) {
	if nil == tree {
		return
	}
	traverse(tree.left, visit)
	visit(tree.elem)
	traverse(tree.right, visit)
}
