// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// RemoveIterative - remove one element equal to elem without
// recursion
//
// the links leading to each ancestor are kept on an explicit stack
// and rebalanced bottom up once the node has been removed.  A link
// stays valid while the nodes below it are rotated since rotation
// only rewrites the link, never moves the node that holds it.
func (bag *Bag) RemoveIterative(elem Element) bool {

	// the path from the root to any node, including the walk to
	// the replacement, never exceeds the tree height
	stack := make([]**node, 0, height(bag.root))

	pp := &bag.root
search:
	for {
		p := *pp
		if nil == p { // element not in tree
			return false
		}
		c := bag.compare(elem, p.elem)
		switch {
		case c < 0:
			stack = append(stack, pp)
			pp = &p.left
		case c > 0:
			stack = append(stack, pp)
			pp = &p.right
		default:
			break search
		}
	}

	p := *pp
	if nil != p.left && nil != p.right {
		stack = append(stack, pp)
		if height(p.left) > height(p.right) {
			qq := &p.left
			for nil != (*qq).right {
				stack = append(stack, qq)
				qq = &(*qq).right
			}
			p.elem = splice(qq)
		} else {
			qq := &p.right
			for nil != (*qq).left {
				stack = append(stack, qq)
				qq = &(*qq).left
			}
			p.elem = splice(qq)
		}
	} else {
		splice(pp)
	}

	for i := len(stack) - 1; i >= 0; i -= 1 {
		fixup(stack[i])
	}

	bag.count -= 1
	return true
}
