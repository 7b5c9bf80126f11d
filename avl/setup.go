// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbag/fault"
)

// Removal - selects the algorithm used by Remove
type Removal int

// removal algorithms
const (
	RecursiveRemoval Removal = iota // rebalance while unwinding the recursion
	IterativeRemoval Removal = iota // rebalance from an explicit stack of ancestors
)

// String - name of the removal algorithm
func (r Removal) String() string {
	switch r {
	case RecursiveRemoval:
		return "recursive"
	case IterativeRemoval:
		return "iterative"
	default:
		return "unknown"
	}
}

// ParseRemoval - convert a name to a removal algorithm
func ParseRemoval(s string) (Removal, error) {
	switch s {
	case "", "recursive":
		return RecursiveRemoval, nil
	case "iterative", "stack":
		return IterativeRemoval, nil
	default:
		return RecursiveRemoval, fault.ErrInvalidRemoval
	}
}

// Bag - type to hold the root node of a bag
type Bag struct {
	root    *node
	count   int
	compare Comparator
	removal Removal
}

// New - create an initially empty bag ordered by compare
func New(compare Comparator) (*Bag, error) {
	if nil == compare {
		return nil, fault.ErrNilComparator
	}
	return &Bag{
		root:    nil,
		count:   0,
		compare: compare,
		removal: RecursiveRemoval,
	}, nil
}

// SetRemoval - choose the algorithm used by Remove
func (bag *Bag) SetRemoval(r Removal) error {
	switch r {
	case RecursiveRemoval, IterativeRemoval:
		bag.removal = r
		return nil
	default:
		return fault.ErrInvalidRemoval
	}
}

// Removal - the algorithm currently used by Remove
func (bag *Bag) Removal() Removal {
	return bag.removal
}

// IsEmpty - true if bag contains no elements
func (bag *Bag) IsEmpty() bool {
	return nil == bag.root
}

// Count - number of elements currently in the bag
func (bag *Bag) Count() int {
	return bag.count
}

// Height - height of the tree, zero when empty
func (bag *Bag) Height() int {
	return height(bag.root)
}

// Destroy - release all nodes, the elements themselves are untouched
// and the bag is left empty
func (bag *Bag) Destroy() {
	freeTree(bag.root)
	bag.root = nil
	bag.count = 0
}
