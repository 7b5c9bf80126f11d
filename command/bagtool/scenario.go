// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbag/avl"
	"github.com/bitmark-inc/avlbag/fault"
)

// outcome of a scenario run
type report struct {
	Count    int   `json:"count"`
	Height   int   `json:"height"`
	Balanced bool  `json:"balanced"`
	Heights  bool  `json:"heights"`
	Order    bool  `json:"order"`
	Elements []int `json:"elements"`
	Removed  []int `json:"removed"`
	Missed   []int `json:"missed"`
}

// the built-in scenario
func demoConfiguration() *Configuration {
	return &Configuration{
		Order:   defaultOrder,
		Removal: defaultRemoval,
		Indent:  defaultIndent,
		Insert:  []int{2, 3, 8, 1, 9},
		Remove:  []int{8},
	}
}

// insert, then remove, then add the unbalanced items
//
// the tree must still be balanced before the unbalanced items go in
func runScenario(options *Configuration, log *logger.L) (*avl.Bag, *report, error) {

	compare, err := avl.NamedOrder[int](options.Order)
	if nil != err {
		return nil, nil, err
	}
	removal, err := avl.ParseRemoval(options.Removal)
	if nil != err {
		return nil, nil, err
	}

	bag, err := avl.New(compare)
	if nil != err {
		return nil, nil, err
	}
	if err := bag.SetRemoval(removal); nil != err {
		return nil, nil, err
	}

	log.Infof("order: %s  removal: %s", options.Order, removal)

	for _, v := range options.Insert {
		bag.Insert(v)
		log.Debugf("insert: %d  count: %d  height: %d", v, bag.Count(), bag.Height())
	}

	r := &report{
		Removed: make([]int, 0, len(options.Remove)),
		Missed:  make([]int, 0),
	}
	for _, v := range options.Remove {
		if bag.Remove(v) {
			r.Removed = append(r.Removed, v)
			log.Debugf("remove: %d  count: %d  height: %d", v, bag.Count(), bag.Height())
		} else {
			r.Missed = append(r.Missed, v)
			log.Warnf("remove: %d  error: %s", v, fault.ErrElementNotFound)
		}
	}

	if !bag.IsBalanced() || !bag.CheckHeights() {
		log.Criticalf("after %d inserts and %d removes: %s", len(options.Insert), len(r.Removed), fault.ErrUnbalancedTree)
		return bag, nil, fault.ErrUnbalancedTree
	}

	for _, v := range options.Unbalanced {
		bag.InsertUnbalanced(v)
		log.Debugf("unbalanced insert: %d  count: %d  height: %d", v, bag.Count(), bag.Height())
	}

	buffer := make([]avl.Element, bag.Count())
	n, err := bag.Elements(buffer)
	if nil != err {
		return bag, nil, err
	}
	r.Elements = make([]int, n)
	for i, e := range buffer[:n] {
		r.Elements[i] = e.(int)
	}

	r.Count = bag.Count()
	r.Height = bag.Height()
	r.Balanced = bag.IsBalanced()
	r.Heights = bag.CheckHeights()
	r.Order = bag.CheckOrder()

	log.Infof("count: %d  height: %d  balanced: %v", r.Count, r.Height, r.Balanced)

	return bag, r, nil
}
