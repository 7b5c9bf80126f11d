// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbag/avl"
	"github.com/bitmark-inc/avlbag/fault"
)

// convert the command arguments to integers
func parseElements(c *cli.Context) ([]int, error) {
	args := c.Args()
	if 0 == len(args) {
		return nil, fault.ErrMissingArguments
	}

	elements := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if nil != err {
			return nil, fmt.Errorf("element: %q  error: %s", s, fault.ErrInvalidElement)
		}
		elements[i] = n
	}
	return elements, nil
}

// a bag holding all the command arguments
func makeBag(c *cli.Context) (*avl.Bag, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	elements, err := parseElements(c)
	if nil != err {
		return nil, m, err
	}

	bag, err := avl.New(m.compare)
	if nil != err {
		return nil, m, err
	}
	if err := bag.SetRemoval(m.removal); nil != err {
		return nil, m, err
	}

	for _, n := range elements {
		bag.Insert(n)
	}
	if m.verbose {
		fmt.Fprintf(m.e, "inserted: %d  height: %d\n", bag.Count(), bag.Height())
	}
	return bag, m, nil
}

// elements back as integers
func integers(bag *avl.Bag) []int {
	result := make([]int, 0, bag.Count())
	bag.Traverse(func(e avl.Element) {
		result = append(result, e.(int))
	})
	return result
}
