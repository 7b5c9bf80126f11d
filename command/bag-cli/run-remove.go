// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbag/fault"
)

type removeResult struct {
	Removed  []int `json:"removed"`
	Missed   []int `json:"missed"`
	Count    int   `json:"count"`
	Height   int   `json:"height"`
	Balanced bool  `json:"balanced"`
	Elements []int `json:"elements"`
}

func runRemove(c *cli.Context) error {

	values := c.IntSlice("value")
	if 0 == len(values) {
		return fmt.Errorf("value: %s", fault.ErrMissingArguments)
	}

	bag, m, err := makeBag(c)
	if nil != err {
		return err
	}
	defer bag.Destroy()

	result := removeResult{
		Removed: make([]int, 0, len(values)),
		Missed:  make([]int, 0),
	}
	for _, v := range values {
		if bag.Remove(v) {
			result.Removed = append(result.Removed, v)
		} else {
			result.Missed = append(result.Missed, v)
			if m.verbose {
				fmt.Fprintf(m.e, "remove: %d  error: %s\n", v, fault.ErrElementNotFound)
			}
		}
	}

	result.Count = bag.Count()
	result.Height = bag.Height()
	result.Balanced = bag.IsBalanced()
	result.Elements = integers(bag)

	return printJson(m.w, result)
}
