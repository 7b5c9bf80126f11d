// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbag/avl"
)

type sortResult struct {
	Order    string `json:"order"`
	Count    int    `json:"count"`
	Elements []int  `json:"elements"`
}

func runSort(c *cli.Context) error {

	bag, m, err := makeBag(c)
	if nil != err {
		return err
	}
	defer bag.Destroy()

	buffer := make([]avl.Element, bag.Count())
	n, err := bag.Elements(buffer)
	if nil != err {
		return err
	}

	result := sortResult{
		Order:    m.order,
		Count:    n,
		Elements: make([]int, n),
	}
	for i, e := range buffer[:n] {
		result.Elements[i] = e.(int)
	}

	return printJson(m.w, result)
}
