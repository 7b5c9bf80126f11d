// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbag/avl"
	"github.com/bitmark-inc/avlbag/fault"
)

type checkResult struct {
	Count     int       `json:"count"`
	Height    int       `json:"height"`
	Balanced  bool      `json:"balanced"`
	Heights   bool      `json:"heights"`
	Order     bool      `json:"order"`
	Allocator avl.Stats `json:"allocator"`
}

func runCheck(c *cli.Context) error {

	bag, m, err := makeBag(c)
	if nil != err {
		return err
	}
	defer bag.Destroy()

	result := checkResult{
		Count:     bag.Count(),
		Height:    bag.Height(),
		Balanced:  bag.IsBalanced(),
		Heights:   bag.CheckHeights(),
		Order:     bag.CheckOrder(),
		Allocator: avl.AllocatorStats(),
	}
	if err := printJson(m.w, result); nil != err {
		return err
	}

	if !result.Balanced || !result.Heights || !bag.CheckCount() {
		return fault.ErrUnbalancedTree
	}
	return nil
}
