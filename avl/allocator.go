// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/avlbag/fault"
)

// a node in the tree
type node struct {
	left   *node   // left sub-tree
	right  *node   // right sub-tree
	elem   Element // the stored element
	height int     // 1 for a leaf
}

// counter - a 64 bit unsigned integer that is updated atomically
type counter uint64

func (c *counter) increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

func (c *counter) decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

func (c *counter) value() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// global data for allocator
var m sync.Mutex      // to keep pool and freeNodes in sync
var pool *node        // linked list of reclaimed nodes
var freeNodes counter // number of nodes in the pool
var totalNodes counter
var rotations counter

// Stats - allocator and balancing statistics for all bags
type Stats struct {
	TotalNodes uint64 `json:"total_nodes"` // nodes ever created
	FreeNodes  uint64 `json:"free_nodes"`  // reclaimed nodes waiting for reuse
	Rotations  uint64 `json:"rotations"`   // single rotations performed
}

// AllocatorStats - current statistics
func AllocatorStats() Stats {
	m.Lock()
	defer m.Unlock()
	return Stats{
		TotalNodes: totalNodes.value(),
		FreeNodes:  freeNodes.value(),
		Rotations:  rotations.value(),
	}
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(elem Element) *node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes.value() {
			m.Unlock()
			fault.Panicf("avl: node pool corrupt: empty pool with %d free nodes", freeNodes.value())
		}
		totalNodes.increment()
		m.Unlock()
		return &node{
			elem:   elem,
			height: 1,
		}
	}
	p := pool
	pool = p.right
	p.right = nil // ensure freelist pointer is cleared
	p.elem = elem
	p.height = 1
	freeNodes.decrement()
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(p *node) {
	m.Lock()
	p.left = nil
	p.elem = nil
	p.height = 0

	p.right = pool // use as free list pointer
	pool = p
	freeNodes.increment()
	m.Unlock()
}

// reclaim a whole sub-tree
func freeTree(p *node) {
	if nil == p {
		return
	}
	freeTree(p.left)
	freeTree(p.right)
	freeNode(p)
}
