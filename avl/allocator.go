// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
	"golang.org/x/exp/constraints"
)

// maximum number of reclaimed nodes kept for reuse by one map
const poolLimit = 1024

// a node in the tree
type node[K constraints.Ordered, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree, also the free list link
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // height of this sub-tree, leaf = 1
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (m *Map[K, V]) newNode(key K, value V) *node[K, V] {
	if nil == m.pool {
		if 0 != m.free {
			fault.Panicf("avl: pool corrupt: empty list with free count: %d", m.free)
		}
		return &node[K, V]{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := m.pool
	m.pool = p.right
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	m.free -= 1
	return p
}

// reclaim a node and keep it in the pool
func (m *Map[K, V]) freeNode(p *node[K, V]) {
	var zeroKey K
	var zeroValue V

	p.left = nil
	p.right = nil
	p.key = zeroKey
	p.value = zeroValue
	p.height = 0

	if m.free >= poolLimit {
		return
	}
	p.right = m.pool // use as free list pointer
	m.pool = p
	m.free += 1
}
