// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Map - type to hold the root node of a tree
type Map[K constraints.Ordered, V any] struct {
	root  *node[K, V]
	count int
	pool  *node[K, V] // linked list of reclaimed nodes
	free  int         // number of nodes in the pool
}

// New - create an initially empty map
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if map contains no data
func (m *Map[K, V]) IsEmpty() bool {
	return nil == m.root
}

// Count - number of keys currently in the map
func (m *Map[K, V]) Count() int {
	return m.count
}

// Height - height of the tree, zero for an empty map
func (m *Map[K, V]) Height() int {
	return height(m.root)
}

// Clear - remove every key
func (m *Map[K, V]) Clear() {
	m.release(m.root)
	m.root = nil
	m.count = 0
}

// children are released before their parent
func (m *Map[K, V]) release(p *node[K, V]) {
	if nil == p {
		return
	}
	m.release(p.left)
	m.release(p.right)
	m.freeNode(p)
}
