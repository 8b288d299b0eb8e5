// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Erase - removes a specific key from the map
// returns true if the key was present
func (m *Map[K, V]) Erase(key K) bool {
	removed := false
	m.root, removed = m.erase(key, m.root)
	if removed {
		m.count -= 1
	}
	return removed
}

// internal delete routine, returns the possibly new sub-tree root
func (m *Map[K, V]) erase(key K, p *node[K, V]) (*node[K, V], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = m.erase(key, p.left)
	case key > p.key:
		p.right, removed = m.erase(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			// the link to p is replaced by its only sub-tree, which
			// is already balanced with a correct height
			child := p.left
			if nil == child {
				child = p.right
			}
			m.freeNode(p)
			return child, true
		}

		// two children: take over the in-order successor, then
		// delete it from the right sub-tree where it has no left child
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.right, removed = m.erase(s.key, p.right)
	}

	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// delete: tree balancer
//
// any level on the way back up may need a rotation, the case is
// chosen from the balance of the heavier child
func rebalance[K constraints.Ordered, V any](p *node[K, V]) *node[K, V] {
	fixHeight(p)
	balance := balanceFactor(p)

	switch {
	case balance > 1 && balanceFactor(p.left) >= 0:
		// single LL rotation
		return rotateRight(p)

	case balance > 1:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case balance < -1 && balanceFactor(p.right) <= 0:
		// single RR rotation
		return rotateLeft(p)

	case balance < -1:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}
