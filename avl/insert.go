// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key or overwrite the value of an existing key
// returns true if a new node was added
func (m *Map[K, V]) Insert(key K, value V) bool {
	added := false
	m.root, added = m.insert(key, value, m.root)
	if added {
		m.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly new sub-tree root
func (m *Map[K, V]) insert(key K, value V, p *node[K, V]) (*node[K, V], bool) {
	if nil == p { // insert new node
		return m.newNode(key, value), true
	}

	added := false
	switch {
	case key < p.key:
		p.left, added = m.insert(key, value, p.left)
	case key > p.key:
		p.right, added = m.insert(key, value, p.right)
	default:
		p.value = value
		return p, false
	}

	// an overwrite below leaves the shape unchanged
	if !added {
		return p, false
	}

	fixHeight(p)
	balance := balanceFactor(p)

	switch {
	case balance > 1 && key < p.left.key:
		// single LL rotation
		return rotateRight(p), true

	case balance < -1 && key > p.right.key:
		// single RR rotation
		return rotateLeft(p), true

	case balance > 1 && key > p.left.key:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), true

	case balance < -1 && key < p.right.key:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}
	return p, true
}
