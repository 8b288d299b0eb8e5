// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the key is present
func (m *Map[K, V]) Contains(key K) bool {
	return nil != m.search(key)
}

// Get - find the value stored under a key
func (m *Map[K, V]) Get(key K) (V, bool) {
	p := m.search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

func (m *Map[K, V]) search(key K) *node[K, V] {
	p := m.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
