// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
	"golang.org/x/exp/constraints"
)

// Check - verify ordering, balance, cached heights and counts
//
// heights are recomputed from the leaves and never taken from the
// cached values, the tree is not modified
func (m *Map[K, V]) Check() error {
	n, _, err := check(m.root, nil, nil)
	if nil != err {
		return err
	}
	if n != m.count {
		return fault.ErrCountMismatch
	}

	free := 0
	for p := m.pool; nil != p; p = p.right {
		free += 1
	}
	if free != m.free {
		return fault.ErrPoolCorrupt
	}
	return nil
}

// internal: consistency checker, keys must lie strictly inside (low, high)
// returns the node count and the actual height of the sub-tree
func check[K constraints.Ordered, V any](p *node[K, V], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && p.key <= *low {
		return 0, 0, fault.ErrKeyOrder
	}
	if nil != high && p.key >= *high {
		return 0, 0, fault.ErrKeyOrder
	}

	nl, hl, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return 1 + nl + nr, h, nil
}
