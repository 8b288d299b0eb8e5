// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// cached height, zero for an absent sub-tree
func height[K constraints.Ordered, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func fixHeight[K constraints.Ordered, V any](p *node[K, V]) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// height(left) - height(right)
func balanceFactor[K constraints.Ordered, V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// left child becomes the root of the sub-tree
//
//	      p            x
//	     / \          / \
//	    x   c   →    a   p
//	   / \              / \
//	  a   b            b   c
func rotateRight[K constraints.Ordered, V any](p *node[K, V]) *node[K, V] {
	x := p.left
	p.left = x.right
	x.right = p

	fixHeight(p)
	fixHeight(x)
	return x
}

// right child becomes the root of the sub-tree
func rotateLeft[K constraints.Ordered, V any](p *node[K, V]) *node[K, V] {
	x := p.right
	p.right = x.left
	x.left = p

	fixHeight(p)
	fixHeight(x)
	return x
}
