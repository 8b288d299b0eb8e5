// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree mapping ordered keys to values
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use a mutex to guard every call,
//       including the read only ones.
//
// Each node caches the height of its sub-tree (a leaf has height 1,
// an absent sub-tree height 0).  Insert and Erase descend
// recursively, make the structural change at the bottom and then
// recompute heights and rotate on the way back up, each level
// returning the possibly new root of its sub-tree to the caller.
//
// Inserting an existing key overwrites its value without touching
// the shape of the tree.  Erasing a node with two children copies
// the in-order successor into it and then erases the successor from
// the right sub-tree.
//
// Floating point keys are allowed but NaN has no total order and
// must not be used as a key.
package avl
