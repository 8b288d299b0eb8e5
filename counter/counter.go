// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - tallies of map operations
package counter

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously incremented
// just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Set - named counters, created on first use
type Set struct {
	items map[string]*Counter
}

// NewSet - create an empty set of counters
func NewSet() *Set {
	return &Set{
		items: make(map[string]*Counter),
	}
}

// Get - the counter for a name
func (s *Set) Get(name string) *Counter {
	c, ok := s.items[name]
	if !ok {
		c = new(Counter)
		s.items[name] = c
	}
	return c
}

// Increment - add 1 to the named counter
func (s *Set) Increment(name string) uint64 {
	return s.Get(name).Increment()
}

// Value - current value of a named counter, zero if never used
func (s *Set) Value(name string) uint64 {
	if c, ok := s.items[name]; ok {
		return c.Uint64()
	}
	return 0
}

// String - all counters sorted by name e.g. "erased: 5  inserted: 20"
func (s *Set) String() string {
	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d", name, s.items[name].Uint64()))
	}
	return strings.Join(parts, "  ")
}
