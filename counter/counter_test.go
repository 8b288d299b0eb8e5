// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Increment() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}
	if c1.IsZero() {
		t.Errorf("counter is zero after incrementing")
	}
}

func TestSet(t *testing.T) {
	s := counter.NewSet()

	assert.Equal(t, uint64(0), s.Value("inserted"))
	assert.Equal(t, "", s.String())

	s.Increment("inserted")
	s.Increment("inserted")
	s.Increment("erased")
	s.Get("missing")

	assert.Equal(t, uint64(2), s.Value("inserted"))
	assert.Equal(t, uint64(1), s.Value("erased"))
	assert.True(t, s.Get("missing").IsZero())
	assert.Equal(t, "erased: 1  inserted: 2  missing: 0", s.String())
}
