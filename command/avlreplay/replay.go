// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/counter"
	"github.com/bitmark-inc/avlmap/fault"
)

// names of the replay statistics
const (
	statInserted    = "inserted"
	statOverwritten = "overwritten"
	statErased      = "erased"
	statMissing     = "missing"
	statFound       = "found"
)

type replayer struct {
	log   *logger.L
	out   io.Writer // console output, nil to suppress
	check bool      // validate the tree after each step
	tree  *avl.Map[int, int]
	stats *counter.Set
}

func newReplayer(log *logger.L, out io.Writer, check bool) *replayer {
	return &replayer{
		log:   log,
		out:   out,
		check: check,
		tree:  avl.New[int, int](),
		stats: counter.NewSet(),
	}
}

// apply all steps in order, stops at the first failed check
func (r *replayer) run(steps []Step) error {
	r.log.Infof("replay: %d steps  check: %t", len(steps), r.check)

	for i, step := range steps {
		if err := r.apply(step); nil != err {
			r.log.Errorf("step[%d]: %s  error: %s", i, step, err)
			return err
		}
		r.log.Debugf("step[%d]: %s  count: %d  height: %d", i, step, r.tree.Count(), r.tree.Height())

		if !r.check {
			continue
		}
		if err := r.tree.Check(); nil != err {
			r.log.Errorf("step[%d]: %s  check failed: %s", i, step, err)
			fault.Criticalf("tree inconsistent after step[%d]: %s  error: %s", i, step, err)
			return err
		}
	}

	r.log.Infof("finished: %s  count: %d  height: %d", r.stats, r.tree.Count(), r.tree.Height())
	return nil
}

func (r *replayer) apply(step Step) error {
	switch step.Op {
	case opInsert:
		if r.tree.Insert(step.Key, step.Value) {
			r.stats.Increment(statInserted)
		} else {
			r.stats.Increment(statOverwritten)
		}
		r.printf("Inserted Key: %d, Value: %d\n", step.Key, step.Value)
		r.printHeight()

	case opErase:
		if !r.tree.Contains(step.Key) {
			r.stats.Increment(statMissing)
			r.printf("Key %d not found.\n", step.Key)
			return nil
		}
		r.tree.Erase(step.Key)
		r.stats.Increment(statErased)
		r.printf("Deleted Key: %d\n", step.Key)
		r.printHeight()

	case opContains:
		if value, ok := r.tree.Get(step.Key); ok {
			r.stats.Increment(statFound)
			r.printf("Key %d found, Value: %d\n", step.Key, value)
		} else {
			r.stats.Increment(statMissing)
			r.printf("Key %d not found.\n", step.Key)
		}

	default:
		return fault.ErrInvalidOperation
	}
	return nil
}

func (r *replayer) printHeight() {
	r.printf("Height of AVL Tree: %d\n", r.tree.Height())
}

func (r *replayer) printf(format string, arguments ...interface{}) {
	if nil == r.out {
		return
	}
	fmt.Fprintf(r.out, format, arguments...)
}
