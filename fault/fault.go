// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigurationResult  = InvalidError("configuration must return a table")
	ErrCountMismatch        = InvalidError("node count does not match tree")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInvalidDataDirectory = InvalidError("data directory is not valid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOperation     = InvalidError("operation is not valid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvalidError("keys are out of order")
	ErrMissingSteps         = NotFoundError("no steps to replay")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotPlainFileName     = InvalidError("file name must not contain a path")
	ErrPoolCorrupt          = ProcessError("node pool is corrupt")
	ErrUnbalanced           = InvalidError("sub-tree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
