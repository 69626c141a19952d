// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ProcessError("already initialised")
	ErrDuplicateSequence          = ExistsError("sequence already recorded in the chain")
	ErrInvalidConfigurationResult = InvalidError("configuration script must return a table")
	ErrInvalidSequence            = InvalidError("sequence contains a non-IUPAC nucleotide code")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrLengthMismatch             = LengthError("byte sequences have different lengths")
	ErrNoPendingTransactions      = NotFoundError("no pending transactions")
	ErrNotADigest                 = InvalidError("not a digest")
	ErrNotInitialised             = ProcessError("not initialised")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
