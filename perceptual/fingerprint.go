// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package perceptual

import (
	"strconv"
)

// initial accumulator value, also the fingerprint of an empty sequence
const initialValue = 0x00000000AAAAAAAA

// Fingerprint - type for a 64 bit perceptual fingerprint
type Fingerprint uint64

// NewFingerprint - compute the fingerprint of a byte sequence
//
// for each byte: XOR into the accumulator, add with wrap around, then
// shift left by eight bits; overflowed bits are discarded
func NewFingerprint(data []byte) Fingerprint {
	accumulator := uint64(initialValue)

	for _, b := range data {
		value := uint64(b)
		accumulator ^= value
		accumulator += value
		accumulator <<= 8
	}

	return Fingerprint(accumulator)
}

// String - convert a fingerprint to a fixed width hex string for use by the fmt package (for %s)
func (fingerprint Fingerprint) String() string {
	buffer := strconv.FormatUint(uint64(fingerprint), 16)
	return "0000000000000000"[len(buffer):] + buffer
}

// MarshalText - convert a fingerprint to hex text
func (fingerprint Fingerprint) MarshalText() ([]byte, error) {
	return []byte(fingerprint.String()), nil
}

// UnmarshalText - convert hex text into a fingerprint
func (fingerprint *Fingerprint) UnmarshalText(s []byte) error {
	value, err := strconv.ParseUint(string(s), 16, 64)
	if nil != err {
		return err
	}
	*fingerprint = Fingerprint(value)
	return nil
}
