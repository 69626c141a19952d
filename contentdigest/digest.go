// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contentdigest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/helix-inc/helixd/fault"
)

// Length - number of bytes in the digest
const Length = sha256.Size

// Digest - type for a digest
// stored as the natural big endian byte order of SHA-256
// represented as upper case hex for print and JSON encoding
type Digest [Length]byte

// upper case hex digits for text encoding
const hexDigitsUpper = "0123456789ABCDEF"

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha256.Sum256(record)
}

// NewDigestFromString - create a digest from the bytes of a string
//
// surrounding white space must already be trimmed by the caller
func NewDigestFromString(record string) Digest {
	return sha256.Sum256([]byte(record))
}

// internal function to hex encode a digest with upper case digits
func encodeUpper(d Digest) []byte {
	buffer := make([]byte, 2*Length)
	for i, b := range d {
		buffer[2*i] = hexDigitsUpper[b>>4]
		buffer[2*i+1] = hexDigitsUpper[b&0x0f]
	}
	return buffer
}

// String - convert a binary digest to upper case hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return string(encodeUpper(digest))
}

// GoString - convert a binary digest to upper case hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256:" + string(encodeUpper(digest)) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if Length != hex.DecodedLen(len(token)) {
		return fault.ErrNotADigest
	}
	buffer := make([]byte, Length)
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrNotADigest
	}
	copy(digest[:], buffer)
	return nil
}

// MarshalText - convert digest to upper case hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return encodeUpper(digest), nil
}

// UnmarshalText - convert hex text into a digest
//
// lower case hex is accepted on input, output is always upper case
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrNotADigest
	}
	buffer := make([]byte, Length)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrNotADigest
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrNotADigest
	}
	copy(digest[:], buffer)
	return nil
}
