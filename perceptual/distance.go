// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package perceptual

import (
	"github.com/helix-inc/helixd/fault"
)

// Distance - Hamming distance between two fingerprints
//
// the number of bit positions that need to be flipped for one
// fingerprint to match the other, in the range 0..64
func Distance(a Fingerprint, b Fingerprint) uint8 {
	mask := uint64(0x01)
	distance := uint8(0)

	// step the mask over all 64 bit positions
	for index := 0; index < 64; index += 1 {
		if mask&uint64(a) != mask&uint64(b) {
			distance += 1
		}
		mask <<= 1
	}
	return distance
}

// internal function for the distance between two bytes, 0..8
func byteDistance(b1 byte, b2 byte) uint8 {
	mask := byte(0x01)
	distance := uint8(0)

	for index := 0; index < 8; index += 1 {
		if mask&b1 != mask&b2 {
			distance += 1
		}
		mask <<= 1
	}
	return distance
}

// DistanceBytes - Hamming distance between two equal length byte sequences
//
// the sum over all positions of the per byte bit distances; sequences
// of different lengths have no finite distance so the call fails with
// fault.ErrLengthMismatch and the caller decides how to recover
func DistanceBytes(x []byte, y []byte) (uint64, error) {
	if len(x) != len(y) {
		return 0, fault.ErrLengthMismatch
	}

	totalDistance := uint64(0)
	for i := range x {
		totalDistance += uint64(byteDistance(x[i], y[i]))
	}
	return totalDistance, nil
}
