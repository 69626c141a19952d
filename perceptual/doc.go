// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package perceptual - perceptual fingerprint of a byte sequence
//
// Unlike a cryptographic digest, similar inputs produce fingerprints
// with a small Hamming distance, so near duplicate sequences can be
// detected by thresholding the bit distance between fingerprints.
//
// The fingerprint is NOT cryptographically secure and bytes earlier
// than the final eight are progressively shifted out of the value.
package perceptual
