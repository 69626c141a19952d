// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fasta

import (
	"github.com/helix-inc/helixd/perceptual"
)

// Fasta - a definition label, a validated sequence and its fingerprint
//
// the fingerprint is recomputed whenever the sequence changes and is
// never stored independently of it
type Fasta struct {
	definition  string
	seq         []byte
	fingerprint perceptual.Fingerprint
}

// New - create an empty record
//
// an empty sequence is valid and carries the initial fingerprint value
func New() *Fasta {
	return &Fasta{
		definition:  "",
		seq:         nil,
		fingerprint: perceptual.NewFingerprint(nil),
	}
}

// IsValidSequence - check a byte sequence against the IUPAC alphabet
//
// each byte is folded to upper case before the check; an empty
// sequence is valid
func IsValidSequence(seq []byte) bool {
	for _, c := range seq {
		upper := c
		if upper >= 'a' {
			upper -= 32
		}
		switch upper {
		case 'A', 'C', 'G', 'T', 'N', 'U', 'K', 'S',
			'Y', 'M', 'W', 'R', 'B', 'D', 'H', 'V', '-':
		default:
			return false
		}
	}
	return true
}

// SetSequence - replace the stored sequence if the new one is valid
//
// returns false and leaves the record entirely unchanged when the new
// sequence fails validation; on success the bytes are stored verbatim
// (no case normalisation) and the fingerprint is recomputed
func (fasta *Fasta) SetSequence(newSeq []byte) bool {
	if !IsValidSequence(newSeq) {
		return false
	}
	fasta.seq = make([]byte, len(newSeq))
	copy(fasta.seq, newSeq)
	fasta.fingerprint = perceptual.NewFingerprint(fasta.seq)
	return true
}

// SetDefinition - set the free text definition label
//
// the label is not validated
func (fasta *Fasta) SetDefinition(definition string) {
	fasta.definition = definition
}

// Definition - the free text definition label
func (fasta *Fasta) Definition() string {
	return fasta.definition
}

// Sequence - a copy of the stored sequence bytes
func (fasta *Fasta) Sequence() []byte {
	seq := make([]byte, len(fasta.seq))
	copy(seq, fasta.seq)
	return seq
}

// Fingerprint - the perceptual fingerprint of the stored sequence
func (fasta *Fasta) Fingerprint() perceptual.Fingerprint {
	return fasta.fingerprint
}

// DistanceTo - Hamming distance between the fingerprints of two records
//
// a small distance marks a near duplicate candidate; the caller picks
// the threshold (the maximum possible distance is 64)
func (fasta *Fasta) DistanceTo(other *Fasta) uint8 {
	return perceptual.Distance(fasta.fingerprint, other.fingerprint)
}
