// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package perceptual_test

import (
	"testing"

	"github.com/helix-inc/helixd/fault"
	"github.com/helix-inc/helixd/perceptual"
)

// fixed vectors pin the algorithm bit for bit: the saturating shift
// left is intentional and must never be "improved"
func TestNewFingerprint(t *testing.T) {
	testList := []struct {
		input    string
		expected perceptual.Fingerprint
	}{
		{"", 0x00000000AAAAAAAA}, // initial accumulator value
		{"AC", 0x0000AAAAAB2C8600},
		{"ACGT", 0xAAAAAB2C868EA800},
		{"ACGA", 0xAAAAAB2C868E8200},
		{"GATTACA", 0x3482A8A882868200},
		{"ACGTACGTACGT", 0x868EA882868EA800},
	}

	for i, item := range testList {
		f := perceptual.NewFingerprint([]byte(item.input))
		if item.expected != f {
			t.Errorf("%d: fingerprint(%q) = %#016x expected: %#016x", i, item.input, uint64(f), uint64(item.expected))
		}
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	data := []byte("ACGTNUKSYMWRBDHV-acgt")
	first := perceptual.NewFingerprint(data)
	second := perceptual.NewFingerprint(data)
	if first != second {
		t.Errorf("fingerprint not deterministic: %s != %s", first, second)
	}
}

func TestDistanceSelfIsZero(t *testing.T) {
	fingerprintList := []perceptual.Fingerprint{
		0, 1, 0xAAAAAAAA, 0xFFFFFFFFFFFFFFFF,
		perceptual.NewFingerprint([]byte("ACGT")),
	}
	for i, f := range fingerprintList {
		if d := perceptual.Distance(f, f); 0 != d {
			t.Errorf("%d: distance(x, x) = %d expected: 0", i, d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := perceptual.NewFingerprint([]byte("ACGT"))
	b := perceptual.NewFingerprint([]byte("ACGA"))
	if perceptual.Distance(a, b) != perceptual.Distance(b, a) {
		t.Errorf("distance is not symmetric")
	}
}

func TestDistanceFunctional(t *testing.T) {
	testList := []struct {
		a        perceptual.Fingerprint
		b        perceptual.Fingerprint
		expected uint8
	}{
		{0x00, 0x01, 1},
		{0x00, 0xFF, 8},
		{0x00, 0xFFFFFFFFFFFFFFFF, 64},
		{0xAAAAAAAA, 0x55555555, 32},
		{perceptual.NewFingerprint([]byte("ACGT")), perceptual.NewFingerprint([]byte("ACGA")), 3},
	}

	for i, item := range testList {
		if d := perceptual.Distance(item.a, item.b); item.expected != d {
			t.Errorf("%d: distance(%#x, %#x) = %d expected: %d", i, uint64(item.a), uint64(item.b), d, item.expected)
		}
	}
}

// a single trailing character edit keeps the fingerprints close
func TestSimilarStringsAreClose(t *testing.T) {
	a := perceptual.NewFingerprint([]byte("1234567890"))
	b := perceptual.NewFingerprint([]byte("1234567870"))

	d := perceptual.Distance(a, b)
	if d > 8 {
		t.Errorf("similar strings too far apart: distance = %d", d)
	}
	if 3 != d {
		t.Errorf("distance = %d expected: 3", d)
	}
}

func TestDistanceBytes(t *testing.T) {
	testList := []struct {
		x        string
		y        string
		expected uint64
	}{
		{"0001", "0000", 1},
		{"000A", "0000", 4},
		{"", "", 0},
		{"ACGT", "ACGT", 0},
	}

	for i, item := range testList {
		d, err := perceptual.DistanceBytes([]byte(item.x), []byte(item.y))
		if nil != err {
			t.Fatalf("%d: distance bytes error: %v", i, err)
		}
		if item.expected != d {
			t.Errorf("%d: distance(%q, %q) = %d expected: %d", i, item.x, item.y, d, item.expected)
		}
	}
}

func TestDistanceBytesLengthMismatch(t *testing.T) {
	_, err := perceptual.DistanceBytes([]byte("hello!"), []byte("0000"))
	if nil == err {
		t.Fatalf("unequal length distance did not fail")
	}
	if fault.ErrLengthMismatch != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarshalText(t *testing.T) {
	f := perceptual.Fingerprint(0x00000000AAAAAAAA)

	buffer, err := f.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %v", err)
	}
	if "00000000aaaaaaaa" != string(buffer) {
		t.Errorf("marshal text: %s expected: 00000000aaaaaaaa", buffer)
	}

	var roundTrip perceptual.Fingerprint
	err = roundTrip.UnmarshalText(buffer)
	if nil != err {
		t.Fatalf("unmarshal text error: %v", err)
	}
	if roundTrip != f {
		t.Errorf("unmarshal text: %s expected: %s", roundTrip, f)
	}
}
