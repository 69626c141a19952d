// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/helix-inc/helixd/blockrecord"
	"github.com/helix-inc/helixd/fault"
	"github.com/helix-inc/helixd/genesis"
	"github.com/helix-inc/helixd/ledger"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		fmt.Printf("logger setup failed with error: %s\n", err)
		os.Exit(1)
	}

	result := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(result)
}

func TestFinaliseEmptyQueue(t *testing.T) {
	l := ledger.New()

	block, err := l.Finalise()
	assert.Equal(t, fault.ErrNoPendingTransactions, err, "empty queue error")
	assert.Nil(t, block, "block returned from empty queue")
	assert.Equal(t, uint64(0), l.Height(), "chain changed by failed finalise")

	// not fatal: a later submit makes finalise succeed
	l.Submit("ACGT", "alice")
	_, err = l.Finalise()
	assert.Nil(t, err, "finalise after submit failed")
}

func TestSubmitAndFinalise(t *testing.T) {
	l := ledger.New()

	l.Submit("ACGT", "alice")
	assert.Equal(t, 1, l.PendingCount(), "pending count")

	block, err := l.Finalise()
	assert.Nil(t, err, "finalise failed")
	assert.NotNil(t, block, "no block returned")

	assert.Equal(t, uint64(1), l.Height(), "chain height")
	assert.Equal(t, 0, l.PendingCount(), "transaction not consumed")

	// printf '%s' 'ACGT' | sha256sum ; printf '%s' 'alice' | sha256sum
	assert.Equal(t, "1DFF3E84FE7877E0673B69BBDDCF40124E396E3F9943DD890C91B6A09ADB9AF0", block.ContentHash.String(), "content hash")
	assert.Equal(t, "2BD806C97F0E00AF1A1FC3328FA763A9269723C8DB8FAC4F93AF71DB186D6E90", block.Id.String(), "id")
	assert.Equal(t, genesis.LinkDigest(), block.PreviousHash, "first block not linked to genesis")
}

func TestSubmitTrimsInput(t *testing.T) {
	l := ledger.New()

	tx := l.Submit("  ACGT\n", "\talice ")
	assert.Equal(t, blockrecord.NewTransaction("ACGT", "alice"), tx, "inputs not trimmed")
}

// the content hash is over the raw trimmed bytes, so a case variant
// is different content and must append a second block
func TestCaseVariantIsDistinctContent(t *testing.T) {
	l := ledger.New()

	l.Submit("ACGT", "alice")
	_, err := l.Finalise()
	assert.Nil(t, err, "first finalise failed")

	l.Submit("acgt", "alice")
	block, err := l.Finalise()
	assert.Nil(t, err, "case variant was rejected")
	assert.NotNil(t, block, "no block for case variant")
	assert.Equal(t, uint64(2), l.Height(), "chain height")
}

func TestDuplicateContent(t *testing.T) {
	l := ledger.New()

	l.Submit("ACGT", "alice")
	l.Submit(" ACGT ", "bob") // same content after trimming, different submitter

	_, err := l.Finalise()
	assert.Nil(t, err, "first finalise failed")

	block, err := l.Finalise()
	assert.Equal(t, fault.ErrDuplicateSequence, err, "duplicate not detected")
	assert.Nil(t, block, "block returned for duplicate")

	// the duplicate is consumed, the chain is unchanged
	assert.Equal(t, uint64(1), l.Height(), "chain changed by rejected duplicate")
	assert.Equal(t, 0, l.PendingCount(), "duplicate transaction not consumed")

	// the rejection does not poison later transactions
	l.Submit("GATTACA", "carol")
	_, err = l.Finalise()
	assert.Nil(t, err, "finalise after rejection failed")
	assert.Equal(t, uint64(2), l.Height(), "chain height")
}

func TestChainLinkage(t *testing.T) {
	l := ledger.New()

	sequences := []string{"ACGT", "GATTACA", "ACGTN", "UUUU-"}
	for _, s := range sequences {
		l.Submit(s, "alice")
		_, err := l.Finalise()
		assert.Nil(t, err, "finalise failed for %q", s)
	}

	chain := l.Blocks()
	assert.Equal(t, len(sequences), len(chain), "chain length")

	assert.Equal(t, genesis.LinkDigest(), chain[0].PreviousHash, "block 0 not linked to genesis")
	for i := 1; i < len(chain); i += 1 {
		link, err := chain[i-1].LinkDigest()
		assert.Nil(t, err, "link digest failed at block %d", i-1)
		assert.Equal(t, link, chain[i].PreviousHash, "block %d not linked to block %d", i, i-1)
	}
}

// transactions leave the queue strictly in submission order
func TestFinaliseIsFIFO(t *testing.T) {
	l := ledger.New()

	sequences := []string{"ACGT", "GATTACA", "ACGTN"}
	expected := make([]blockrecord.Transaction, len(sequences))
	for i, s := range sequences {
		expected[i] = l.Submit(s, "alice")
	}

	for i := range sequences {
		block, err := l.Finalise()
		assert.Nil(t, err, "finalise %d failed", i)
		assert.Equal(t, expected[i].ContentHash, block.ContentHash, "finalised out of order at %d", i)
		assert.Equal(t, expected[i].Id, block.Id, "id mismatch at %d", i)
	}
}

func TestBlocksReturnsCopy(t *testing.T) {
	l := ledger.New()

	l.Submit("ACGT", "alice")
	_, err := l.Finalise()
	assert.Nil(t, err, "finalise failed")

	chain := l.Blocks()
	chain[0].ContentHash = blockrecord.NewTransaction("GATTACA", "x").ContentHash

	fresh := l.Blocks()
	assert.Equal(t, "1DFF3E84FE7877E0673B69BBDDCF40124E396E3F9943DD890C91B6A09ADB9AF0", fresh[0].ContentHash.String(), "caller mutated ledger state")
}

func TestContains(t *testing.T) {
	l := ledger.New()

	tx := l.Submit("ACGT", "alice")
	assert.False(t, l.Contains(tx.ContentHash), "pending content reported as committed")

	_, err := l.Finalise()
	assert.Nil(t, err, "finalise failed")
	assert.True(t, l.Contains(tx.ContentHash), "committed content not found")
}

func TestStatistics(t *testing.T) {
	l := ledger.New()

	l.Submit("ACGT", "alice")
	l.Submit("ACGT", "bob")
	l.Submit("GATTACA", "carol")

	_, _ = l.Finalise()
	_, _ = l.Finalise() // duplicate, rejected
	_, _ = l.Finalise()

	s := l.Statistics()
	assert.Equal(t, uint64(3), s.Submitted, "submitted count")
	assert.Equal(t, uint64(2), s.Finalised, "finalised count")
	assert.Equal(t, uint64(1), s.Rejected, "rejected count")
}
