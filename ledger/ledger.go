// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/helix-inc/helixd/blockrecord"
	"github.com/helix-inc/helixd/contentdigest"
	"github.com/helix-inc/helixd/counter"
	"github.com/helix-inc/helixd/fault"
	"github.com/helix-inc/helixd/genesis"
)

// Ledger - an append only chain of blocks and a FIFO queue of
// pending transactions
//
// the lock serialises Finalise calls and gives duplicate scans a
// consistent snapshot of the chain
type Ledger struct {
	sync.RWMutex
	log     *logger.L
	chain   []blockrecord.Block
	pending []blockrecord.Transaction

	// statistics
	submitted counter.Counter
	finalised counter.Counter
	rejected  counter.Counter
}

// Statistics - counts of transactions through the state machine
type Statistics struct {
	Submitted uint64
	Finalised uint64
	Rejected  uint64
}

// New - create an empty ledger
func New() *Ledger {
	l := &Ledger{
		log: logger.New("ledger"),
	}
	l.log.Info("starting…")
	return l
}

// Submit - hash a submission and queue it at the tail of the pending queue
//
// both strings are trimmed before hashing; the raw sequence bytes are
// not kept, only their digests; alphabet validation is the caller's
// responsibility (fasta.IsValidSequence) before calling Submit
//
// the queued transaction is returned so the caller can key any of its
// own indexes by the content hash
func (l *Ledger) Submit(dna string, submitter string) blockrecord.Transaction {
	tx := blockrecord.NewTransaction(dna, submitter)

	l.Lock()
	l.pending = append(l.pending, tx)
	n := len(l.pending)
	l.Unlock()

	l.submitted.Increment()
	l.log.Infof("queued transaction: %s  pending: %d", tx.ContentHash, n)
	return tx
}

// Finalise - convert the head pending transaction into a block
//
// exactly one transaction is processed per call:
//
//	empty queue          → fault.ErrNoPendingTransactions, chain unchanged
//	duplicate content    → fault.ErrDuplicateSequence, the transaction is
//	                       consumed (removed from the queue), chain unchanged
//	otherwise            → a new block linked to its predecessor (or to the
//	                       genesis preimage for block zero) is appended and
//	                       returned
func (l *Ledger) Finalise() (*blockrecord.Block, error) {
	l.Lock()
	defer l.Unlock()

	if 0 == len(l.pending) {
		return nil, fault.ErrNoPendingTransactions
	}

	tx := l.pending[0]

	// scan all committed blocks for the same content
	for i, block := range l.chain {
		if block.ContentHash == tx.ContentHash {
			// consume the transaction, it is never retried
			l.pending = l.pending[1:]
			l.rejected.Increment()
			l.log.Warnf("duplicate of block %d content: %s", i, tx.ContentHash)
			return nil, fault.ErrDuplicateSequence
		}
	}

	previousHash := genesis.LinkDigest()
	if n := len(l.chain); n > 0 {
		link, err := l.chain[n-1].LinkDigest()
		if nil != err {
			// canonical packing cannot fail on valid digests, but
			// the transaction must not be consumed if it ever does
			l.log.Errorf("link digest error: %s", err)
			return nil, err
		}
		previousHash = link
	}

	block := blockrecord.Block{
		PreviousHash: previousHash,
		Id:           tx.Id,
		ContentHash:  tx.ContentHash,
	}

	l.chain = append(l.chain, block)
	l.pending = l.pending[1:]
	l.finalised.Increment()

	l.log.Infof("block %d content: %s", len(l.chain)-1, block.ContentHash)
	return &block, nil
}

// Blocks - a copy of the committed chain in append order
func (l *Ledger) Blocks() []blockrecord.Block {
	l.RLock()
	defer l.RUnlock()

	chain := make([]blockrecord.Block, len(l.chain))
	copy(chain, l.chain)
	return chain
}

// Height - number of committed blocks
func (l *Ledger) Height() uint64 {
	l.RLock()
	defer l.RUnlock()

	return uint64(len(l.chain))
}

// PendingCount - number of transactions waiting to be finalised
func (l *Ledger) PendingCount() int {
	l.RLock()
	defer l.RUnlock()

	return len(l.pending)
}

// Contains - check if a content digest is already committed
func (l *Ledger) Contains(digest contentdigest.Digest) bool {
	l.RLock()
	defer l.RUnlock()

	for _, block := range l.chain {
		if block.ContentHash == digest {
			return true
		}
	}
	return false
}

// Statistics - a snapshot of the transaction counters
func (l *Ledger) Statistics() Statistics {
	return Statistics{
		Submitted: l.submitted.Uint64(),
		Finalised: l.finalised.Uint64(),
		Rejected:  l.rejected.Uint64(),
	}
}
