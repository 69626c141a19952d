// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/json"
	"strings"

	"github.com/helix-inc/helixd/contentdigest"
)

// Transaction - a pending submission
//
// the id is the digest of the trimmed submitter identifier and the
// content hash is the digest of the trimmed sequence string
type Transaction struct {
	Id          contentdigest.Digest `json:"id"`
	ContentHash contentdigest.Digest `json:"content_hash"`
}

// Block - a committed transaction
//
// previous hash links to the immediately preceding block; block zero
// links to the genesis preimage instead
type Block struct {
	PreviousHash contentdigest.Digest `json:"previous_hash"`
	Id           contentdigest.Digest `json:"id"`
	ContentHash  contentdigest.Digest `json:"content_hash"`
}

// NewTransaction - create a transaction from raw submission strings
//
// both strings are trimmed of surrounding white space before hashing;
// no alphabet validation happens here, that is the caller's
// responsibility via the fasta package
func NewTransaction(dna string, submitter string) Transaction {
	return Transaction{
		Id:          contentdigest.NewDigestFromString(strings.TrimSpace(submitter)),
		ContentHash: contentdigest.NewDigestFromString(strings.TrimSpace(dna)),
	}
}

// Pack - the canonical serialized form of a block
//
// a JSON object with the fields previous_hash, id and content_hash in
// that order, values as upper case hex; this exact byte form is hashed
// to produce the next block's previous hash, so it must remain stable
func (block Block) Pack() ([]byte, error) {
	return json.Marshal(block)
}

// LinkDigest - digest of the canonical packed form
//
// the value the next block must carry as its previous hash
func (block Block) LinkDigest() (contentdigest.Digest, error) {
	packed, err := block.Pack()
	if nil != err {
		return contentdigest.Digest{}, err
	}
	return contentdigest.NewDigest(packed), nil
}
