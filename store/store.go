// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sort"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/helix-inc/helixd/contentdigest"
	"github.com/helix-inc/helixd/fasta"
	"github.com/helix-inc/helixd/perceptual"
)

const (
	// DefaultRetention - how long an uploaded record stays scannable
	DefaultRetention = 24 * time.Hour

	cleanupInterval = 10 * time.Minute
)

// Store - records of recent uploads keyed by content digest
type Store struct {
	log   *logger.L
	cache *cache.Cache
}

// cached value: the digest is kept beside the record so scans do not
// re-parse the map key
type entry struct {
	digest contentdigest.Digest
	record *fasta.Fasta
}

// Match - a near duplicate candidate from a fingerprint scan
type Match struct {
	ContentHash contentdigest.Digest
	Distance    uint8
	Record      *fasta.Fasta
}

// New - create a store whose entries expire after the retention period
//
// a zero retention keeps records until the process ends
func New(retention time.Duration) *Store {
	expiration := retention
	if 0 == expiration {
		expiration = cache.NoExpiration
	}
	return &Store{
		log:   logger.New("store"),
		cache: cache.New(expiration, cleanupInterval),
	}
}

// Put - retain a record under its content digest
func (s *Store) Put(digest contentdigest.Digest, record *fasta.Fasta) {
	s.cache.Set(digest.String(), entry{digest: digest, record: record}, cache.DefaultExpiration)
	s.log.Debugf("retained: %s", digest)
}

// Get - fetch a record by its content digest
func (s *Store) Get(digest contentdigest.Digest) (*fasta.Fasta, bool) {
	obj, found := s.cache.Get(digest.String())
	if !found {
		return nil, false
	}
	return obj.(entry).record, true
}

// Delete - drop a record before its natural expiry
func (s *Store) Delete(digest contentdigest.Digest) {
	s.cache.Delete(digest.String())
}

// Size - number of retained records, expired entries included until swept
func (s *Store) Size() int {
	return s.cache.ItemCount()
}

// NearDuplicates - scan retained records for fingerprints within the threshold
//
// results are sorted by ascending distance; the threshold is in bits
// of the 64 bit fingerprint, so 0 matches only identical fingerprints
// and 64 matches everything
func (s *Store) NearDuplicates(fingerprint perceptual.Fingerprint, threshold uint8) []Match {
	matches := []Match{}

	for _, item := range s.cache.Items() {
		e := item.Object.(entry)
		distance := perceptual.Distance(fingerprint, e.record.Fingerprint())
		if distance <= threshold {
			matches = append(matches, Match{
				ContentHash: e.digest,
				Distance:    distance,
				Record:      e.record,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].ContentHash.String() < matches[j].ContentHash.String()
	})
	return matches
}
