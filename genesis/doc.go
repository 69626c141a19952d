// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - the fixed preimage for the first block link
//
// the first block has no predecessor so its previous hash is the
// digest of a sentinel string, constant across all ledgers
package genesis
