// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the hash linked chain and its pending queue
//
// storage for:
// 1. pending transactions waiting to be finalised, strictly FIFO
// 2. committed blocks, append only, linked by content digests
//
// a transaction moves Pending → Finalised (a block is appended) or
// Pending → Rejected (dropped, exact duplicate content); there are no
// other transitions and a transaction is never re-queued
//
// all state is in memory and owned by the caller holding the Ledger
// instance; nothing survives the process
package ledger
