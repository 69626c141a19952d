// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - transaction and block records
//
// a transaction carries only the digests of a submission, never the
// raw sequence bytes; a block is an immutable committed transaction
// linked to its predecessor by the digest of the predecessor's
// canonical packed form
package blockrecord
