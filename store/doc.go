// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - expiring memory store of uploaded records
//
// the chain keeps only digests, so the raw sequences of recent
// uploads are retained here for a limited time to support the near
// duplicate advisory scan; entries expire automatically and nothing
// is persisted
package store
