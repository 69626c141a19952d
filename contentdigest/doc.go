// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contentdigest - implementation of content hashing
//
// SHA-256 over the raw record bytes, displayed as upper case hex
package contentdigest
