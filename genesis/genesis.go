// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis

import (
	"github.com/helix-inc/helixd/contentdigest"
)

// Preimage - the sentinel hashed in place of a real predecessor
//
// do not change this value: every existing chain's first block links
// to its digest
const Preimage = "0000000000"

// LinkDigest - the previous hash carried by block zero
func LinkDigest() contentdigest.Digest {
	return contentdigest.NewDigestFromString(Preimage)
}
