// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fasta - validated nucleotide sequence records
//
// Sequences are expected in the standard IUB/IUPAC nucleic acid codes:
//
//	A  adenosine          C  cytidine             G  guanine
//	T  thymidine          N  A/G/C/T (any)        U  uridine
//	K  G/T (keto)         S  G/C (strong)         Y  T/C (pyrimidine)
//	M  A/C (amino)        W  A/T (weak)           R  G/A (purine)
//	B  G/T/C              D  G/A/T                H  A/C/T
//	V  G/C/A              -  gap of indeterminate length
//
// lower case letters are accepted and treated as their upper case
// equivalents; stored bytes are kept exactly as supplied
//
// see: https://blast.ncbi.nlm.nih.gov/Blast.cgi?CMD=Web&PAGE_TYPE=BlastDocs&DOC_TYPE=BlastHelp
package fasta
