// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/helix-inc/helixd/fasta"
	"github.com/helix-inc/helixd/fault"
	"github.com/helix-inc/helixd/ledger"
	"github.com/helix-inc/helixd/store"
)

// interactiveLoop - the console session owning the ledger
//
// all core errors are recoverable outcomes: they are reported and the
// loop continues, only 'quit' ends the session
func interactiveLoop(log *logger.L, theLedger *ledger.Ledger, theStore *store.Store, threshold uint8) {

	reader := bufio.NewScanner(os.Stdin)

loop:
	for {
		fmt.Printf("helix> ")
		if !reader.Scan() {
			break loop
		}

		switch strings.ToLower(strings.TrimSpace(reader.Text())) {
		case "upload", "u":
			upload(log, reader, theLedger, theStore, threshold)

		case "mine", "m":
			mine(log, theLedger)

		case "chain", "c":
			printChain(theLedger)

		case "info", "i":
			s := theLedger.Statistics()
			fmt.Printf("height: %d  pending: %d  retained: %d\n", theLedger.Height(), theLedger.PendingCount(), theStore.Size())
			fmt.Printf("submitted: %d  finalised: %d  rejected: %d\n", s.Submitted, s.Finalised, s.Rejected)

		case "help", "h":
			fmt.Printf("commands: upload mine chain info help quit\n")

		case "quit", "q", "exit":
			break loop

		case "":
			// blank line, prompt again

		default:
			fmt.Printf("unknown command, type 'help' for the list of commands\n")
		}
	}
}

// prompt for a line of input, returns false on EOF
func prompt(reader *bufio.Scanner, label string) (string, bool) {
	fmt.Printf("%s", label)
	if !reader.Scan() {
		return "", false
	}
	return strings.TrimSpace(reader.Text()), true
}

// read a sequence and a submitter id, validate and queue
func upload(log *logger.L, reader *bufio.Scanner, theLedger *ledger.Ledger, theStore *store.Store, threshold uint8) {

	dna, ok := prompt(reader, "please enter the DNA sequence: ")
	if !ok {
		return
	}
	if !fasta.IsValidSequence([]byte(dna)) {
		fmt.Printf("invalid DNA sequence: only IUPAC nucleotide codes are accepted\n")
		return
	}

	uid, ok := prompt(reader, "please enter your UID: ")
	if !ok {
		return
	}

	definition, ok := prompt(reader, "definition label (optional): ")
	if !ok {
		return
	}

	record := fasta.New()
	record.SetDefinition(definition)
	record.SetSequence([]byte(dna))

	// advisory only: the ledger rejects exact duplicates, near
	// duplicates are just reported before queueing
	matches := theStore.NearDuplicates(record.Fingerprint(), threshold)
	for _, match := range matches {
		fmt.Printf("near duplicate (distance %2d of 64): %s  %q\n", match.Distance, match.ContentHash, match.Record.Definition())
	}

	tx := theLedger.Submit(dna, uid)
	theStore.Put(tx.ContentHash, record)

	log.Infof("uploaded: %s", tx.ContentHash)
	fmt.Printf("queued transaction: %s\n", tx.ContentHash)
}

// finalise one pending transaction
func mine(log *logger.L, theLedger *ledger.Ledger) {
	block, err := theLedger.Finalise()
	switch err {
	case nil:
		log.Infof("mined block: %s", block.ContentHash)
		fmt.Printf("block has been mined successfully\n")
		printChain(theLedger)

	case fault.ErrNoPendingTransactions:
		fmt.Printf("currently there are no pending transactions available to mine\n")

	case fault.ErrDuplicateSequence:
		fmt.Printf("you are trying to upload DNA which already exists on the blockchain\n")

	default:
		log.Errorf("finalise error: %s", err)
		fmt.Printf("finalise error: %s\n", err)
	}
}

// dump the committed chain as JSON
func printChain(theLedger *ledger.Ledger) {
	buffer, err := json.MarshalIndent(theLedger.Blocks(), "", "  ")
	if nil != err {
		fmt.Printf("chain encode error: %s\n", err)
		return
	}
	fmt.Printf("%s\n", buffer)
}
