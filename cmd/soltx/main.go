// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	soltx "github.com/cielu/go-soltx"
	computebudget "github.com/cielu/go-soltx/programs/compute-budget"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: soltx <hex transaction>")
		os.Exit(1)
	}

	parser := soltx.NewParser()
	parser.RegisterProgram(computebudget.Program{})

	tx, err := parser.ParseTransaction(os.Args[1])
	if err != nil {
		color.Red("decode failed: %v", err)
		os.Exit(1)
	}

	color.Cyan("%s transaction", tx.TxType)
	for _, sig := range tx.Signatures {
		fmt.Printf("  signature: %s\n", sig)
	}
	fmt.Printf("  header: sigs=%d roSigned=%d roUnsigned=%d\n",
		tx.Header.NumRequiredSignatures,
		tx.Header.NumReadonlySignedAccounts,
		tx.Header.NumReadonlyUnsignedAccounts)
	fmt.Printf("  recent blockhash: %s\n", tx.RecentBlockhash)
	for i, acc := range tx.Accounts {
		fmt.Printf("  account[%d]: %s\n", i, acc)
	}
	for i, ix := range tx.Instructions {
		color.Yellow("instruction[%d] program=%s", i, ix.ProgramID)
		for _, acc := range ix.Accounts {
			fmt.Printf("    account: %s\n", acc)
		}
		if ix.IsParsed() {
			fmt.Printf("    parsed: %+v\n", ix.Parsed)
		} else {
			fmt.Printf("    data: %s\n", ix.Data)
		}
	}
	for _, lut := range tx.AddressTableLookups {
		fmt.Printf("  lookup table: %s writable=%v readonly=%v\n",
			lut.AccountKey, lut.WritableIndexes, lut.ReadonlyIndexes)
	}
}
