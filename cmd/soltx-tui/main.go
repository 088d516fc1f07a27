// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package main

import (
	"fmt"
	"os"

	soltx "github.com/cielu/go-soltx"
	computebudget "github.com/cielu/go-soltx/programs/compute-budget"
	"github.com/cielu/go-soltx/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: soltx-tui <hex transaction>")
		os.Exit(1)
	}
	soltx.RegisterProgram(computebudget.Program{})
	if err := tui.Run(os.Args[1]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
