// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package core

import (
	"encoding/json"
	"fmt"

	"github.com/cielu/go-soltx/common"
)

// Has0xPrefix input has 0x prefix
func Has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

// TrimHexPrefix strip the 0x prefix from input
func TrimHexPrefix(input string) string {
	if Has0xPrefix(input) {
		return input[2:]
	}
	return input
}

// MatchAccounts maps each instruction-account byte to accounts[byte].
// Program decoders call this once and address accounts positionally.
func MatchAccounts(ixAccounts []byte, accounts []common.Address) ([]common.Address, error) {
	matched := make([]common.Address, len(ixAccounts))
	for i, idx := range ixAccounts {
		if int(idx) >= len(accounts) {
			return nil, StdErr(fmt.Sprintf("MatchAccounts idx: %d", idx), ErrInvalidInstruction)
		}
		matched[i] = accounts[idx]
	}
	return matched, nil
}

// BeautifyConsole console the content with json format
func BeautifyConsole(title, content any) {
	// MarshalIndent
	jsonData, _ := json.MarshalIndent(content, "", "    ")
	// print data
	fmt.Println(title, string(jsonData))
}
