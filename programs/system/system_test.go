// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package system

import (
	"errors"
	"testing"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
)

func TestDecodeTransfer(t *testing.T) {
	accounts := []common.Address{
		common.StrToAddress("EfgnVEwyeeFLZyZ4nnnzZtqV6B3DhdtXFNsGSzdti9ZN"),
		common.StrToAddress("6XViKPqw7t47tZz8UJR1bJFVzxjnQbuKtN2TBgnfZmo4"),
	}
	// discriminant 2, lamports 8000
	data := []byte{0x02, 0x00, 0x00, 0x00, 0x40, 0x1f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	parsed, err := DecodeInstruction(common.SystemProgramID, []byte{0, 1}, data, accounts)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	transfer, ok := parsed.(Transfer)
	if !ok {
		t.Fatalf("parsed type: %T", parsed)
	}
	if transfer.Lamports != 8000 {
		t.Errorf("lamports: got %d, want 8000", transfer.Lamports)
	}
	if transfer.Accounts.From != accounts[0] || transfer.Accounts.To != accounts[1] {
		t.Errorf("accounts: got %+v", transfer.Accounts)
	}
}

func TestDecodeInvalid(t *testing.T) {
	accounts := []common.Address{{1}, {2}}

	tests := []struct {
		name       string
		ixAccounts []byte
		data       []byte
	}{
		{"short data", []byte{0, 1}, []byte{0x02}},
		{"unknown discriminant", []byte{0, 1}, []byte{0x09, 0x00, 0x00, 0x00, 1, 2, 3, 4, 5, 6, 7, 8}},
		{"truncated lamports", []byte{0, 1}, []byte{0x02, 0x00, 0x00, 0x00, 0x40}},
		{"missing accounts", []byte{0}, []byte{0x02, 0x00, 0x00, 0x00, 0x40, 0x1f, 0, 0, 0, 0, 0, 0}},
		{"account index out of range", []byte{0, 5}, []byte{0x02, 0x00, 0x00, 0x00, 0x40, 0x1f, 0, 0, 0, 0, 0, 0}},
	}
	for _, test := range tests {
		if _, err := DecodeInstruction(common.SystemProgramID, test.ixAccounts, test.data, accounts); !errors.Is(err, core.ErrInvalidInstruction) {
			t.Errorf("%s: got %v, want ErrInvalidInstruction", test.name, err)
		}
	}
}
