// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package core

import (
	"errors"
	"testing"

	"github.com/cielu/go-soltx/common"
)

func TestMatchAccounts(t *testing.T) {
	accounts := []common.Address{{1}, {2}, {3}}

	matched, err := MatchAccounts([]byte{2, 0, 2}, accounts)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(matched) != 3 || matched[0] != accounts[2] || matched[1] != accounts[0] || matched[2] != accounts[2] {
		t.Errorf("matched: got %v", matched)
	}

	if _, err = MatchAccounts([]byte{3}, accounts); !errors.Is(err, ErrInvalidInstruction) {
		t.Errorf("out of range: got %v, want ErrInvalidInstruction", err)
	}

	matched, err = MatchAccounts(nil, accounts)
	if err != nil || len(matched) != 0 {
		t.Errorf("empty indexes: got %v, %v", matched, err)
	}
}

func TestTrimHexPrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0x01ff", "01ff"},
		{"0X01ff", "01ff"},
		{"01ff", "01ff"},
		{"", ""},
	}
	for _, test := range tests {
		if got := TrimHexPrefix(test.in); got != test.want {
			t.Errorf("TrimHexPrefix(%q): got %q, want %q", test.in, got, test.want)
		}
	}
}
