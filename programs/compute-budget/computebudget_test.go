// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package computebudget

import (
	"errors"
	"testing"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
)

func TestDecodeSetComputeUnitLimit(t *testing.T) {
	parsed, err := DecodeInstruction(common.ComputeBudgetProgramID, nil, []byte{0x02, 0xe8, 0x03, 0x00, 0x00}, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := parsed.(SetComputeUnitLimit); got.Units != 1000 {
		t.Errorf("units: got %d, want 1000", got.Units)
	}
}

func TestDecodeSetComputeUnitPrice(t *testing.T) {
	parsed, err := DecodeInstruction(common.ComputeBudgetProgramID, nil, []byte{0x03, 0xa0, 0x86, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := parsed.(SetComputeUnitPrice); got.MicroLamports != 100000 {
		t.Errorf("microLamports: got %d, want 100000", got.MicroLamports)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", nil},
		{"unknown discriminant", []byte{0x07, 1, 2, 3, 4}},
		{"short limit", []byte{0x02, 0xe8}},
		{"short price", []byte{0x03, 0xa0, 0x86, 0x01, 0x00}},
	}
	for _, test := range tests {
		if _, err := DecodeInstruction(common.ComputeBudgetProgramID, nil, test.data, nil); !errors.Is(err, core.ErrInvalidInstruction) {
			t.Errorf("%s: got %v, want ErrInvalidInstruction", test.name, err)
		}
	}
}
