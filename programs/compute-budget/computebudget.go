// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package computebudget

import (
	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
	"github.com/cielu/go-soltx/pkg/encodbin"
)

// 1-byte discriminants of the compute budget program.
const (
	// Instruction_RequestUnitsDeprecated Deprecated
	// after feature remove_deprecated_request_unit_ix::id() is activated
	Instruction_RequestUnitsDeprecated uint8 = iota

	// Instruction_RequestHeapFrame Request a specific transaction-wide
	// program heap region size in bytes.
	Instruction_RequestHeapFrame

	// Instruction_SetComputeUnitLimit Set a specific compute unit limit
	// that the transaction is allowed to consume.
	Instruction_SetComputeUnitLimit

	// Instruction_SetComputeUnitPrice Set a compute unit price in
	// "micro-lamports" to pay a higher fee for prioritization.
	Instruction_SetComputeUnitPrice
)

// SetComputeUnitLimit the compute unit cap for the transaction.
type SetComputeUnitLimit struct {
	Units uint32
}

// SetComputeUnitPrice the priority fee in micro-lamports per compute unit.
type SetComputeUnitPrice struct {
	MicroLamports uint64
}

// Program implements the registry decoder contract for the compute budget
// program.
type Program struct{}

// ProgramID the compute budget program id.
func (Program) ProgramID() common.Address {
	return common.ComputeBudgetProgramID
}

// DecodeInstruction see DecodeInstruction.
func (Program) DecodeInstruction(programID common.Address, ixAccounts []byte, data []byte, accounts []common.Address) (any, error) {
	return DecodeInstruction(programID, ixAccounts, data, accounts)
}

// DecodeInstruction decodes one compute budget instruction. The program
// takes no accounts; only the data payload matters.
func DecodeInstruction(_ common.Address, _ []byte, data []byte, _ []common.Address) (any, error) {
	if len(data) < 1 {
		return nil, core.ErrInvalidInstruction
	}
	switch data[0] {
	case Instruction_SetComputeUnitLimit:
		if len(data) < 5 {
			return nil, core.ErrInvalidInstruction
		}
		return SetComputeUnitLimit{Units: encodbin.LE.Uint32(data[1:5])}, nil
	case Instruction_SetComputeUnitPrice:
		if len(data) < 9 {
			return nil, core.ErrInvalidInstruction
		}
		return SetComputeUnitPrice{MicroLamports: encodbin.LE.Uint64(data[1:9])}, nil
	default:
		return nil, core.ErrInvalidInstruction
	}
}
