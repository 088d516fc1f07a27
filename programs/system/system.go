// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package system

import (
	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
	"github.com/cielu/go-soltx/pkg/encodbin"
)

// Instruction_Transfer transfer lamports between system accounts.
// Discriminant is the first 4 bytes of data, little-endian.
const Instruction_Transfer uint32 = 2

// Transfer move lamports from Accounts.From to Accounts.To.
type Transfer struct {
	Lamports uint64
	Accounts TransferAccounts
}

// TransferAccounts the materialized accounts of a Transfer.
type TransferAccounts struct {
	From common.Address
	To   common.Address
}

// Program implements the registry decoder contract for the system program.
type Program struct{}

// ProgramID the system program id (the all-zero key).
func (Program) ProgramID() common.Address {
	return common.SystemProgramID
}

// DecodeInstruction see DecodeInstruction.
func (Program) DecodeInstruction(programID common.Address, ixAccounts []byte, data []byte, accounts []common.Address) (any, error) {
	return DecodeInstruction(programID, ixAccounts, data, accounts)
}

// DecodeInstruction decodes one system program instruction.
func DecodeInstruction(_ common.Address, ixAccounts []byte, data []byte, accounts []common.Address) (any, error) {
	if len(data) < 4 {
		return nil, core.ErrInvalidInstruction
	}
	switch encodbin.LE.Uint32(data[:4]) {
	case Instruction_Transfer:
		if len(data) < 12 {
			return nil, core.ErrInvalidInstruction
		}
		accs, err := core.MatchAccounts(ixAccounts, accounts)
		if err != nil {
			return nil, err
		}
		if len(accs) < 2 {
			return nil, core.ErrInvalidInstruction
		}
		return Transfer{
			Lamports: encodbin.LE.Uint64(data[4:12]),
			Accounts: TransferAccounts{From: accs[0], To: accs[1]},
		}, nil
	default:
		return nil, core.ErrInvalidInstruction
	}
}
