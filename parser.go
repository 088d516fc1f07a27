// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package soltx

import (
	"fmt"
	"sync"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/programs/system"
	"github.com/cielu/go-soltx/types"
)

// Parser decodes hex encoded wire transactions into fully resolved
// Transactions. Program decoders and lookup tables are shared process-wide
// through the registry, so register once and parse from anywhere.
type Parser struct{}

var builtinOnce sync.Once

// NewParser returns a parser. The system program decoder is registered on
// first construction.
func NewParser() *Parser {
	builtinOnce.Do(func() {
		RegisterProgram(system.Program{})
	})
	return &Parser{}
}

// RegisterProgram see RegisterProgram.
func (p *Parser) RegisterProgram(prog Program) {
	RegisterProgram(prog)
}

// RegisterLut see RegisterLut.
func (p *Parser) RegisterLut(lut types.AddressLookupTableAccount) {
	RegisterLut(lut)
}

// RegisterLutFetchFn see RegisterLutFetchFn.
func (p *Parser) RegisterLutFetchFn(fn LutFetchFunc) {
	RegisterLutFetchFn(fn)
}

// Parse decodes only the structural form: no lookup table expansion, no
// typed payloads. Instruction accounts stay as raw indexes.
func (p *Parser) Parse(hexTx string) (*types.Transaction, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalHex(hexTx); err != nil {
		return nil, err
	}
	return tx, nil
}

// ParseTransaction decodes a transaction end to end: structural decode,
// lookup table expansion through the registry cache, account resolution and
// per-program dispatch.
//
// A lookup table missing from the registry is not fatal: its reference
// keeps the raw index lists, and any instruction whose account indexes
// reach past the resolvable vector is retained raw with Parsed == nil.
// A registered decoder rejecting its payload fails the whole decode.
func (p *Parser) ParseTransaction(hexTx string) (*types.Transaction, error) {
	tx, err := p.Parse(hexTx)
	if err != nil {
		return nil, err
	}

	accounts, err := expandLookups(tx)
	if err != nil {
		return nil, err
	}

	for i := range tx.Instructions {
		ix := &tx.Instructions[i]
		if !resolvable(ix.AccountIndexes, len(accounts)) {
			// depends on an unresolved lookup table: retain raw
			continue
		}
		ix.Accounts = make([]common.Address, len(ix.AccountIndexes))
		for j, idx := range ix.AccountIndexes {
			ix.Accounts[j] = accounts[idx]
		}
		if err := dispatch(ix, accounts); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

// expandLookups builds the post-lookup account vector: static accounts,
// then every writable table-resolved account in reference order, then the
// readonly ones in the same traversal order.
func expandLookups(tx *types.Transaction) ([]common.Address, error) {
	accounts := tx.Accounts
	if tx.TxType != types.TxVersionV0 {
		return accounts, nil
	}
	var writable, readonly []common.Address
	for _, lut := range tx.AddressTableLookups {
		addrs, ok := LookupLut(lut.AccountKey)
		if !ok {
			// on-demand resolution; a missing fetcher or a failed
			// fetch both leave the table unresolved
			if fetched, err := FetchAndRegisterLut(lut.AccountKey); err == nil {
				addrs, ok = fetched.Addresses, true
			}
		}
		if !ok {
			continue
		}
		for _, idx := range lut.WritableIndexes {
			if int(idx) >= len(addrs) {
				return nil, fmt.Errorf("writable index %d out of range for lut %s", idx, lut.AccountKey)
			}
			writable = append(writable, addrs[idx])
		}
		for _, idx := range lut.ReadonlyIndexes {
			if int(idx) >= len(addrs) {
				return nil, fmt.Errorf("readonly index %d out of range for lut %s", idx, lut.AccountKey)
			}
			readonly = append(readonly, addrs[idx])
		}
	}
	out := make([]common.Address, 0, len(accounts)+len(writable)+len(readonly))
	out = append(out, accounts...)
	out = append(out, writable...)
	out = append(out, readonly...)
	return out, nil
}

func resolvable(ixAccounts []uint8, total int) bool {
	for _, idx := range ixAccounts {
		if int(idx) >= total {
			return false
		}
	}
	return true
}

// dispatch looks the instruction's program up in the registry and attaches
// the typed payload. An unregistered program id is a normal outcome.
func dispatch(ix *types.Instruction, accounts []common.Address) error {
	fn, ok := lookupProgram(ix.ProgramID)
	if !ok {
		return nil
	}
	parsed, err := fn(ix.ProgramID, ix.AccountIndexes, ix.Data.RawData, accounts)
	if err != nil {
		return fmt.Errorf("decode instruction of program %s: %w", ix.ProgramID, err)
	}
	ix.Parsed = parsed
	return nil
}
