// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package types

import (
	"fmt"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/pkg/encodbin"
)

const (
	// TxVersionLegacy the original message layout
	TxVersionLegacy TxVersion = iota
	// TxVersionV0 the layout with address lookup tables
	TxVersionV0
)

// v0Indicator signals the V0 layout when it follows the signatures.
const v0Indicator = 0x80

// TxVersion the transaction layout indicator
type TxVersion int

func (v TxVersion) String() string {
	if v == TxVersionV0 {
		return "v0"
	}
	return "legacy"
}

// MessageHeader 3 bytes, order-significant.
type MessageHeader struct {
	NumRequiredSignatures       uint8 `json:"numRequiredSignatures"`
	NumReadonlySignedAccounts   uint8 `json:"numReadonlySignedAccounts"`
	NumReadonlyUnsignedAccounts uint8 `json:"numReadonlyUnsignedAccounts"`
}

// CompiledAddressLookupTable a wire-level lookup table reference.
// The index lists stay raw; resolution happens against the registry cache.
type CompiledAddressLookupTable struct {
	AccountKey      common.Address `json:"accountKey"`
	WritableIndexes []uint8        `json:"writableIndexes"`
	ReadonlyIndexes []uint8        `json:"readonlyIndexes"`
}

// AddressLookupTableAccount a resolved lookup table: the table account key
// and its flat, ordered address list.
type AddressLookupTableAccount struct {
	Key       common.Address
	Addresses []common.Address
}

// Instruction a program invocation inside a transaction.
//
// AccountIndexes always holds the wire bytes. Accounts is the positional
// resolution of those indexes through the post-lookup account vector; it is
// nil when the referenced lookup tables were not available. Parsed is set
// when a decoder is registered for ProgramID and dispatch ran.
type Instruction struct {
	ProgramIDIndex uint8            `json:"programIdIndex"`
	ProgramID      common.Address   `json:"programId"`
	Accounts       []common.Address `json:"accounts,omitempty"`
	AccountIndexes []uint8          `json:"accountIndexes"`
	Data           common.SolData   `json:"data"`
	Parsed         any              `json:"parsed,omitempty"`
}

// IsParsed returns true when dispatch produced a typed payload.
func (ix Instruction) IsParsed() bool {
	return ix.Parsed != nil
}

// Transaction one decoded wire transaction. Immutable after decode.
type Transaction struct {
	TxType          TxVersion          `json:"txType"`
	Signatures      []common.Signature `json:"signatures"`
	Header          MessageHeader      `json:"header"`
	Accounts        []common.Address   `json:"accounts"`
	RecentBlockhash common.Hash        `json:"recentBlockhash"`
	Instructions    []Instruction      `json:"instructions"`
	// AddressTableLookups nil on legacy transactions
	AddressTableLookups []CompiledAddressLookupTable `json:"addressTableLookups,omitempty"`
}

// UnmarshalHex decodes the structural fields of a hex encoded transaction.
func (tx *Transaction) UnmarshalHex(s string) error {
	dec, err := encodbin.NewHexDecoder(s)
	if err != nil {
		return err
	}
	return tx.UnmarshalWithDecoder(dec)
}

// UnmarshalWithDecoder decodes the structural fields of a transaction:
// signatures, layout indicator, header, static accounts, recent blockhash,
// raw instructions and (on V0) the lookup table references. Account
// resolution and program dispatch are left to the caller.
func (tx *Transaction) UnmarshalWithDecoder(dec *encodbin.Decoder) (err error) {
	{
		numSignatures, err := dec.ReadCompactU16()
		if err != nil {
			return fmt.Errorf("unable to read numSignatures: %w", err)
		}
		tx.Signatures = make([]common.Signature, numSignatures)
		for i := 0; i < int(numSignatures); i++ {
			b, err := dec.Read(common.SignatureLength)
			if err != nil {
				return fmt.Errorf("unable to read tx.Signatures[%d]: %w", i, err)
			}
			copy(tx.Signatures[i][:], b)
		}
	}
	{
		// peek the layout indicator; legacy has no indicator byte
		tx.TxType = TxVersionLegacy
		if b, ok := dec.PeekByte(); ok && b == v0Indicator {
			if _, err = dec.ReadByte(); err != nil {
				return err
			}
			tx.TxType = TxVersionV0
		}
	}
	{
		b, err := dec.Read(3)
		if err != nil {
			return fmt.Errorf("unable to read tx.Header: %w", err)
		}
		tx.Header.NumRequiredSignatures = b[0]
		tx.Header.NumReadonlySignedAccounts = b[1]
		tx.Header.NumReadonlyUnsignedAccounts = b[2]
	}
	{
		numAccounts, err := dec.ReadCompactU16()
		if err != nil {
			return fmt.Errorf("unable to read numAccounts: %w", err)
		}
		tx.Accounts = make([]common.Address, numAccounts)
		for i := 0; i < int(numAccounts); i++ {
			b, err := dec.Read(common.AddressLength)
			if err != nil {
				return fmt.Errorf("unable to read tx.Accounts[%d]: %w", i, err)
			}
			copy(tx.Accounts[i][:], b)
		}
	}
	{
		b, err := dec.Read(common.HashLength)
		if err != nil {
			return fmt.Errorf("unable to read tx.RecentBlockhash: %w", err)
		}
		copy(tx.RecentBlockhash[:], b)
	}
	{
		numInstructions, err := dec.ReadByte()
		if err != nil {
			return fmt.Errorf("unable to read numInstructions: %w", err)
		}
		tx.Instructions = make([]Instruction, numInstructions)
		for i := 0; i < int(numInstructions); i++ {
			programIDIndex, err := dec.ReadByte()
			if err != nil {
				return fmt.Errorf("unable to read programIdIndex[%d]: %w", i, err)
			}
			if int(programIDIndex) >= len(tx.Accounts) {
				return fmt.Errorf("programIdIndex[%d] out of range: %d", i, programIDIndex)
			}
			ixAccounts, err := dec.ReadCompactArray()
			if err != nil {
				return fmt.Errorf("unable to read instruction accounts[%d]: %w", i, err)
			}
			data, err := dec.ReadCompactArray()
			if err != nil {
				return fmt.Errorf("unable to read instruction data[%d]: %w", i, err)
			}
			tx.Instructions[i] = Instruction{
				ProgramIDIndex: programIDIndex,
				ProgramID:      tx.Accounts[programIDIndex],
				AccountIndexes: append([]uint8{}, ixAccounts...),
				Data:           common.SolData{RawData: append([]byte{}, data...), Encoding: "base58"},
			}
		}
	}
	// legacy layout carries no lookup table section
	if tx.TxType != TxVersionV0 {
		return nil
	}
	{
		numLookups, err := dec.ReadByte()
		if err != nil {
			return fmt.Errorf("unable to read numLookups: %w", err)
		}
		tx.AddressTableLookups = make([]CompiledAddressLookupTable, numLookups)
		for i := 0; i < int(numLookups); i++ {
			b, err := dec.Read(common.AddressLength)
			if err != nil {
				return fmt.Errorf("unable to read lookup accountKey[%d]: %w", i, err)
			}
			var lut CompiledAddressLookupTable
			lut.AccountKey.SetBytes(b)
			writable, err := dec.ReadCompactArray()
			if err != nil {
				return fmt.Errorf("unable to read writableIndexes[%d]: %w", i, err)
			}
			readonly, err := dec.ReadCompactArray()
			if err != nil {
				return fmt.Errorf("unable to read readonlyIndexes[%d]: %w", i, err)
			}
			lut.WritableIndexes = append([]uint8{}, writable...)
			lut.ReadonlyIndexes = append([]uint8{}, readonly...)
			tx.AddressTableLookups[i] = lut
		}
	}
	return nil
}

// MarshalBinary re-serializes the decoded fields in wire order.
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	var out []byte
	encodbin.EncodeCompactU16Length(&out, len(tx.Signatures))
	for _, sig := range tx.Signatures {
		out = append(out, sig[:]...)
	}
	if tx.TxType == TxVersionV0 {
		out = append(out, v0Indicator)
	}
	out = append(out,
		tx.Header.NumRequiredSignatures,
		tx.Header.NumReadonlySignedAccounts,
		tx.Header.NumReadonlyUnsignedAccounts,
	)
	encodbin.EncodeCompactU16Length(&out, len(tx.Accounts))
	for _, acc := range tx.Accounts {
		out = append(out, acc[:]...)
	}
	out = append(out, tx.RecentBlockhash[:]...)
	if len(tx.Instructions) > 0xff {
		return nil, fmt.Errorf("too many instructions: %d", len(tx.Instructions))
	}
	out = append(out, uint8(len(tx.Instructions)))
	for _, ix := range tx.Instructions {
		out = append(out, ix.ProgramIDIndex)
		encodbin.AppendCompactArray(&out, ix.AccountIndexes)
		encodbin.AppendCompactArray(&out, ix.Data.RawData)
	}
	if tx.TxType == TxVersionV0 {
		if len(tx.AddressTableLookups) > 0xff {
			return nil, fmt.Errorf("too many lookups: %d", len(tx.AddressTableLookups))
		}
		out = append(out, uint8(len(tx.AddressTableLookups)))
		for _, lut := range tx.AddressTableLookups {
			out = append(out, lut.AccountKey[:]...)
			encodbin.AppendCompactArray(&out, lut.WritableIndexes)
			encodbin.AppendCompactArray(&out, lut.ReadonlyIndexes)
		}
	}
	return out, nil
}
