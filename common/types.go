// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package common

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/mr-tron/base58"
)

// Lengths of signatures and addresses in bytes.
const (
	// HashLength is the expected length of the hash
	HashLength = 32
	// AddressLength is the expected length of the address
	AddressLength = 32
	// SignatureLength is the expected length of the signature
	SignatureLength = 64
)

/////// -------------------------------------------------///////
/////// -------------------- Address --------------------///////
/////// -------------------------------------------------///////

// Address The address
type Address [AddressLength]byte

// BytesToAddress returns Address with value b.
func BytesToAddress(b []byte) (a Address) {
	a.SetBytes(b)
	return
}

// Base58ToAddress returns Address with byte values of b.
func Base58ToAddress(b string) Address {
	// decode base58
	d, _ := base58.Decode(b)
	// bytes to address
	return BytesToAddress(d)
}

// StrToAddress returns Address with byte values of b.
func StrToAddress(b string) Address {
	return Base58ToAddress(b)
}

// Cmp compares two addresses.
func (a Address) Cmp(other Address) int {
	return bytes.Compare(a[:], other[:])
}

// IsEmpty returns true when every byte is zero.
// Note: the all-zero key is also the system program id.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// Bytes return Address bytes
func (a Address) Bytes() []byte { return a[:] }

// Base58 return base58 account
func (a Address) Base58() string {
	return base58.Encode(a[:])
}

// String return base58 account
func (a Address) String() string {
	return a.Base58()
}

// SetBytes sets the address to the value of b.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// MarshalText returns base58 str account
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Base58()), nil
}

// UnmarshalText parses an account in base58 syntax.
func (a *Address) UnmarshalText(input []byte) error {
	d, err := base58.Decode(string(input))
	if err != nil {
		return err
	}
	a.SetBytes(d)
	return nil
}

/////// ----------------------------------------------///////
/////// -------------------- Hash --------------------///////
/////// ----------------------------------------------///////

// Hash The Hash
type Hash [HashLength]byte

// BytesToHash returns Hash with value b.
func BytesToHash(b []byte) (h Hash) {
	h.SetBytes(b)
	return
}

// Base58ToHash returns Hash with byte values of b.
func Base58ToHash(b string) Hash {
	// decode base58
	d, _ := base58.Decode(b)
	// bytes to Hash
	return BytesToHash(d)
}

// Cmp compares two Hashes.
func (h Hash) Cmp(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

// Bytes return Hash bytes
func (h Hash) Bytes() []byte { return h[:] }

// Base58 return base58 account
func (h Hash) Base58() string {
	return base58.Encode(h[:])
}

// String return base58 account
func (h Hash) String() string {
	return h.Base58()
}

// SetBytes sets the Hash to the value of b.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// MarshalText returns base58 str hash
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Base58()), nil
}

// UnmarshalText parses a hash in base58 syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	d, err := base58.Decode(string(input))
	if err != nil {
		return err
	}
	h.SetBytes(d)
	return nil
}

/////// ---------------------------------------------------///////
/////// -------------------- Signature --------------------///////
/////// ---------------------------------------------------///////

// Signature The signature
type Signature [SignatureLength]byte

// BytesToSignature returns Signature with value b.
func BytesToSignature(b []byte) (s Signature) {
	s.SetBytes(b)
	return
}

// Base58ToSignature returns Signature with byte values of b.
func Base58ToSignature(b string) Signature {
	// decode base58
	d, _ := base58.Decode(b)
	// bytes to signature
	return BytesToSignature(d)
}

// Cmp compares two signatures.
func (s Signature) Cmp(other Signature) int {
	return bytes.Compare(s[:], other[:])
}

// Bytes return Signature bytes
func (s Signature) Bytes() []byte { return s[:] }

// Base58 return base58 account
func (s Signature) Base58() string {
	return base58.Encode(s[:])
}

// String return base58 account
func (s Signature) String() string {
	return s.Base58()
}

// SetBytes sets the signature to the value of b.
func (s *Signature) SetBytes(b []byte) {
	if len(b) > len(s) {
		b = b[len(b)-SignatureLength:]
	}
	copy(s[SignatureLength-len(b):], b)
}

// MarshalText returns base58 str signature
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.Base58()), nil
}

// UnmarshalText parses a signature in base58 syntax.
func (s *Signature) UnmarshalText(input []byte) error {
	d, err := base58.Decode(string(input))
	if err != nil {
		return err
	}
	s.SetBytes(d)
	return nil
}

/////// -------------------------------------------------///////
/////// -------------------- SolData --------------------///////
/////// -------------------------------------------------///////

// SolData base58, base64 data
type SolData struct {
	RawData  []byte
	Encoding string
}

// Base58 return base58 str
func (sd SolData) Base58() string {
	return base58.Encode(sd.RawData)
}

// Base64 return base64 str
func (sd SolData) Base64() string {
	return base64.StdEncoding.EncodeToString(sd.RawData)
}

// String return base58 str
func (sd SolData) String() string {
	// base64
	if sd.Encoding == "base64" {
		return sd.Base64()
	}
	return sd.Base58()
}

// SetBytes sets the SolData to the value of input. (default base58)
func (sd *SolData) SetBytes(input []byte) {
	sd.RawData = input
}

// SetSolData sets the SolData
func (sd *SolData) SetSolData(data []byte, encoding string) {
	sd.RawData = data
	sd.Encoding = encoding
}

// MarshalText returns base58/base64 str
func (sd SolData) MarshalText() ([]byte, error) {
	input, err := json.Marshal(sd.String())
	return input[1 : len(input)-1], err
}
