// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package common

var (
	SystemProgramID             = StrToAddress("11111111111111111111111111111111")
	ConfigProgramID             = StrToAddress("Config1111111111111111111111111111111111111")
	StakeProgramID              = StrToAddress("Stake11111111111111111111111111111111111111")
	VoteProgramID               = StrToAddress("Vote111111111111111111111111111111111111111")
	TokenProgramID              = StrToAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	Token2022ProgramID          = StrToAddress("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	MemoProgramID               = StrToAddress("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
	ComputeBudgetProgramID      = StrToAddress("ComputeBudget111111111111111111111111111111")
	AddressLookupTableProgramID = StrToAddress("AddressLookupTab1e1111111111111111111111111")
)
