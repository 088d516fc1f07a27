// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package soltx

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
	"github.com/cielu/go-soltx/types"
)

func TestFetchAndRegisterLutNoFn(t *testing.T) {
	key := common.StrToAddress("Stake11111111111111111111111111111111111111")
	_, err := FetchAndRegisterLut(key)
	require.ErrorIs(t, err, core.ErrNoLutFetchFn)
}

func TestRegisterProgramLastWriterWins(t *testing.T) {
	id := common.StrToAddress("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
	RegisterProgramFunc(id, func(common.Address, []byte, []byte, []common.Address) (any, error) {
		return "first", nil
	})
	RegisterProgramFunc(id, func(common.Address, []byte, []byte, []common.Address) (any, error) {
		return "second", nil
	})
	fn, ok := lookupProgram(id)
	require.True(t, ok)
	got, err := fn(id, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "second", got)

	require.True(t, HasProgram(id))
	require.Contains(t, RegisteredPrograms(), id)

	DeregisterProgram(id)
	require.False(t, HasProgram(id))
	_, ok = lookupProgram(id)
	require.False(t, ok)
}

func TestRegisterLutReplaces(t *testing.T) {
	key := common.StrToAddress("Vote111111111111111111111111111111111111111")
	RegisterLut(testLut(key, 2))
	RegisterLut(testLut(key, 5))

	addrs, ok := LookupLut(key)
	require.True(t, ok)
	require.Len(t, addrs, 5)
}

func TestFetchAndRegisterLut(t *testing.T) {
	fetchErr := errors.New("rpc down")
	RegisterLutFetchFn(func(key common.Address) (types.AddressLookupTableAccount, error) {
		if key.IsEmpty() {
			return types.AddressLookupTableAccount{}, fetchErr
		}
		return testLut(key, 3), nil
	})

	key := common.StrToAddress("Config1111111111111111111111111111111111111")
	lut, err := FetchAndRegisterLut(key)
	require.NoError(t, err)
	require.Len(t, lut.Addresses, 3)

	// the fetch result is installed
	addrs, ok := LookupLut(key)
	require.True(t, ok)
	require.Len(t, addrs, 3)

	// fetcher errors propagate and install nothing
	_, err = FetchAndRegisterLut(common.Address{})
	require.ErrorIs(t, err, fetchErr)
	_, ok = LookupLut(common.Address{})
	require.False(t, ok)

	RegisterLutFetchFn(nil)
}

func TestConcurrentRegistryAccess(t *testing.T) {
	parser := NewParser()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := common.Address{0x77, byte(i)}
			for j := 0; j < 50; j++ {
				RegisterLut(testLut(key, j+1))
				if _, err := parser.ParseTransaction(transferTxHex); err != nil {
					t.Error(err)
					return
				}
				if _, ok := LookupLut(key); !ok {
					t.Error("registered lut not visible")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
