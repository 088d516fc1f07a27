// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package soltx

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
	"github.com/cielu/go-soltx/types"
)

// DecodeFunc decodes one instruction of a program. ixAccounts holds the raw
// account indexes from the wire, accounts the post-lookup account vector.
// Decoders are pure with respect to their inputs and must not call back
// into the registry write path.
type DecodeFunc func(programID common.Address, ixAccounts []byte, data []byte, accounts []common.Address) (any, error)

// Program pairs a program id with its instruction decoder. User programs
// implement this and hand it to RegisterProgram.
type Program interface {
	ProgramID() common.Address
	DecodeInstruction(programID common.Address, ixAccounts []byte, data []byte, accounts []common.Address) (any, error)
}

// LutFetchFunc resolves a lookup table account on demand.
type LutFetchFunc func(key common.Address) (types.AddressLookupTableAccount, error)

// registry is the process-wide table of program decoders and resolved
// lookup tables. Lazily initialized, never torn down.
type registry struct {
	mu         sync.RWMutex
	programs   map[common.Address]DecodeFunc
	luts       map[common.Address][]common.Address
	lutFetchFn LutFetchFunc
	// programIDs mirrors the program map keys; the set is safe for
	// lock-free membership reads.
	programIDs mapset.Set[common.Address]
}

var (
	regOnce sync.Once
	reg     *registry
)

func getRegistry() *registry {
	regOnce.Do(func() {
		reg = &registry{
			programs:   make(map[common.Address]DecodeFunc),
			luts:       make(map[common.Address][]common.Address),
			programIDs: mapset.NewSet[common.Address](),
		}
	})
	return reg
}

// RegisterProgram inserts or replaces the decoder for p's program id.
// Last writer wins.
func RegisterProgram(p Program) {
	RegisterProgramFunc(p.ProgramID(), p.DecodeInstruction)
}

// RegisterProgramFunc inserts or replaces the decoder for programID.
func RegisterProgramFunc(programID common.Address, fn DecodeFunc) {
	r := getRegistry()
	r.mu.Lock()
	r.programs[programID] = fn
	r.mu.Unlock()
	r.programIDs.Add(programID)
}

// DeregisterProgram removes the decoder for programID.
func DeregisterProgram(programID common.Address) {
	r := getRegistry()
	r.mu.Lock()
	delete(r.programs, programID)
	r.mu.Unlock()
	r.programIDs.Remove(programID)
}

// HasProgram returns true when a decoder is registered for programID.
func HasProgram(programID common.Address) bool {
	return getRegistry().programIDs.Contains(programID)
}

// RegisteredPrograms returns the ids of every registered program decoder.
func RegisteredPrograms() []common.Address {
	return getRegistry().programIDs.ToSlice()
}

// lookupProgram copies the decoder out under the read lock; the caller
// invokes it with no lock held.
func lookupProgram(programID common.Address) (DecodeFunc, bool) {
	r := getRegistry()
	r.mu.RLock()
	fn, ok := r.programs[programID]
	r.mu.RUnlock()
	return fn, ok
}

// RegisterLut inserts or replaces a resolved lookup table by account key.
func RegisterLut(lut types.AddressLookupTableAccount) {
	r := getRegistry()
	r.mu.Lock()
	r.luts[lut.Key] = lut.Addresses
	r.mu.Unlock()
}

// LookupLut returns the registered address list for key. The returned slice
// is shared; callers copy what they keep.
func LookupLut(key common.Address) ([]common.Address, bool) {
	r := getRegistry()
	r.mu.RLock()
	addrs, ok := r.luts[key]
	r.mu.RUnlock()
	return addrs, ok
}

// RegisterLutFetchFn installs (replaces) the on-demand table fetcher.
func RegisterLutFetchFn(fn LutFetchFunc) {
	r := getRegistry()
	r.mu.Lock()
	r.lutFetchFn = fn
	r.mu.Unlock()
}

// FetchAndRegisterLut resolves key through the registered fetcher and
// installs the result. The fetcher runs with no lock held, so a slow or
// re-entrant fetcher cannot deadlock the registry.
func FetchAndRegisterLut(key common.Address) (types.AddressLookupTableAccount, error) {
	r := getRegistry()
	r.mu.RLock()
	fetch := r.lutFetchFn
	r.mu.RUnlock()
	if fetch == nil {
		return types.AddressLookupTableAccount{}, core.ErrNoLutFetchFn
	}
	lut, err := fetch(key)
	if err != nil {
		return types.AddressLookupTableAccount{}, core.StdErr("FetchAndRegisterLut", err)
	}
	RegisterLut(lut)
	return lut, nil
}
