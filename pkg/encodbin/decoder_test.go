// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package encodbin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cielu/go-soltx/core"
)

func TestSetFromHex(t *testing.T) {
	dec := &Decoder{}

	require.NoError(t, dec.SetFromHex("01ff"))
	require.Equal(t, 2, dec.Remaining())

	require.NoError(t, dec.SetFromHex("0x01ff"))
	require.Equal(t, 2, dec.Remaining())

	// non-hex nibble
	require.ErrorIs(t, dec.SetFromHex("01g0"), core.ErrInvalidHexString)
	// odd length
	require.ErrorIs(t, dec.SetFromHex("010"), core.ErrInvalidHexString)
}

func TestReadAdvancesCursor(t *testing.T) {
	dec := NewBinDecoder([]byte{1, 2, 3, 4})

	b, err := dec.Read(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
	require.Equal(t, 3, dec.Position())

	_, err = dec.Read(2)
	require.ErrorIs(t, err, core.ErrNotEnoughBytes)
	// failed read does not advance
	require.Equal(t, 3, dec.Position())

	last, err := dec.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(4), last)
	require.False(t, dec.HasRemaining())
}

func TestPeekByte(t *testing.T) {
	dec := NewBinDecoder([]byte{0x80})

	b, ok := dec.PeekByte()
	require.True(t, ok)
	require.Equal(t, byte(0x80), b)
	// peek does not advance
	require.Equal(t, 0, dec.Position())

	_, err := dec.ReadByte()
	require.NoError(t, err)

	_, ok = dec.PeekByte()
	require.False(t, ok)
}

func TestCompactU16RoundTrip(t *testing.T) {
	for v := 0; v < 1<<14; v++ {
		var buf []byte
		EncodeCompactU16Length(&buf, v)

		dec := NewBinDecoder(buf)
		got, err := dec.ReadCompactU16()
		require.NoError(t, err)
		require.Equal(t, uint16(v), got)
		require.False(t, dec.HasRemaining(), "value %d left %d bytes", v, dec.Remaining())
	}
}

func TestCompactU16SingleByte(t *testing.T) {
	dec := NewBinDecoder([]byte{0x05, 0xff})
	v, err := dec.ReadCompactU16()
	require.NoError(t, err)
	require.Equal(t, uint16(5), v)
	require.Equal(t, 1, dec.Position())
}

func TestCompactU16Overflow(t *testing.T) {
	dec := NewBinDecoder([]byte{0xff, 0xff, 0x01})
	_, err := dec.ReadCompactU16()
	require.ErrorIs(t, err, core.ErrCompactU16Overflow)
}

func TestCompactU16Truncated(t *testing.T) {
	dec := NewBinDecoder([]byte{0xff})
	_, err := dec.ReadCompactU16()
	require.ErrorIs(t, err, core.ErrNotEnoughBytes)
}

func TestReadCompactArray(t *testing.T) {
	dec := NewBinDecoder([]byte{0x03, 0xaa, 0xbb, 0xcc, 0xdd})
	b, err := dec.ReadCompactArray()
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc}, b)
	require.Equal(t, 1, dec.Remaining())

	dec = NewBinDecoder([]byte{0x03, 0xaa})
	_, err = dec.ReadCompactArray()
	require.ErrorIs(t, err, core.ErrNotEnoughBytes)
}
