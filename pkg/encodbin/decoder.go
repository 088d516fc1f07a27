// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package encodbin

import (
	"encoding/hex"

	"github.com/cielu/go-soltx/core"
)

// Decoder is a cursored reader over a byte buffer: NewBinDecoder and SetBytes
// keep the caller's slice without copying, SetFromHex owns the decoded
// bytes. Read returns subslices of that buffer. It implements the
// wire-level decode primitives: fixed reads, single-byte peek and the
// compact-u16 varint. The decoder never interprets the bytes it returns.
type Decoder struct {
	data []byte
	pos  int
}

// NewBinDecoder returns a decoder positioned at the start of data.
func NewBinDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// NewHexDecoder returns a decoder loaded from a hex string.
func NewHexDecoder(s string) (*Decoder, error) {
	dec := &Decoder{}
	if err := dec.SetFromHex(s); err != nil {
		return nil, err
	}
	return dec, nil
}

// SetFromHex loads the buffer from an even-length hex string and resets the
// cursor. A leading 0x prefix is accepted.
func (dec *Decoder) SetFromHex(s string) error {
	b, err := hex.DecodeString(core.TrimHexPrefix(s))
	if err != nil {
		return core.ErrInvalidHexString
	}
	dec.data = b
	dec.pos = 0
	return nil
}

// SetBytes loads the buffer and resets the cursor.
func (dec *Decoder) SetBytes(data []byte) {
	dec.data = data
	dec.pos = 0
}

// Position returns the cursor position.
func (dec *Decoder) Position() int {
	return dec.pos
}

// Remaining returns the count of unread bytes.
func (dec *Decoder) Remaining() int {
	return len(dec.data) - dec.pos
}

// HasRemaining returns true while unread bytes remain.
func (dec *Decoder) HasRemaining() bool {
	return dec.Remaining() > 0
}

// Read advances the cursor by n and returns the bytes it passed over.
func (dec *Decoder) Read(n int) ([]byte, error) {
	if dec.pos+n > len(dec.data) {
		return nil, core.ErrNotEnoughBytes
	}
	b := dec.data[dec.pos : dec.pos+n]
	dec.pos += n
	return b, nil
}

// ReadByte reads a single byte.
func (dec *Decoder) ReadByte() (byte, error) {
	b, err := dec.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// PeekByte returns the byte at the cursor without advancing. The second
// return is false at end of buffer.
func (dec *Decoder) PeekByte() (byte, bool) {
	if dec.pos >= len(dec.data) {
		return 0, false
	}
	return dec.data[dec.pos], true
}

// ReadCompactU16 reads a 1-3 byte little-endian varint. Each byte
// contributes its low 7 bits; the high bit continues. A third byte with any
// low bits set overflows.
func (dec *Decoder) ReadCompactU16() (uint16, error) {
	var (
		value uint16
		shift uint
	)
	for i := 0; i < 3; i++ {
		b, err := dec.ReadByte()
		if err != nil {
			return 0, err
		}
		if i == 2 && b&0x7f != 0 {
			return 0, core.ErrCompactU16Overflow
		}
		value |= uint16(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return value, nil
}

// ReadCompactArray reads a compact-u16 length followed by that many bytes.
func (dec *Decoder) ReadCompactArray() ([]byte, error) {
	n, err := dec.ReadCompactU16()
	if err != nil {
		return nil, err
	}
	return dec.Read(int(n))
}
