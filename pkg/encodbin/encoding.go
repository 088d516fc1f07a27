// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package encodbin

import "encoding/binary"

var LE binary.ByteOrder = binary.LittleEndian
var BE binary.ByteOrder = binary.BigEndian

// EncodeCompactU16Length appends the compact-u16 encoding of ln to buf.
func EncodeCompactU16Length(buf *[]byte, ln int) {
	rem := ln
	for {
		elem := uint8(rem & 0x7f)
		rem >>= 7
		if rem == 0 {
			*buf = append(*buf, elem)
			break
		}
		elem |= 0x80
		*buf = append(*buf, elem)
	}
}

// AppendCompactArray appends the compact-u16 length of b followed by b.
func AppendCompactArray(buf *[]byte, b []byte) {
	EncodeCompactU16Length(buf, len(b))
	*buf = append(*buf, b...)
}
