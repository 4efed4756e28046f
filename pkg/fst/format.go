// Package fst loads and traverses VFST binary transducer files, both
// unweighted (morphology, auto-correction) and weighted (spelling error
// models and acceptors).
//
// A VFST file starts with a 16 byte header, followed by a symbol table and
// a flat transition table. All multi-byte fields are little-endian. The
// transition table is interpreted in place over the loaded bytes, so a
// transducer stays valid only as long as its backing buffer does.
package fst

import (
	"encoding/binary"
	"errors"
)

// Header magic constants.
const (
	cookie1 = 0x00013A6E
	cookie2 = 0x000351FA

	headerSize = 16
)

// MaxLoopCount bounds the number of traversal steps in one Next call.
// Flag diacritic cycles can otherwise loop forever.
const MaxLoopCount = 100000

// DefaultBufferSize is the traversal stack depth used by the analyzers.
const DefaultBufferSize = 2000

// Load-time errors.
var (
	ErrTooShort           = errors.New("fst: file too short")
	ErrInvalidMagic       = errors.New("fst: invalid magic number in header")
	ErrTypeMismatch       = errors.New("fst: weighted flag does not match requested transducer type")
	ErrInvalidSymbolTable = errors.New("fst: invalid symbol table")
	ErrInvalidFlag        = errors.New("fst: invalid flag diacritic")
	ErrAlignment          = errors.New("fst: transition table size not a multiple of the record size")
)

// parseHeader validates the 16 byte header and reports whether the file
// holds a weighted transducer. Byte-swapped files are not supported,
// dictionaries are always stored little-endian.
func parseHeader(data []byte) (weighted bool, err error) {
	if len(data) < headerSize {
		return false, ErrTooShort
	}
	if binary.LittleEndian.Uint32(data[0:4]) != cookie1 ||
		binary.LittleEndian.Uint32(data[4:8]) != cookie2 {
		return false, ErrInvalidMagic
	}
	return data[8] == 0x01, nil
}
