package fst

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// symbolTable is the parsed symbol section of a VFST file.
//
// Symbols appear in the binary in a fixed order: epsilon at index 0, flag
// diacritics ('@'-prefixed), normal single-character symbols, then
// multi-character tag symbols ('['-prefixed).
type symbolTable struct {
	strings      []string
	diacritics   []opFeatureValue // indexed 0..firstNormalChar
	charToSymbol map[rune]uint16

	firstNormalChar uint16
	firstMultiChar  uint16
	featureCount    uint16
}

// parseSymbolTable reads the symbol table starting at offset and returns it
// with the byte offset just past the last symbol, before any padding.
func parseSymbolTable(data []byte, offset int) (*symbolTable, int, error) {
	if offset+2 > len(data) {
		return nil, 0, ErrTooShort
	}
	count := int(binary.LittleEndian.Uint16(data[offset : offset+2]))
	pos := offset + 2

	t := &symbolTable{
		strings:      make([]string, 0, count),
		charToSymbol: make(map[rune]uint16),
	}
	parser := newFlagParser()

	for i := 0; i < count; i++ {
		start := pos
		for pos < len(data) && data[pos] != 0 {
			pos++
		}
		if pos >= len(data) {
			return nil, 0, fmt.Errorf("%w: unterminated symbol string", ErrInvalidSymbolTable)
		}
		raw := data[start:pos]
		pos++ // NUL

		if i == 0 {
			t.strings = append(t.strings, "")
			t.diacritics = append(t.diacritics, opFeatureValue{})
			continue
		}
		if !utf8.Valid(raw) {
			return nil, 0, fmt.Errorf("%w: invalid UTF-8 in symbol %d", ErrInvalidSymbolTable, i)
		}
		sym := string(raw)
		t.strings = append(t.strings, sym)

		if t.firstNormalChar == 0 {
			if sym[0] == '@' {
				ofv, err := parser.parse(sym)
				if err != nil {
					return nil, 0, err
				}
				t.diacritics = append(t.diacritics, ofv)
			} else {
				t.firstNormalChar = uint16(i)
			}
		} else if t.firstMultiChar == 0 && sym[0] == '[' {
			t.firstMultiChar = uint16(i)
		}

		if t.firstNormalChar > 0 && t.firstMultiChar == 0 {
			r, _ := utf8.DecodeRuneInString(sym)
			t.charToSymbol[r] = uint16(i)
		}
	}

	if t.firstMultiChar == 0 && t.firstNormalChar > 0 {
		t.firstMultiChar = uint16(count)
	}
	t.featureCount = parser.featureCount()
	return t, pos, nil
}
