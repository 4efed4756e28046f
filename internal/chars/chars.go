// Package chars holds the character level helpers shared by the analyzer,
// speller and tokenizer: classification, simple case mapping and the
// Finnish vowel/consonant sets.
package chars

import "unicode"

// Finnish vowels and consonants, lowercase.
var (
	finnishVowels     = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true, 'ä': true, 'ö': true}
	finnishConsonants = map[rune]bool{
		'b': true, 'c': true, 'd': true, 'f': true, 'g': true, 'h': true,
		'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'p': true,
		'q': true, 'r': true, 's': true, 't': true, 'v': true, 'w': true,
		'x': true, 'z': true, 'š': true, 'ž': true,
	}
)

// Vowels used by the suggestion generator for harmony flips.
var (
	BackVowels  = []rune{'a', 'o', 'u', 'A', 'O', 'U'}
	FrontVowels = []rune{'ä', 'ö', 'y', 'Ä', 'Ö', 'Y'}
)

// Type classifies a rune the way the spell pipeline and tokenizer need it.
type Type int

const (
	TypeUnknown Type = iota
	TypeLetter
	TypeDigit
	TypeWhitespace
	TypePunctuation
)

// TypeOf returns the character class of c. The letter ranges are fixed
// rather than unicode.IsLetter so that dictionary coverage and tokenizer
// behavior stay in sync across Go versions.
func TypeOf(c rune) Type {
	switch {
	case c >= 0x41 && c <= 0x5A, // A-Z
		c >= 0x61 && c <= 0x7A, // a-z
		c >= 0xC1 && c <= 0xD6, // Á-Ö, deliberately excludes À
		c >= 0xD8 && c <= 0xF6, // Ø-ö
		c >= 0xF8 && c <= 0x02AF,
		c >= 0x0400 && c <= 0x0481, // Cyrillic
		c >= 0x048A && c <= 0x0527,
		c >= 0x1400 && c <= 0x15C3, // Canadian syllabics
		c >= 0xFB00 && c <= 0xFB04: // ff fi fl ffi ffl ligatures
		return TypeLetter
	case IsWhitespace(c):
		return TypeWhitespace
	case isPunctuation(c) || IsFinnishQuotationMark(c):
		return TypePunctuation
	case c >= '0' && c <= '9':
		return TypeDigit
	}
	return TypeUnknown
}

func isPunctuation(c rune) bool {
	switch c {
	case '.', ',', ';', '-', '!', '?', ':', '\'', '(', ')', '[', ']', '{', '}', '/', '&',
		'­', // soft hyphen
		'’', // right single quotation mark
		'‐', '‑', '–', '—',
		'“', '…':
		return true
	}
	return false
}

// IsFinnishQuotationMark reports whether c is one of the quotation marks
// used in Finnish text: ", » and U+201D.
func IsFinnishQuotationMark(c rune) bool {
	return c == '"' || c == '»' || c == '”'
}

// IsVowel reports whether c is a Finnish vowel, ignoring case.
func IsVowel(c rune) bool {
	return finnishVowels[Lower(c)]
}

// IsConsonant reports whether c is a Finnish consonant, ignoring case.
func IsConsonant(c rune) bool {
	return finnishConsonants[Lower(c)]
}

// Lower maps c to lowercase with the one-to-one Unicode mapping.
func Lower(c rune) rune {
	return unicode.ToLower(c)
}

// Upper maps c to uppercase with the one-to-one Unicode mapping.
func Upper(c rune) rune {
	return unicode.ToUpper(c)
}

// IsUpper reports whether c is an uppercase letter. U+018F (capital schwa)
// is special-cased for dictionaries that carry it.
func IsUpper(c rune) bool {
	return c != Lower(c) || c == 'Ə'
}

// IsLower reports whether c is a lowercase letter.
func IsLower(c rune) bool {
	return c != Upper(c)
}

// IsWhitespace covers the whitespace set the tokenizer splits on,
// including NBSP and the typographic spaces.
func IsWhitespace(c rune) bool {
	switch {
	case c >= 0x09 && c <= 0x0D, c == 0x20, c == 0x85, c == 0xA0,
		c == 0x1680, c == 0x180E,
		c >= 0x2000 && c <= 0x200A,
		c == 0x2028, c == 0x2029, c == 0x202F, c == 0x205F, c == 0x3000:
		return true
	}
	return false
}

// EqualsIgnoreCase compares two rune slices case-insensitively.
func EqualsIgnoreCase(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if Lower(a[i]) != Lower(b[i]) {
			return false
		}
	}
	return true
}
