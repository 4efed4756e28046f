// Package tokenize splits Finnish text into word, whitespace, punctuation
// and unknown tokens, and detects sentence boundaries. Word tokens keep
// internal hyphens, apostrophes and colons together ("linja-auto",
// "vaa'an", "EU:ssa") and recognize URLs and email addresses as single
// words. The round trip holds: concatenating the text of all tokens
// reproduces the input.
package tokenize

import "github.com/louhiala/sanakko/internal/chars"

// Kind is the class of a token.
type Kind int

const (
	// KindNone marks exhausted input; Tokens never emits it.
	KindNone Kind = iota
	KindWord
	KindWhitespace
	KindPunctuation
	KindUnknown
)

// Token is one span of input text.
type Token struct {
	Kind Kind
	Text string
}

// SpellFunc reports whether a word is accepted by the spell checker. The
// sentence detector uses it to recognize abbreviations ending in a dot.
type SpellFunc func(word []rune) bool

func isEmailUnknownChar(c rune) bool {
	switch c {
	case '#', '$', '%', '*', '+', '=', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

func isEmailPunctuationChar(c rune) bool {
	switch c {
	case '!', '&', '\'', '-', '/', '?', '{', '}', '.':
		return true
	}
	return false
}

func isURLUnknownChar(c rune) bool {
	return c == '=' || c == '#' || c == '%'
}

func hasPrefix(text []rune, prefix string) bool {
	p := []rune(prefix)
	if len(text) < len(p) {
		return false
	}
	for i, c := range p {
		if text[i] != c {
			return false
		}
	}
	return true
}

// findURLOrEmail returns the length of a URL or email address starting at
// the beginning of text, or 0 if there is none.
func findURLOrEmail(text []rune) int {
	textlen := len(text)

	// 12 is a rough lower bound for a real-world HTTP URL.
	isHTTP := textlen >= 12 && hasPrefix(text, "http://")
	isHTTPS := textlen >= 12 && hasPrefix(text, "https://")
	if !isHTTP && !isHTTPS {
		return findEmail(text)
	}

	start := 7
	if isHTTPS {
		start = 8
	}
	for i := start; i < textlen; i++ {
		switch chars.TypeOf(text[i]) {
		case chars.TypeWhitespace:
			return i
		case chars.TypeUnknown:
			if !isURLUnknownChar(text[i]) {
				return i
			}
		case chars.TypePunctuation:
			// A dot at end of text or before whitespace terminates the
			// URL and is not part of it.
			if text[i] == '.' &&
				(i+1 == textlen || chars.TypeOf(text[i+1]) == chars.TypeWhitespace) {
				return i
			}
		}
	}
	return textlen
}

// findEmail returns the length of an email address starting at the
// beginning of text, or 0 if there is none.
func findEmail(text []rune) int {
	textlen := len(text)
	if textlen < 6 {
		return 0
	}

	foundAt := false
	foundDot := false

	for i := 0; i < textlen; i++ {
		switch chars.TypeOf(text[i]) {
		case chars.TypeWhitespace:
			if foundAt && foundDot {
				return i
			}
			return 0
		case chars.TypeUnknown:
			if text[i] == '@' {
				if foundAt {
					return 0
				}
				foundAt = true
			} else if !isEmailUnknownChar(text[i]) {
				if foundAt && foundDot {
					return i
				}
				return 0
			}
		case chars.TypePunctuation:
			if text[i] == '.' && foundAt {
				if i+1 == textlen || chars.TypeOf(text[i+1]) == chars.TypeWhitespace {
					if foundDot {
						return i
					}
					return 0
				}
				foundDot = true
			} else if !isEmailPunctuationChar(text[i]) {
				if foundAt && foundDot {
					return i
				}
				return 0
			}
		}
	}

	if foundAt && foundDot {
		return textlen
	}
	return 0
}

// wordLength returns the length of the word token starting at the
// beginning of text. When ignoreDot is set a trailing dot is included in
// the word instead of becoming a separate punctuation token.
func wordLength(text []rune, ignoreDot bool) int {
	textlen := len(text)

	if l := findURLOrEmail(text); l != 0 {
		return l
	}

	adot := 0
	if ignoreDot {
		adot = 1
	}
	wlen := 0
	processingNumber := false
	seenLetters := false

	for wlen < textlen {
		switch chars.TypeOf(text[wlen]) {
		case chars.TypeLetter:
			processingNumber = false
			seenLetters = true
			wlen++
		case chars.TypeDigit:
			processingNumber = true
			wlen++
		case chars.TypeWhitespace, chars.TypeUnknown:
			return wlen
		case chars.TypePunctuation:
			switch text[wlen] {
			case '\'', '’', ':':
				// Continue only when a letter follows: "vaa'an", "EU:ssa".
				if wlen+1 == textlen || chars.TypeOf(text[wlen+1]) != chars.TypeLetter {
					return wlen
				}
				wlen++
			case '-', '­', '‐', '‑':
				if wlen+1 == textlen {
					return wlen + 1
				}
				if chars.IsFinnishQuotationMark(text[wlen+1]) {
					return wlen + 1
				}
				switch chars.TypeOf(text[wlen+1]) {
				case chars.TypeLetter, chars.TypeDigit:
					wlen++
				case chars.TypeWhitespace, chars.TypeUnknown:
					return wlen + 1
				default:
					if text[wlen+1] == ',' {
						return wlen + 1
					}
					return wlen
				}
			case '.':
				if wlen+1 == textlen {
					return wlen + adot
				}
				switch chars.TypeOf(text[wlen+1]) {
				case chars.TypeLetter:
					wlen++
				case chars.TypeDigit:
					// "1.2.3" is one token but "abc.1" is not.
					if seenLetters {
						return wlen + adot
					}
					wlen++
				default:
					return wlen + adot
				}
			case ',':
				// Only inside a number followed by a digit: "1,234".
				if !processingNumber || wlen+1 == textlen ||
					chars.TypeOf(text[wlen+1]) != chars.TypeDigit {
					return wlen
				}
				wlen++
			default:
				return wlen
			}
		}
	}
	return textlen
}

// NextToken returns the kind and length of the token starting at pos.
// A trailing dot becomes its own punctuation token. The caller advances
// pos by the returned length; at end of input it returns (KindNone, 0).
func NextToken(text []rune, pos int) (Kind, int) {
	return nextToken(text, pos, false)
}

func nextToken(text []rune, pos int, ignoreDot bool) (Kind, int) {
	remaining := len(text) - pos
	if remaining <= 0 {
		return KindNone, 0
	}
	slice := text[pos:]

	switch chars.TypeOf(slice[0]) {
	case chars.TypeLetter, chars.TypeDigit:
		return KindWord, wordLength(slice, ignoreDot)
	case chars.TypeWhitespace:
		i := 1
		for i < remaining && chars.TypeOf(slice[i]) == chars.TypeWhitespace {
			i++
		}
		return KindWhitespace, i
	case chars.TypePunctuation:
		// Leading hyphen joined to a word stays a word: "-sta".
		if slice[0] == '-' || slice[0] == '‐' || slice[0] == '‑' {
			if remaining == 1 {
				return KindPunctuation, 1
			}
			wlen := wordLength(slice[1:], ignoreDot)
			if wlen == 0 {
				return KindPunctuation, 1
			}
			return KindWord, wlen + 1
		}
		if remaining >= 3 && slice[0] == '.' && slice[1] == '.' && slice[2] == '.' {
			return KindPunctuation, 3
		}
		return KindPunctuation, 1
	}
	return KindUnknown, 1
}

// Tokens splits text into tokens. The concatenation of the returned token
// texts equals the input.
func Tokens(text string) []Token {
	runes := []rune(text)
	var tokens []Token
	pos := 0
	for {
		kind, length := NextToken(runes, pos)
		if kind == KindNone {
			return tokens
		}
		tokens = append(tokens, Token{Kind: kind, Text: string(runes[pos : pos+length])})
		pos += length
	}
}
