package tokenize

import "github.com/louhiala/sanakko/internal/chars"

// SentenceKind rates a detected sentence boundary.
type SentenceKind int

const (
	// SentenceNone means the input ran out without a boundary.
	SentenceNone SentenceKind = iota
	// SentenceProbable is a boundary the detector is confident about.
	SentenceProbable
	// SentencePossible follows an abbreviation, ellipsis, colon or other
	// construct where the next word may still belong to the same sentence.
	SentencePossible
)

// Sentence is one detected sentence with its boundary confidence.
type Sentence struct {
	Kind SentenceKind
	Text string
}

// dotPartOfWord reports whether a word ending in a dot reads as a single
// word rather than a word followed by a sentence-ending period. Initials
// ("K.") and ordinals or dates ("24.", "1.2.") qualify on their own;
// other abbreviations need the spell callback to accept them.
func dotPartOfWord(text []rune, spell SpellFunc) bool {
	n := len(text)
	if n < 2 {
		return false
	}
	if n == 2 && chars.IsUpper(text[0]) {
		return true
	}
	onlyNumbersOrDots := true
	for _, c := range text[:n-1] {
		if c != '.' && c != '-' && (c < '0' || c > '9') {
			onlyNumbersOrDots = false
			break
		}
	}
	if onlyNumbersOrDots {
		return true
	}
	if spell != nil && spell(text) {
		return true
	}
	return false
}

// NextSentence finds the next sentence boundary starting at pos. It
// returns the boundary kind and the sentence length, which includes any
// whitespace up to the first token of the next sentence. The optional
// spell callback recognizes abbreviations; pass nil to rely on the
// initial and ordinal heuristics only.
func NextSentence(text []rune, pos int, spell SpellFunc) (SentenceKind, int) {
	remaining := len(text) - pos
	if remaining <= 0 {
		return SentenceNone, 0
	}
	slice := text[pos:]

	slen := 0
	previousTokenStart := 0
	previousTokenKind := KindNone
	endFound := false
	inQuotation := false
	endDotword := false
	possibleEndPunctuation := false

	for slen < remaining {
		token, tokenlen := nextToken(slice, slen, false)
		if token == KindNone {
			break
		}

		if endFound && !inQuotation {
			if token != KindWhitespace {
				if endDotword || possibleEndPunctuation ||
					(previousTokenKind != KindWhitespace && token == KindWord) {
					return SentencePossible, slen
				}
				return SentenceProbable, slen
			}
		} else if token == KindPunctuation {
			punct := slice[slen]
			switch {
			case punct == '!' || punct == '?':
				endFound = true
				if inQuotation {
					possibleEndPunctuation = true
				}
			case (punct == '.' && tokenlen == 3) || punct == '…':
				endFound = true
				possibleEndPunctuation = true
			case punct == '.':
				endFound = true
				if slen != 0 && previousTokenKind == KindWord &&
					dotPartOfWord(slice[previousTokenStart:slen+1], spell) {
					endDotword = true
				}
			case punct == ':':
				endFound = true
				possibleEndPunctuation = true
			case chars.IsFinnishQuotationMark(punct) || punct == '“':
				inQuotation = !inQuotation
				// A comma right after the closing quote means the quoted
				// clause continues the surrounding sentence.
				if !inQuotation && slen+1 < remaining && slice[slen+1] == ',' {
					endFound = false
					possibleEndPunctuation = false
				}
			}
		}

		previousTokenStart = slen
		previousTokenKind = token
		slen += tokenlen
	}

	return SentenceNone, remaining
}

// Sentences splits text into sentences. The concatenation of the returned
// sentence texts equals the input. The optional spell callback feeds
// abbreviation detection.
func Sentences(text string, spell SpellFunc) []Sentence {
	runes := []rune(text)
	var sentences []Sentence
	pos := 0
	for pos < len(runes) {
		kind, length := NextSentence(runes, pos, spell)
		if length == 0 {
			break
		}
		sentences = append(sentences, Sentence{Kind: kind, Text: string(runes[pos : pos+length])})
		pos += length
	}
	return sentences
}
