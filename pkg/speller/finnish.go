package speller

import (
	"github.com/louhiala/sanakko/internal/chars"
	"github.com/louhiala/sanakko/pkg/morph"
)

const softHyphen = '­'

// Hyphenator exposes the hyphenation points of a word as a pattern string
// with '-' at each position where a hyphen may be inserted.
type Hyphenator interface {
	AllPossibleHyphenPositions(word []rune) string
}

// FinnishSpeller wraps a base Speller with adjustments specific to
// Finnish orthography:
//
//  1. Soft hyphens (U+00AD) are stripped and their positions validated
//     against the hyphenator.
//  2. Compounds written with an unnecessary hyphen are retried without it.
//  3. Vowel-consonant overlap compounds like "pop-opisto" are accepted.
//  4. Free suffix parts like "ja-sana" are accepted when the leading part
//     spells correctly.
//  5. Ambiguous compound boundaries like "syy-silta" / "syys-ilta" are
//     accepted when both readings exist.
type FinnishSpeller struct {
	inner    Speller
	analyzer morph.Analyzer
	// hyphenator validates soft hyphen positions; when nil the positions
	// are accepted without validation.
	hyphenator         Hyphenator
	acceptExtraHyphens bool
}

// NewFinnishSpeller wraps inner with the Finnish adjustments. hyphenator
// may be nil.
func NewFinnishSpeller(inner Speller, analyzer morph.Analyzer, hyphenator Hyphenator, acceptExtraHyphens bool) *FinnishSpeller {
	return &FinnishSpeller{
		inner:              inner,
		analyzer:           analyzer,
		hyphenator:         hyphenator,
		acceptExtraHyphens: acceptExtraHyphens,
	}
}

// Spell checks a word, stripping soft hyphens first. A soft hyphen at the
// start or end of the word, or two in a row, fails immediately. For a
// word that otherwise spells correctly, every soft hyphen must sit at a
// valid hyphenation point.
func (s *FinnishSpeller) Spell(word []rune) Result {
	if !containsRune(word, softHyphen) {
		return s.spellWithoutSoftHyphen(word)
	}

	buffer := make([]rune, 0, len(word))
	var shyPositions []int
	for i, c := range word {
		if c != softHyphen {
			buffer = append(buffer, c)
			continue
		}
		if len(buffer) == 0 || i+1 == len(word) ||
			(len(shyPositions) > 0 && shyPositions[len(shyPositions)-1] == len(buffer)) {
			return ResultFailed
		}
		shyPositions = append(shyPositions, len(buffer))
	}

	result := s.spellWithoutSoftHyphen(buffer)
	if result != ResultFailed && !s.validSoftHyphenPositions(buffer, shyPositions) {
		return ResultFailed
	}
	return result
}

func (s *FinnishSpeller) validSoftHyphenPositions(word []rune, positions []int) bool {
	if s.hyphenator == nil {
		return true
	}
	pattern := s.hyphenator.AllPossibleHyphenPositions(word)
	for _, pos := range positions {
		if pos >= len(pattern) || pattern[pos] != '-' {
			return false
		}
	}
	return true
}

func (s *FinnishSpeller) spellWithoutSoftHyphen(word []rune) Result {
	result := s.inner.Spell(word)
	wlen := len(word)

	hyphenIdx := -1
	if result != ResultOk && wlen > 3 {
		for i := 1; i < wlen-1; i++ {
			if word[i] == '-' {
				hyphenIdx = i
				break
			}
		}
	}
	if hyphenIdx < 0 {
		return result
	}

	leadingLen := hyphenIdx
	buffer := make([]rune, 0, wlen-1)
	buffer = append(buffer, word[:leadingLen]...)
	buffer = append(buffer, word[hyphenIdx+1:]...)

	// Compound written with an unnecessary hyphen.
	if s.acceptExtraHyphens && leadingLen > 1 &&
		(leadingLen >= len(buffer) || buffer[leadingLen] != '-') {
		if s.spellWithoutSoftHyphen(buffer) == ResultOk {
			return ResultOk
		}
	}

	// Vowel-consonant overlap like "pop-opisto": the leading part ends in
	// a vowel-consonant pair that the trailing part repeats.
	if leadingLen >= 2 && wlen-leadingLen >= 3 {
		v := chars.Lower(word[leadingLen-2])
		c := chars.Lower(word[leadingLen-1])
		if chars.IsVowel(v) && chars.IsConsonant(c) &&
			chars.Lower(word[leadingLen+1]) == v &&
			chars.Lower(word[leadingLen+2]) == c {
			spres := s.inner.Spell(buffer)
			if spres != ResultFailed && (result == ResultFailed || result > spres) {
				return spres
			}
		}
	}

	// Free suffix part like "ja-sana": the leading part before the last
	// hyphen spells correctly and the trailing part may attach freely.
	for i := wlen - 2; i >= 1; i-- {
		if word[i] != '-' {
			continue
		}
		leadingResult := s.Spell(word[:i])
		if leadingResult != ResultFailed {
			trailing := word[i+1:]
			for _, a := range s.analyzer.Analyze(trailing) {
				if a.Value(morph.AttrMalagaVapaaJalkiosa) == "true" {
					return leadingResult
				}
			}
		}
		break
	}

	// Ambiguous compound boundary like "syy-silta" / "syys-ilta": remove
	// the hyphen and accept only when the joined word has analyses both
	// with and without a boundary at the hyphen position.
	analyses := s.analyzer.Analyze(buffer)
	if len(analyses) == 0 {
		return result
	}

	withBorder := ResultFailed
	withoutBorder := ResultFailed
	for _, analysis := range analyses {
		structure, ok := analysis.Get(morph.AttrStructure)
		if !ok {
			continue
		}
		pattern := []rune(structure)
		j, i := 0, 0
		for i < leadingLen {
			for j < len(pattern) && pattern[j] == '=' {
				j++
			}
			if j >= len(pattern) {
				break
			}
			j++
			i++
		}
		if i != leadingLen {
			continue
		}
		spres := MatchStructure(buffer, structure)
		if j < len(pattern) && pattern[j] == '=' {
			if withBorder == ResultFailed || withBorder > spres {
				withBorder = spres
			}
		} else if withoutBorder == ResultFailed || withoutBorder > spres {
			withoutBorder = spres
		}
	}

	if withBorder != ResultFailed && withoutBorder != ResultFailed &&
		(result == ResultFailed || result > withBorder) {
		return withBorder
	}
	return result
}
