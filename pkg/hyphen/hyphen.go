// Package hyphen implements Finnish syllable-based hyphenation. Compound
// boundaries come from morphological analysis (the STRUCTURE attribute),
// syllable rules fill in break points inside each compound component.
//
// Patterns returned by Hyphenate and AllPossibleHyphenPositions have one
// byte per input character: ' ' forbids a break before the character, '-'
// allows one, and '=' marks a character that is itself replaced by a
// hyphen (an apostrophe or an explicit hyphen at a compound boundary).
package hyphen

import (
	"strings"

	"github.com/louhiala/sanakko/internal/chars"
	"github.com/louhiala/sanakko/pkg/morph"
)

// maxAnalysisCount caps how many analyses contribute hyphenation variants.
const maxAnalysisCount = 31

// Options configure the hyphenator.
type Options struct {
	// UglyHyphenation includes correct but typographically poor break
	// points, like single-character syllables at word edges.
	UglyHyphenation bool
	// HyphenateUnknown applies the syllable rules to words the analyzer
	// does not recognize.
	HyphenateUnknown bool
	// MinWordLength is the minimum length of a word, and of a compound
	// component, that gets hyphenated at all.
	MinWordLength int
	// IgnoreDot retries the analysis without a trailing dot.
	IgnoreDot bool
}

// DefaultOptions returns the standard hyphenation settings.
func DefaultOptions() Options {
	return Options{
		UglyHyphenation:  true,
		HyphenateUnknown: true,
		MinWordLength:    2,
	}
}

// FinnishHyphenator combines analyzer-provided compound boundaries with
// rule-based syllable splitting.
type FinnishHyphenator struct {
	analyzer morph.Analyzer
	opts     Options
}

// NewFinnishHyphenator wraps analyzer with the given options.
func NewFinnishHyphenator(analyzer morph.Analyzer, opts Options) *FinnishHyphenator {
	return &FinnishHyphenator{analyzer: analyzer, opts: opts}
}

// SetOptions replaces the hyphenation settings.
func (h *FinnishHyphenator) SetOptions(opts Options) {
	h.opts = opts
}

// Hyphenate returns the break points every analysis of the word agrees
// on. This is the conservative pattern used for display hyphenation.
func (h *FinnishHyphenator) Hyphenate(word []rune) string {
	return h.hyphenate(word, true)
}

// AllPossibleHyphenPositions returns the break points any analysis of the
// word allows. The spell checker validates soft hyphens against it.
func (h *FinnishHyphenator) AllPossibleHyphenPositions(word []rune) string {
	return h.hyphenate(word, false)
}

func (h *FinnishHyphenator) hyphenate(word []rune, intersect bool) string {
	wlen := len(word)
	if wlen < h.opts.MinWordLength {
		return strings.Repeat(" ", wlen)
	}

	buffers, dotRemoved := h.splitCompounds(word)
	effectiveLen := wlen
	if dotRemoved {
		effectiveLen--
	}
	for _, buf := range buffers {
		h.compoundHyphenation(word, buf, effectiveLen)
	}

	if intersect {
		return mergeIntersection(buffers)
	}
	return mergeUnion(buffers)
}

// splitCompounds produces one boundary buffer per analysis. Inside a
// buffer ' ' means no boundary, '-' a compound boundary, '=' an explicit
// hyphen boundary and 'X' a position where hyphenation is forbidden.
func (h *FinnishHyphenator) splitCompounds(word []rune) ([][]byte, bool) {
	wlen := len(word)
	lower := make([]rune, wlen)
	for i, c := range word {
		lower[i] = chars.Lower(c)
	}

	analyses := h.analyzer.Analyze(lower)

	dotRemoved := false
	if len(analyses) == 0 && h.opts.IgnoreDot && wlen > 1 && word[wlen-1] == '.' {
		analyses = h.analyzer.Analyze(lower[:wlen-1])
		dotRemoved = len(analyses) > 0
	}
	effectiveLen := wlen
	if dotRemoved {
		effectiveLen--
	}

	var buffers [][]byte
	if len(analyses) == 0 {
		fill := byte(' ')
		if !h.opts.HyphenateUnknown {
			fill = 'X'
		}
		buf := make([]byte, wlen)
		for i := range buf {
			buf[i] = fill
		}
		if allowRuleHyphenation(word, wlen, h.opts.UglyHyphenation) {
			for i := 1; i < wlen-1; i++ {
				if word[i] == '-' {
					buf[i] = '='
				}
			}
		}
		buffers = append(buffers, buf)
	} else {
		for n, analysis := range analyses {
			if n >= maxAnalysisCount {
				break
			}
			buf := make([]byte, wlen)
			interpretAnalysis(analysis, buf, effectiveLen)
			if dotRemoved {
				buf[wlen-1] = ' '
			}
			buffers = append(buffers, buf)
		}
	}

	removeExtraHyphenations(&buffers, wlen)
	return buffers, dotRemoved
}

// compoundHyphenation runs the syllable rules over each component of the
// boundary buffer.
func (h *FinnishHyphenator) compoundHyphenation(word []rune, buf []byte, length int) {
	start := 0
	for start < length && buf[start] == '=' {
		start++
	}

	end := start + 1
	for end < length {
		if buf[end] != ' ' && buf[end] != 'X' {
			if end >= start+h.opts.MinWordLength {
				ruleHyphenation(word[start:], buf[start:], end-start, h.opts.UglyHyphenation)
			}
			if buf[end] == '=' {
				start = end + 1
			} else {
				start = end
			}
			end = start + 1
		} else {
			end++
		}
	}

	if end == length && start < end && end >= start+h.opts.MinWordLength {
		ruleHyphenation(word[start:], buf[start:], end-start, h.opts.UglyHyphenation)
	}
}

// interpretAnalysis marks compound boundaries from the STRUCTURE pattern.
func interpretAnalysis(analysis *morph.Analysis, buf []byte, length int) {
	structure, ok := analysis.Get(morph.AttrStructure)
	if !ok {
		return
	}
	pattern := []rune(structure)

	for i := 0; i < length; i++ {
		buf[i] = ' '
	}

	sptr := 0
	if sptr < len(pattern) && pattern[sptr] == '=' {
		sptr++
	}

	for i := 0; i < length; i++ {
		if sptr >= len(pattern) {
			break
		}
		if pattern[sptr] == '-' && sptr+1 < len(pattern) && pattern[sptr+1] == '=' {
			if i != 0 {
				buf[i] = '='
			}
			sptr += 2
			continue
		}
		if pattern[sptr] == '=' {
			buf[i] = '-'
			sptr += 2
			continue
		}
		if pattern[sptr] == 'j' || pattern[sptr] == 'q' {
			buf[i] = 'X'
		}
		sptr++
	}
}

// removeExtraHyphenations drops compound readings when the word also has
// a non-compound reading.
func removeExtraHyphenations(buffers *[][]byte, length int) {
	parts := func(buf []byte) int {
		n := 1
		for _, b := range buf[:length] {
			if b != ' ' && b != 'X' {
				n++
			}
		}
		return n
	}

	minParts := 0
	for i, buf := range *buffers {
		if p := parts(buf); i == 0 || p < minParts {
			minParts = p
		}
	}
	if minParts > 1 {
		return
	}

	kept := (*buffers)[:0]
	for _, buf := range *buffers {
		if parts(buf) == minParts {
			kept = append(kept, buf)
		}
	}
	*buffers = kept
}

// mergeIntersection keeps a break only when every buffer has it.
func mergeIntersection(buffers [][]byte) string {
	if len(buffers) == 0 {
		return ""
	}
	result := append([]byte(nil), buffers[0]...)
	for i, b := range result {
		if b == 'X' {
			result[i] = ' '
		}
	}
	for _, buf := range buffers[1:] {
		for i, b := range buf {
			if b == ' ' || b == 'X' {
				result[i] = ' '
			}
		}
	}
	return string(result)
}

// mergeUnion keeps a break when any buffer has it.
func mergeUnion(buffers [][]byte) string {
	if len(buffers) == 0 {
		return ""
	}
	result := append([]byte(nil), buffers[0]...)
	for i, b := range result {
		if b == 'X' {
			result[i] = ' '
		}
	}
	for _, buf := range buffers[1:] {
		for i, b := range buf {
			if b == '-' {
				result[i] = '-'
			}
		}
	}
	return string(result)
}

// InsertHyphens renders a word with the separator inserted according to
// a pattern from Hyphenate. '-' inserts the separator before the
// character, '=' replaces the character with it.
// allowContextChanges permits replacing characters at '=' positions with
// the separator; an existing hyphen there stays as-is to avoid doubling.
// Without it only the pure insertion points ('-') are rendered.
func InsertHyphens(word []rune, pattern string, separator string, allowContextChanges bool) string {
	var sb strings.Builder
	for i, c := range word {
		if i < len(pattern) {
			switch pattern[i] {
			case '-':
				sb.WriteString(separator)
			case '=':
				if allowContextChanges {
					if c == '-' {
						sb.WriteRune(c)
						continue
					}
					sb.WriteString(separator)
					continue
				}
			}
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
