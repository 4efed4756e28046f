// Package sanakko is the top level entry point of the library. A Handle
// assembled from a dictionary bundle exposes spell checking, suggestion
// generation, morphological analysis, hyphenation, auto-correction and
// tokenization through one API.
package sanakko

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/louhiala/sanakko/internal/chars"
	"github.com/louhiala/sanakko/pkg/dict"
	"github.com/louhiala/sanakko/pkg/hyphen"
	"github.com/louhiala/sanakko/pkg/morph"
	"github.com/louhiala/sanakko/pkg/speller"
	"github.com/louhiala/sanakko/pkg/suggest"
	"github.com/louhiala/sanakko/pkg/tokenize"
	"github.com/louhiala/sanakko/pkg/userdict"
)

// Version is the library version reported by Handle.Version.
const Version = "1.0.0"

// DefaultMaxSuggestions is the suggestion count returned by Suggest
// unless SetMaxSuggestions changes it.
const DefaultMaxSuggestions = 5

// StrategyKind selects the suggestion strategy used by Suggest.
type StrategyKind int

const (
	// StrategyTyping targets human typing errors.
	StrategyTyping StrategyKind = iota
	// StrategyOCR targets optical character recognition errors.
	StrategyOCR
)

// Handle owns the analyzer built from a dictionary bundle and the
// components layered on it. Query methods are safe for concurrent use;
// option setters are not and should be applied before queries start.
type Handle struct {
	dict     *dict.Dict
	analyzer *morph.FinnishAnalyzer

	typing     *suggest.Strategy
	ocr        *suggest.Strategy
	transducer *suggest.TransducerSuggester

	mu       sync.Mutex
	cache    *speller.Cache
	userDict *userdict.Dictionary

	spellOpts          speller.Options
	acceptExtraHyphens bool
	hyphenOpts         hyphen.Options

	strategy       StrategyKind
	maxSuggestions int

	autocorr *autocorrector
}

// New builds a handle from an opened dictionary bundle. The bundle must
// outlive the handle. The morphology transducer is required; the
// weighted speller and error model transducers enable transducer-driven
// suggestions and autocorr.vfst enables AutoCorrect.
func New(d *dict.Dict) (*Handle, error) {
	if d == nil || d.Morphology == nil {
		return nil, errors.New("sanakko: dictionary bundle has no morphology transducer")
	}
	analyzer := morph.NewFinnishAnalyzerFromTransducer(d.Morphology)

	h := &Handle{
		dict:           d,
		analyzer:       analyzer,
		typing:         suggest.NewTypingStrategy(suggest.DefaultTypingCost, analyzer),
		ocr:            suggest.NewOCRStrategy(suggest.DefaultOCRCost, analyzer),
		spellOpts:      speller.DefaultOptions(),
		hyphenOpts:     hyphen.DefaultOptions(),
		maxSuggestions: DefaultMaxSuggestions,
	}
	if d.Speller != nil && d.ErrorModel != nil {
		h.transducer = suggest.NewTransducerSuggester(d.ErrorModel, d.Speller)
	}
	if d.Autocorrect != nil {
		h.autocorr = newAutocorrector(d.Autocorrect)
	}
	log.Debugf("Handle ready: dictionary %s, transducer suggestions %t, autocorrect %t",
		d.Path(), h.transducer != nil, h.autocorr != nil)
	return h, nil
}

// speller builds the spell check stack for one call: the analyzer
// adapter, the Finnish orthography wrapper, and the user dictionary
// front when one is attached.
func (h *Handle) buildSpeller() speller.Speller {
	var sp speller.Speller = speller.NewFinnishSpeller(
		speller.NewAnalyzerSpeller(h.analyzer),
		h.analyzer,
		h.hyphenator(),
		h.acceptExtraHyphens,
	)
	if h.userDict != nil {
		sp = userdict.WrapSpeller(h.userDict, sp)
	}
	return sp
}

func (h *Handle) hyphenator() *hyphen.FinnishHyphenator {
	return hyphen.NewFinnishHyphenator(h.analyzer, h.hyphenOpts)
}

func (h *Handle) currentCache() *speller.Cache {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cache
}

// Spell reports whether the word is correctly spelled under the current
// options.
func (h *Handle) Spell(word string) bool {
	return speller.Check([]rune(word), h.buildSpeller(), h.currentCache(), h.spellOpts)
}

// SpellDetail returns the raw spell result of the word: Ok,
// CapitalizeFirst, CapitalizationError or Failed. Unlike Spell it applies
// no option-based bypasses.
func (h *Handle) SpellDetail(word string) speller.Result {
	runes := speller.Normalize([]rune(word))
	if len(runes) == 0 {
		return speller.ResultFailed
	}
	buffer := make([]rune, len(runes))
	copy(buffer, runes)
	firstUpper := chars.IsUpper(buffer[0])
	buffer[0] = chars.Lower(buffer[0])
	result := h.buildSpeller().Spell(buffer)
	if result == speller.ResultCapitalizeFirst && firstUpper {
		return speller.ResultOk
	}
	return result
}

// Suggest returns corrections for a misspelled word, best first, at most
// the configured maximum. The transducer suggester is preferred when the
// dictionary bundle carries an error model; otherwise the edit strategy
// selected with SetSuggestionStrategy runs.
func (h *Handle) Suggest(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	// Gather three times the requested count so that sorting by priority
	// happens over a wider candidate pool before truncation.
	st := suggest.NewStatus(runes, h.maxSuggestions*3)

	if h.transducer != nil && h.strategy == StrategyTyping {
		h.transducer.Generate(st)
	} else {
		sp := h.buildSpeller()
		if h.strategy == StrategyOCR {
			h.ocr.Generate(sp, st)
		} else {
			h.typing.Generate(sp, st)
		}
	}
	st.Sort()

	suggestions := st.Suggestions()
	if len(suggestions) > h.maxSuggestions {
		suggestions = suggestions[:h.maxSuggestions]
	}
	words := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		words = append(words, s.Word)
	}
	return words
}

// Analyze returns all morphological readings of the word.
func (h *Handle) Analyze(word string) []*morph.Analysis {
	return h.analyzer.Analyze([]rune(word))
}

// Hyphenate returns the hyphenation pattern of the word: one byte per
// character, ' ' for no break, '-' for a break before the character and
// '=' for a character replaced by a hyphen.
func (h *Handle) Hyphenate(word string) string {
	return h.hyphenator().Hyphenate([]rune(word))
}

// InsertHyphens renders the word with separator inserted at its
// hyphenation points. allowContextChanges additionally rewrites
// characters at '=' boundaries, keeping existing hyphens single.
func (h *Handle) InsertHyphens(word, separator string, allowContextChanges bool) string {
	runes := []rune(word)
	pattern := h.hyphenator().Hyphenate(runes)
	return hyphen.InsertHyphens(runes, pattern, separator, allowContextChanges)
}

// Tokens splits text into word, whitespace, punctuation and unknown
// tokens.
func (h *Handle) Tokens(text string) []tokenize.Token {
	return tokenize.Tokens(text)
}

// Sentences splits text into sentences, consulting the speller for
// abbreviation dots.
func (h *Handle) Sentences(text string) []tokenize.Sentence {
	sp := h.buildSpeller()
	cache := h.currentCache()
	opts := h.spellOpts
	return tokenize.Sentences(text, func(word []rune) bool {
		return speller.Check(word, sp, cache, opts)
	})
}

// SetUserDictionary attaches a user dictionary consulted before the
// transducer pipeline. Pass nil to detach.
func (h *Handle) SetUserDictionary(ud *userdict.Dictionary) {
	h.userDict = ud
}

// SetCacheSize installs a spell result cache holding up to n words,
// dropping any previous cache contents. Zero disables caching. Negative
// sizes are rejected.
func (h *Handle) SetCacheSize(n int) error {
	if n < 0 {
		return errors.New("sanakko: negative cache size")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if n == 0 {
		h.cache = nil
		return nil
	}
	h.cache = speller.NewCache(n)
	return nil
}

// SetSuggestionStrategy selects the strategy used by Suggest.
func (h *Handle) SetSuggestionStrategy(kind StrategyKind) error {
	switch kind {
	case StrategyTyping, StrategyOCR:
		h.strategy = kind
		return nil
	}
	return errors.New("sanakko: unknown suggestion strategy")
}

// SetMaxSuggestions caps the number of corrections Suggest returns.
func (h *Handle) SetMaxSuggestions(n int) {
	if n > 0 {
		h.maxSuggestions = n
	}
}

// SetSuggestionBudgets rebuilds both edit strategies with the given cost
// budgets. Non-positive values keep the defaults.
func (h *Handle) SetSuggestionBudgets(typing, ocr int) {
	if typing <= 0 {
		typing = suggest.DefaultTypingCost
	}
	if ocr <= 0 {
		ocr = suggest.DefaultOCRCost
	}
	h.typing = suggest.NewTypingStrategy(typing, h.analyzer)
	h.ocr = suggest.NewOCRStrategy(ocr, h.analyzer)
}

// SetIgnoreDot accepts a trailing dot on otherwise correct words, and
// retries hyphenation analysis without it.
func (h *Handle) SetIgnoreDot(v bool) {
	h.spellOpts.IgnoreDot = v
	h.hyphenOpts.IgnoreDot = v
}

// SetIgnoreNumbers accepts any word containing a digit.
func (h *Handle) SetIgnoreNumbers(v bool) { h.spellOpts.IgnoreNumbers = v }

// SetIgnoreUppercase accepts words written entirely in uppercase.
func (h *Handle) SetIgnoreUppercase(v bool) { h.spellOpts.IgnoreUppercase = v }

// SetIgnoreNonwords accepts URL and email patterns without checking.
func (h *Handle) SetIgnoreNonwords(v bool) { h.spellOpts.IgnoreNonwords = v }

// SetAcceptFirstUppercase accepts an uppercased first letter on words
// whose analyses expect lowercase.
func (h *Handle) SetAcceptFirstUppercase(v bool) { h.spellOpts.AcceptFirstUppercase = v }

// SetAcceptAllUppercase spell checks all-uppercase words as lowercase.
func (h *Handle) SetAcceptAllUppercase(v bool) { h.spellOpts.AcceptAllUppercase = v }

// SetAcceptMissingHyphens retries failed words with hyphens added at the
// start and end.
func (h *Handle) SetAcceptMissingHyphens(v bool) { h.spellOpts.AcceptMissingHyphens = v }

// SetAcceptExtraHyphens accepts compound words written with unnecessary
// hyphens at component boundaries.
func (h *Handle) SetAcceptExtraHyphens(v bool) { h.acceptExtraHyphens = v }

// SetNoUglyHyphenation suppresses correct but typographically poor break
// points.
func (h *Handle) SetNoUglyHyphenation(v bool) { h.hyphenOpts.UglyHyphenation = !v }

// SetHyphenateUnknownWords applies the syllable rules to words the
// analyzer does not recognize.
func (h *Handle) SetHyphenateUnknownWords(v bool) { h.hyphenOpts.HyphenateUnknown = v }

// SetMinHyphenatedWordLength sets the minimum length of a word, and of a
// compound component, that gets hyphenated.
func (h *Handle) SetMinHyphenatedWordLength(n int) { h.hyphenOpts.MinWordLength = n }

// Version returns the library version string.
func (h *Handle) Version() string { return Version }
