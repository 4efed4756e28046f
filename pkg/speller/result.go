// Package speller implements spell checking on top of morphological
// analysis. A word is correct when some analysis exists whose STRUCTURE
// attribute matches the word's capitalization.
package speller

// Result grades a spell check. Smaller values are better; comparisons in
// this package rely on that ordering.
type Result int

const (
	// ResultOk means the word is correctly spelled.
	ResultOk Result = iota
	// ResultCapitalizeFirst means the word is correct once the first
	// letter is capitalized.
	ResultCapitalizeFirst
	// ResultCapitalizationError means a letter other than the first has
	// the wrong case.
	ResultCapitalizationError
	// ResultFailed means the word is misspelled.
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultOk:
		return "ok"
	case ResultCapitalizeFirst:
		return "capitalize_first"
	case ResultCapitalizationError:
		return "capitalization_error"
	case ResultFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Speller checks a single word. The word is typically already lowercased;
// capitalization correctness is validated through the STRUCTURE attribute.
type Speller interface {
	Spell(word []rune) Result
}
