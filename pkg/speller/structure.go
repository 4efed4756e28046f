package speller

import "github.com/louhiala/sanakko/internal/chars"

// MatchStructure compares the actual character cases of word against the
// expected STRUCTURE pattern from a morphological analysis.
//
// STRUCTURE encodes one character per position: '=' marks a compound
// boundary and is skipped, 'p'/'q' require a lowercase letter, 'i'/'j'
// require an uppercase one, '-' and ':' stand for themselves.
//
// Returns ResultOk when every letter matches, ResultCapitalizeFirst when
// only the first letter needs uppercasing, and ResultCapitalizationError
// when a later letter has the wrong case.
func MatchStructure(word []rune, structure string) Result {
	result := ResultOk
	pattern := []rune(structure)
	j := 0

	for i, c := range word {
		for j < len(pattern) && pattern[j] == '=' {
			j++
		}
		if j >= len(pattern) {
			break
		}

		var captype rune
		switch {
		case chars.IsUpper(c):
			captype = 'i'
		case chars.IsLower(c):
			captype = 'p'
		default:
			captype = 'v'
		}

		if captype == 'p' && (pattern[j] == 'i' || pattern[j] == 'j') {
			if i == 0 {
				result = ResultCapitalizeFirst
			} else {
				result = ResultCapitalizationError
			}
		}
		if captype == 'i' && (pattern[j] == 'p' || pattern[j] == 'q') {
			result = ResultCapitalizationError
		}
		if result == ResultCapitalizationError {
			break
		}
		j++
	}
	return result
}
