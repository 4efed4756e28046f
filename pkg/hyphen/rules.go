package hyphen

import "github.com/louhiala/sanakko/internal/chars"

// Consonant clusters that must not be split. A break inside one is moved
// to the front of the whole cluster.
var longConsonants = [][]rune{
	[]rune("štš"), // štš
	[]rune("shtsh"),
	[]rune("tsh"),
	[]rune("tš"), // tš
	[]rune("zh"),
}

// Vowel pairs that belong to different syllables and may be split.
var splitVowels = map[[2]rune]bool{
	{'a', 'e'}: true,
	{'a', 'o'}: true,
	{'e', 'a'}: true,
	{'e', 'o'}: true,
	{'i', 'a'}: true,
	{'i', 'o'}: true,
	{'o', 'a'}: true,
	{'o', 'e'}: true,
	{'u', 'a'}: true,
	{'u', 'e'}: true,
	{'y', 'e'}: true,
	{'e', 'ä'}: true,
	{'e', 'ö'}: true,
	{'i', 'ä'}: true,
	{'i', 'ö'}: true,
	{'y', 'ä'}: true,
	{'ä', 'e'}: true,
	{'ö', 'e'}: true,
}

// Vowel pairs after which a third vowel may still be split off.
var splitAfter = [][2]rune{{'i', 'e'}, {'a', 'i'}}

// Characters that block a break directly after them.
const specialCharsBeforeHyphen = "/.:&%'"

func isSpecialBeforeHyphen(c rune) bool {
	for _, s := range specialCharsBeforeHyphen {
		if c == s {
			return true
		}
	}
	return false
}

// allowRuleHyphenation reports whether a segment is safe for rule-based
// hyphenation. URLs, emails and digit-final words are skipped unless ugly
// hyphenation is on.
func allowRuleHyphenation(word []rune, nchars int, ugly bool) bool {
	if nchars <= 1 {
		return false
	}
	if !ugly {
		if looksLikeNonword(word, nchars) {
			return false
		}
		last := word[nchars-1]
		if last >= '0' && last <= '9' {
			return false
		}
	}
	return true
}

func looksLikeNonword(word []rune, nchars int) bool {
	if nchars < 4 {
		return false
	}

	for i := 0; i < nchars-3; i++ {
		if word[i] == '/' {
			if word[i+1] == '/' && runesContain(word[i+2:nchars], '.') {
				return true
			}
			break
		}
	}

	for i := 0; i < nchars-3; i++ {
		if word[i] == '@' {
			if word[i+1] != '.' && runesContain(word[i+2:nchars], '.') {
				return true
			}
			break
		}
	}

	if nchars >= 7 &&
		word[0] == 'w' && word[1] == 'w' && word[2] == 'w' && word[3] == '.' &&
		word[4] != '.' && runesContain(word[5:nchars], '.') {
		return true
	}

	return false
}

func runesContain(word []rune, c rune) bool {
	for _, r := range word {
		if r == c {
			return true
		}
	}
	return false
}

// ruleHyphenation applies the Finnish syllable rules to a single compound
// component, writing break markers into points.
func ruleHyphenation(word []rune, points []byte, nchars int, ugly bool) {
	if !allowRuleHyphenation(word, nchars, ugly) {
		return
	}
	if points[0] == 'X' {
		return
	}

	lower := make([]rune, nchars)
	for i := 0; i < nchars; i++ {
		lower[i] = chars.Lower(word[i])
	}

	// Break before a consonant followed by a vowel.
	i := 0
	for i < nchars && chars.IsConsonant(lower[i]) {
		i++
	}
	for ; i <= nchars-2; i++ {
		if chars.IsConsonant(lower[i]) && chars.IsVowel(lower[i+1]) &&
			i >= 1 && !isSpecialBeforeHyphen(lower[i-1]) &&
			(i <= 1 || ugly || lower[i-2] != '\'') {
			points[i] = '-'
		}
	}

	// An apostrophe before a vowel acts as a compound break.
	for i := 1; i < nchars-1; i++ {
		if lower[i] == '\'' && chars.IsVowel(lower[i+1]) {
			points[i] = '='
		}
	}

	// Split vowels away from a long vowel on either side.
	for i := 1; i < nchars-1; i++ {
		if chars.IsVowel(lower[i]) && lower[i] == lower[i+1] {
			if chars.IsVowel(lower[i-1]) && isGoodHyphenPosition(lower, points, i, nchars) {
				points[i] = '-'
			}
			if i+2 < nchars && isGoodHyphenPosition(lower, points, i+2, nchars) {
				points[i+2] = '-'
			}
		}
	}

	// Split syllable-breaking vowel pairs.
	for i := 0; i < nchars-1; i++ {
		if points[i+1] != ' ' {
			continue
		}
		if !chars.IsVowel(lower[i]) || !chars.IsVowel(lower[i+1]) {
			continue
		}
		if splitVowels[[2]rune{lower[i], lower[i+1]}] {
			points[i+1] = '-'
		}
	}

	// Move any break out of an indivisible consonant cluster.
	for i := 1; i < nchars-1; i++ {
		for _, cluster := range longConsonants {
			clen := len(cluster)
			if i+clen > nchars || !runesEqual(lower[i:i+clen], cluster) {
				continue
			}
			end := i + clen
			if end > nchars-1 {
				end = nchars - 1
			}
			for k := i + 1; k <= end; k++ {
				if points[k] == '-' {
					points[k] = ' '
					points[i] = '-'
				}
			}
		}
	}

	if !ugly {
		// Suppress single-character syllables at the edges and breaks
		// between consecutive vowels.
		points[1] = ' '
		points[nchars-1] = ' '
		for i := 0; i < nchars-1; i++ {
			if chars.IsVowel(lower[i]) && chars.IsVowel(lower[i+1]) {
				points[i+1] = ' '
			}
		}
	} else if nchars >= 3 {
		// A vowel after "ie" or "ai" starts a new syllable.
		for i := 0; i < nchars-3; i++ {
			for _, pair := range splitAfter {
				if points[i+1] != '-' &&
					lower[i] == pair[0] && lower[i+1] == pair[1] &&
					chars.IsVowel(lower[i+2]) &&
					isGoodHyphenPosition(lower, points, i+2, nchars) {
					points[i+2] = '-'
				}
			}
		}
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isGoodHyphenPosition requires a vowel in the syllable on each side of
// the proposed break.
func isGoodHyphenPosition(word []rune, points []byte, pos, nchars int) bool {
	if pos == 0 || pos+1 >= nchars {
		return false
	}

	hasVowel := false
	for i := pos - 1; ; i-- {
		if points[i] == '-' || points[i] == '=' {
			break
		}
		if i == 0 {
			break
		}
		if chars.IsVowel(word[i]) {
			hasVowel = true
		}
	}
	if !hasVowel {
		return false
	}

	hasVowel = false
	for i := pos; i < nchars; i++ {
		if points[i] == '-' || points[i] == '=' {
			break
		}
		if word[i] == '.' {
			break
		}
		if chars.IsVowel(word[i]) {
			hasVowel = true
		}
	}
	return hasVowel
}
