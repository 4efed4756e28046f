package speller

import "github.com/louhiala/sanakko/internal/chars"

const maxWordChars = 255

// Options control how the top-level spell check evaluates words.
type Options struct {
	// IgnoreDot accepts a trailing dot on otherwise correct words.
	IgnoreDot bool
	// IgnoreNumbers accepts any word containing a digit.
	IgnoreNumbers bool
	// IgnoreUppercase accepts words written entirely in uppercase.
	IgnoreUppercase bool
	// IgnoreNonwords accepts URL and email patterns without checking.
	IgnoreNonwords bool
	// AcceptFirstUppercase accepts an uppercased first letter on words
	// whose analyses expect lowercase.
	AcceptFirstUppercase bool
	// AcceptAllUppercase spell checks all-uppercase words as lowercase
	// instead of requiring an exact capitalization match.
	AcceptAllUppercase bool
	// AcceptMissingHyphens retries failed words with hyphens added at
	// the start and end.
	AcceptMissingHyphens bool
}

// DefaultOptions returns the standard option values.
func DefaultOptions() Options {
	return Options{
		IgnoreNonwords:       true,
		AcceptFirstUppercase: true,
		AcceptAllUppercase:   true,
	}
}

// composition maps a base character plus a combining diacritical mark to
// the precomposed character.
var composition = map[[2]rune]rune{
	{'A', 0x0300}: 0x00C0,
	{'A', 0x0301}: 0x00C1,
	{'A', 0x0302}: 0x00C2,
	{'A', 0x0303}: 0x00C3,
	{'A', 0x0308}: 0x00C4,
	{'A', 0x030A}: 0x00C5,
	{'C', 0x0327}: 0x00C7,
	{'E', 0x0300}: 0x00C8,
	{'E', 0x0301}: 0x00C9,
	{'E', 0x0302}: 0x00CA,
	{'E', 0x0308}: 0x00CB,
	{'I', 0x0300}: 0x00CC,
	{'I', 0x0301}: 0x00CD,
	{'I', 0x0302}: 0x00CE,
	{'I', 0x0308}: 0x00CF,
	{'N', 0x0303}: 0x00D1,
	{'O', 0x0300}: 0x00D2,
	{'O', 0x0301}: 0x00D3,
	{'O', 0x0302}: 0x00D4,
	{'O', 0x0303}: 0x00D5,
	{'O', 0x0308}: 0x00D6,
	{'U', 0x0300}: 0x00D9,
	{'U', 0x0301}: 0x00DA,
	{'U', 0x0302}: 0x00DB,
	{'U', 0x0308}: 0x00DC,
	{'Y', 0x0301}: 0x00DD,
	{'a', 0x0300}: 0x00E0,
	{'a', 0x0301}: 0x00E1,
	{'a', 0x0302}: 0x00E2,
	{'a', 0x0303}: 0x00E3,
	{'a', 0x0308}: 0x00E4,
	{'a', 0x030A}: 0x00E5,
	{'c', 0x0327}: 0x00E7,
	{'e', 0x0300}: 0x00E8,
	{'e', 0x0301}: 0x00E9,
	{'e', 0x0302}: 0x00EA,
	{'e', 0x0308}: 0x00EB,
	{'i', 0x0300}: 0x00EC,
	{'i', 0x0301}: 0x00ED,
	{'i', 0x0302}: 0x00EE,
	{'i', 0x0308}: 0x00EF,
	{'n', 0x0303}: 0x00F1,
	{'o', 0x0300}: 0x00F2,
	{'o', 0x0301}: 0x00F3,
	{'o', 0x0302}: 0x00F4,
	{'o', 0x0303}: 0x00F5,
	{'o', 0x0308}: 0x00F6,
	{'u', 0x0300}: 0x00F9,
	{'u', 0x0301}: 0x00FA,
	{'u', 0x0302}: 0x00FB,
	{'u', 0x0308}: 0x00FC,
	{'y', 0x0301}: 0x00FD,
	{'y', 0x0308}: 0x00FF,
	{'S', 0x030C}: 0x0160,
	{'s', 0x030C}: 0x0161,
	{'Z', 0x030C}: 0x017D,
	{'z', 0x030C}: 0x017E,
	{0x0418, 0x0306}: 0x0419,
	{0x0438, 0x0306}: 0x0439,
	{0x0415, 0x0300}: 0x0400,
	{0x0435, 0x0300}: 0x0450,
	{0x0415, 0x0308}: 0x0401,
	{0x0435, 0x0308}: 0x0451,
	{0x0413, 0x0301}: 0x0403,
	{0x0433, 0x0301}: 0x0453,
	{0x041E, 0x0308}: 0x04E6,
	{0x043E, 0x0308}: 0x04E7,
}

// expansion maps a single character to its multi-character replacement.
var expansion = map[rune][]rune{
	0x2103: {0x00B0, 'C'},       // degree celsius
	0x2109: {0x00B0, 'F'},       // degree fahrenheit
	0xFB00: {'f', 'f'},          // ff ligature
	0xFB01: {'f', 'i'},          // fi ligature
	0xFB02: {'f', 'l'},          // fl ligature
	0xFB03: {'f', 'f', 'i'},     // ffi ligature
	0xFB04: {'f', 'f', 'l'},     // ffl ligature
}

// Normalize converts a word to the character repertoire the transducers
// expect. Combining diacritical marks are composed with their base
// character, typographic hyphens and apostrophes are mapped to their
// ASCII forms, and degree and ligature presentation forms are expanded.
// Composition takes priority over single-character substitution.
func Normalize(word []rune) []rune {
	result := make([]rune, 0, len(word))
	for i := 0; i < len(word); i++ {
		if i+1 < len(word) {
			if precomposed, ok := composition[[2]rune{word[i], word[i+1]}]; ok {
				result = append(result, precomposed)
				i++
				continue
			}
		}
		switch c := word[i]; c {
		case 0x2019: // right single quotation mark
			result = append(result, '\'')
		case 0x2010, 0x2011: // hyphen, non-breaking hyphen
			result = append(result, '-')
		default:
			if repl, ok := expansion[c]; ok {
				result = append(result, repl...)
			} else {
				result = append(result, c)
			}
		}
	}
	return result
}

// isNonword reports whether the word looks like a URL or email address.
func isNonword(word []rune) bool {
	nchars := len(word)
	if nchars < 4 {
		return false
	}

	// "//" followed by a later "."
	for i := 0; i < nchars-3; i++ {
		if word[i] == '/' {
			if word[i+1] == '/' && containsRune(word[i+2:], '.') {
				return true
			}
			break
		}
	}

	// "@" with a "." after it
	for i, c := range word {
		if c == '@' {
			if i > 0 && containsRune(word[i+1:], '.') {
				return true
			}
			break
		}
	}

	// "www." prefix with another "."
	if nchars >= 5 &&
		chars.Lower(word[0]) == 'w' &&
		chars.Lower(word[1]) == 'w' &&
		chars.Lower(word[2]) == 'w' &&
		word[3] == '.' &&
		containsRune(word[4:], '.') {
		return true
	}

	return false
}

func containsRune(word []rune, c rune) bool {
	for _, r := range word {
		if r == c {
			return true
		}
	}
	return false
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// hyphenAwareSpell retries a failed word with hyphens added at the start
// and/or end when acceptMissingHyphens is set.
func hyphenAwareSpell(sp Speller, word []rune, acceptMissingHyphens bool) Result {
	result := sp.Spell(word)
	if result != ResultFailed || !acceptMissingHyphens {
		return result
	}

	n := len(word)
	if n < 2 || (word[0] == '-' && word[n-1] == '-') {
		return ResultFailed
	}

	buffer := make([]rune, 0, n+2)
	if word[0] == '-' {
		buffer = append(buffer, word...)
		buffer = append(buffer, '-')
	} else {
		buffer = append(buffer, '-')
		buffer = append(buffer, word...)
		if word[n-1] != '-' {
			buffer = append(buffer, '-')
		}
	}
	return sp.Spell(buffer)
}

// cachedSpell consults the cache before calling the speller. A nil cache
// disables caching.
func cachedSpell(cache *Cache, sp Speller, word []rune, acceptMissingHyphens bool) Result {
	if cache == nil {
		return hyphenAwareSpell(sp, word, acceptMissingHyphens)
	}
	key := string(word)
	if result, ok := cache.Get(key); ok {
		return result
	}
	result := hyphenAwareSpell(sp, word, acceptMissingHyphens)
	cache.Put(key, result)
	return result
}

// Check is the top-level spell check entry point. It normalizes the word,
// applies option-based bypasses, detects the capitalization pattern,
// lowercases the word for transducer lookup, handles a trailing dot, and
// reports whether the word is acceptable.
func Check(word []rune, sp Speller, cache *Cache, options Options) bool {
	if len(word) == 0 {
		return false
	}
	if len(word) > maxWordChars {
		return false
	}

	nword := Normalize(word)
	nchars := len(nword)

	if options.IgnoreNumbers {
		for _, c := range nword {
			if isASCIIDigit(c) {
				return true
			}
		}
	}

	caps := chars.DetectCase(nword)

	if options.IgnoreUppercase && caps == chars.CaseAllUpper {
		return true
	}
	if options.IgnoreNonwords && isNonword(nword) {
		return true
	}
	if caps == chars.CaseAllUpper && !options.AcceptAllUppercase {
		caps = chars.CaseComplex
	}

	buffer := make([]rune, nchars)
	for i, c := range nword {
		buffer[i] = chars.Lower(c)
	}

	dotIndex := -1
	if options.IgnoreDot && buffer[nchars-1] == '.' {
		dotIndex = nchars - 1
	}
	realChars := nchars
	if dotIndex >= 0 {
		realChars = dotIndex
	}

	if caps == chars.CaseComplex || caps == chars.CaseNoLetters {
		// Exact capitalization check with only the first letter lowered.
		copy(buffer, nword)
		buffer[0] = chars.Lower(buffer[0])

		if acceptComplex(sp, buffer, nword, options) {
			return true
		}
		if dotIndex >= 0 {
			return acceptComplex(sp, buffer[:dotIndex], nword, options)
		}
		return false
	}

	result := cachedSpell(cache, sp, buffer[:realChars], options.AcceptMissingHyphens)
	if acceptSimple(result, caps, options) {
		return true
	}

	if dotIndex >= 0 {
		result = cachedSpell(cache, sp, buffer, options.AcceptMissingHyphens)
		return acceptSimple(result, caps, options)
	}
	return false
}

func acceptComplex(sp Speller, word []rune, nword []rune, options Options) bool {
	result := hyphenAwareSpell(sp, word, options.AcceptMissingHyphens)
	if result == ResultOk {
		return true
	}
	return result == ResultCapitalizeFirst &&
		options.AcceptFirstUppercase &&
		chars.IsUpper(nword[0])
}

func acceptSimple(result Result, caps chars.CaseType, options Options) bool {
	switch caps {
	case chars.CaseAllLower:
		return result == ResultOk
	case chars.CaseFirstUpper:
		return (result == ResultOk && options.AcceptFirstUppercase) ||
			result == ResultCapitalizeFirst
	case chars.CaseAllUpper:
		return result != ResultFailed
	}
	return false
}
