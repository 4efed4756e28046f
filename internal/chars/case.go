package chars

// CaseType classifies the capitalization pattern of a word.
type CaseType int

const (
	// CaseNoLetters means the word has no letters at all.
	CaseNoLetters CaseType = iota
	// CaseAllLower is "koira".
	CaseAllLower
	// CaseFirstUpper is "Koira".
	CaseFirstUpper
	// CaseComplex is mixed case like "koIra".
	CaseComplex
	// CaseAllUpper is "KOIRA".
	CaseAllUpper
)

// DetectCase scans word and returns its capitalization pattern.
// Non-letter characters are ignored.
func DetectCase(word []rune) CaseType {
	if len(word) == 0 {
		return CaseNoLetters
	}
	firstUC := false
	restLC := true
	allUC := true
	noLetters := true

	if IsUpper(word[0]) {
		firstUC = true
		noLetters = false
	}
	if IsLower(word[0]) {
		allUC = false
		noLetters = false
	}
	for _, c := range word[1:] {
		if IsUpper(c) {
			noLetters = false
			restLC = false
		}
		if IsLower(c) {
			allUC = false
			noLetters = false
		}
	}

	switch {
	case noLetters:
		return CaseNoLetters
	case allUC:
		return CaseAllUpper
	case !restLC:
		return CaseComplex
	case firstUC:
		return CaseFirstUpper
	}
	return CaseAllLower
}

// SetCase rewrites word in place to match the given pattern.
// CaseNoLetters and CaseComplex leave the word untouched.
func SetCase(word []rune, ct CaseType) {
	if len(word) == 0 {
		return
	}
	switch ct {
	case CaseAllLower:
		for i, c := range word {
			word[i] = Lower(c)
		}
	case CaseAllUpper:
		for i, c := range word {
			word[i] = Upper(c)
		}
	case CaseFirstUpper:
		word[0] = Upper(word[0])
		for i, c := range word[1:] {
			word[i+1] = Lower(c)
		}
	}
}
