package morph

import (
	"github.com/louhiala/sanakko/internal/chars"
)

// MaxAnalyses caps the number of analyses collected per word.
const MaxAnalyses = 100

// maxWordChars is the longest input word the analyzers accept.
const maxWordChars = 255

// Attribute value tables mapping short transducer tag codes to Finnish
// morphological terms.
var classNames = map[string]string{
	"n":  "nimisana",
	"l":  "laatusana",
	"nl": "nimisana_laatusana",
	"h":  "huudahdussana",
	"ee": "etunimi",
	"es": "sukunimi",
	"ep": "paikannimi",
	"em": "nimi",
	"t":  "teonsana",
	"a":  "lyhenne",
	"s":  "seikkasana",
	"u":  "lukusana",
	"ur": "lukusana",
	"r":  "asemosana",
	"c":  "sidesana",
	"d":  "suhdesana",
	"k":  "kieltosana",
	"p":  "etuliite",
}

var sijamuotoNames = map[string]string{
	"n":   "nimento",
	"g":   "omanto",
	"p":   "osanto",
	"es":  "olento",
	"tr":  "tulento",
	"ine": "sisaolento",
	"ela": "sisaeronto",
	"ill": "sisatulento",
	"ade": "ulkoolento",
	"abl": "ulkoeronto",
	"all": "ulkotulento",
	"ab":  "vajanto",
	"ko":  "seuranto",
	"in":  "keinonto",
	"sti": "kerrontosti",
	"ak":  "kohdanto",
}

var comparisonNames = map[string]string{
	"c": "comparative",
	"s": "superlative",
}

var moodNames = map[string]string{
	"n1": "A-infinitive",
	"n2": "E-infinitive",
	"n3": "MA-infinitive",
	"n4": "MINEN-infinitive",
	"n5": "MAINEN-infinitive",
	"t":  "indicative",
	"e":  "conditional",
	"k":  "imperative",
	"m":  "potential",
}

var numberNames = map[string]string{
	"y": "singular",
	"m": "plural",
}

var personNames = map[string]string{
	"1": "1",
	"2": "2",
	"3": "3",
	"4": "4",
}

var tenseNames = map[string]string{
	"p": "present_simple",
	"i": "past_imperfective",
}

var focusNames = map[string]string{
	"kin":  "kin",
	"kaan": "kaan",
}

var possessiveNames = map[string]string{
	"1y": "1s",
	"2y": "2s",
	"1m": "1p",
	"2m": "2p",
	"3":  "3",
}

var negativeNames = map[string]string{
	"t": "true",
	"f": "false",
	"b": "both",
}

var participleNames = map[string]string{
	"v": "present_active",
	"a": "present_passive",
	"u": "past_active",
	"t": "past_passive",
	"m": "agent",
	"e": "negation",
}

// startsWith reports whether s[offset:] begins with pattern.
func startsWith(s []rune, offset int, pattern string) bool {
	if offset < 0 || offset >= len(s) {
		return false
	}
	rest := s[offset:]
	i := 0
	for _, pc := range pattern {
		if i >= len(rest) || rest[i] != pc {
			return false
		}
		i++
	}
	return true
}

// tagCode extracts the code between "[x" and "]", given the positions of the
// opening bracket and the closing bracket.
func tagCode(s []rune, tagStart, tagEnd int) string {
	return string(s[tagStart+2 : tagEnd])
}

// parseStructure builds the STRUCTURE attribute string from transducer
// output. Each position encodes the expected letter case of the
// corresponding input character:
//
//	=  compound boundary (skipped during case checking)
//	i  uppercase expected (j for abbreviations)
//	p  lowercase expected (q for abbreviations)
//	-  literal hyphen
//	:  literal colon
//
// wlen is the length of the original input word.
func parseStructure(fstOutput []rune, wlen int) string {
	outputLen := len(fstOutput)
	structure := make([]rune, 0, wlen*2+1)
	structure = append(structure, '=')

	charsMissing := wlen
	charsSeen := 0
	charsFromDefault := 0
	defaultTitleCase := false
	isAbbr := false

	for i := 0; i < outputLen; i++ {
		if fstOutput[i] == '[' && i+2 < outputLen {
			switch {
			case i+3 < outputLen && fstOutput[i+1] == 'B' && fstOutput[i+2] != 'h' && fstOutput[i+3] == ']':
				if i == 1 {
					structure = append(structure, '=')
				}
				if charsSeen > charsFromDefault {
					structure = createDefaultStructure(charsSeen-charsFromDefault, &defaultTitleCase, structure, isAbbr)
					decreaseCharsMissing(&charsMissing, charsSeen, charsFromDefault)
				}
				if i != 1 && i+5 < outputLen && len(structure) > 0 && structure[len(structure)-1] != '=' {
					structure = append(structure, '=')
				}
				i += 3
				charsSeen = 0
				charsFromDefault = 0
			case i+3 < outputLen && fstOutput[i+1] == 'X' && fstOutput[i+3] == ']':
				if fstOutput[i+2] == 'r' {
					// [Xr]...[X] carries an explicit structure override.
					defaultTitleCase = false
					i += 4
					for i < outputLen && fstOutput[i] != '[' && charsMissing > 0 {
						structure = append(structure, fstOutput[i])
						if fstOutput[i] != '=' {
							charsFromDefault++
							if fstOutput[i] != '-' {
								charsMissing--
							}
						}
						i++
					}
					i += 2
				} else {
					// [Xp], [Xs] and [Xj] content does not correspond to
					// input characters.
					i += 4
					for i < outputLen && fstOutput[i] != '[' {
						i++
					}
					i += 2
				}
			case i+3 < outputLen && fstOutput[i+1] == 'L':
				if fstOutput[i+2] == 'e' {
					defaultTitleCase = true
					isAbbr = false
					i += 4
				} else if fstOutput[i+2] == 'n' && fstOutput[i+3] == 'l' {
					isAbbr = false
					i += 4
				} else if fstOutput[i+2] == 'a' {
					isAbbr = true
					i += 3
				} else if fstOutput[i+2] == 'u' && i+5 < outputLen &&
					(fstOutput[i+3] == 'r' || isASCIIDigit(fstOutput[i+4])) {
					isAbbr = true
					i += 3
					if i < outputLen && fstOutput[i] == 'r' {
						i++
					}
				} else {
					isAbbr = false
					i += 3
				}
			default:
				for i < outputLen && fstOutput[i] != ']' {
					i++
				}
			}
		} else if fstOutput[i] == '-' {
			if charsSeen > charsFromDefault {
				structure = createDefaultStructure(charsSeen-charsFromDefault, &defaultTitleCase, structure, isAbbr)
				decreaseCharsMissing(&charsMissing, charsSeen, charsFromDefault)
				structure = append(structure, '-')
				charsSeen = 0
				charsFromDefault = 0
			} else if i != 0 {
				if charsSeen == charsFromDefault {
					structure = append(structure, '-')
				} else {
					charsSeen++
				}
			}
			if charsMissing > 0 {
				charsMissing--
			}
			if len(structure) == 1 {
				structure[0] = '-'
			}
		} else if fstOutput[i] == ':' {
			if isAbbr {
				if charsSeen > charsFromDefault {
					structure = createDefaultStructure(charsSeen-charsFromDefault, &defaultTitleCase, structure, isAbbr)
					decreaseCharsMissing(&charsMissing, charsSeen, charsFromDefault)
					charsSeen = 0
					charsFromDefault = 0
				}
				isAbbr = false
			}
			structure = append(structure, ':')
			if charsMissing > 0 {
				charsMissing--
			}
		} else {
			charsSeen++
		}
	}

	structure = createDefaultStructure(charsMissing, &defaultTitleCase, structure, isAbbr)
	return string(structure)
}

func createDefaultStructure(count int, defaultTitleCase *bool, structure []rune, isAbbr bool) []rune {
	for n := 0; n < count; n++ {
		if *defaultTitleCase {
			if isAbbr {
				structure = append(structure, 'j')
			} else {
				structure = append(structure, 'i')
			}
			*defaultTitleCase = false
		} else {
			if isAbbr {
				structure = append(structure, 'q')
			} else {
				structure = append(structure, 'p')
			}
		}
	}
	return structure
}

func decreaseCharsMissing(charsMissing *int, charsSeen, charsFromDefault int) {
	consumed := charsSeen - charsFromDefault
	if consumed < 0 {
		consumed = 0
	}
	if consumed <= *charsMissing {
		*charsMissing -= consumed
	} else {
		// Lexicon error, the transducer output does not match the input.
		*charsMissing = 0
	}
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isValidAnalysis validates compound word structure in transducer output.
// Hyphens must appear exactly where required at compound boundaries: the
// same vowel on both sides of a boundary requires one, as does a digit
// before the boundary. Analyses where a proper noun starts a compound that
// ends with a plain noun are rejected.
func isValidAnalysis(fstOutput []rune) bool {
	n := len(fstOutput)
	var beforeLastChar, lastChar rune
	boundaryPassed := false
	hyphenPresent := false
	hyphenUnconditionallyAllowed := false
	hyphenUnconditionallyAllowedJustSet := false
	hyphenRequired := false
	requiredHyphenMissing := false
	startsWithProperNoun := false
	endsWithNonIcaNoun := false

	for i := 0; i < n; i++ {
		if fstOutput[i] == '[' {
			if i+2 >= n {
				return false
			}
			if i+3 < n {
				if fstOutput[i+1] == 'I' {
					if startsWith(fstOutput, i+2, "sf") {
						hyphenUnconditionallyAllowed = true
						hyphenUnconditionallyAllowedJustSet = true
					} else if startsWith(fstOutput, i+2, "cu") {
						boundaryPassed = false
						hyphenUnconditionallyAllowed = true
						hyphenRequired = true
					} else if startsWith(fstOutput, i+2, "ca") {
						requiredHyphenMissing = false
						endsWithNonIcaNoun = false
					}
				} else if fstOutput[i+1] == 'L' {
					if fstOutput[i+2] == 'e' {
						startsWithProperNoun = true
						endsWithNonIcaNoun = false
					} else if fstOutput[i+2] == 'n' {
						endsWithNonIcaNoun = true
					}
				} else if startsWith(fstOutput, i+1, "Dg") {
					startsWithProperNoun = false
				}
			}

			if fstOutput[i+1] == 'X' {
				for i+3 < n {
					i++
					if fstOutput[i] == '[' && fstOutput[i+1] == 'X' && fstOutput[i+2] == ']' {
						i += 2
						break
					}
				}
			} else if startsWith(fstOutput, i+1, "Bh") {
				i += 3
				boundaryPassed = true
				hyphenPresent = false
				if requiredHyphenMissing {
					return false
				}
				if hyphenRequired {
					requiredHyphenMissing = true
				}
			} else {
				i++
				for i < n && fstOutput[i] != ']' {
					i++
				}
			}
		} else if fstOutput[i] == '-' {
			startsWithProperNoun = false
			endsWithNonIcaNoun = false
			if i+5 < n && startsWith(fstOutput, i+1, "[Bh]") {
				boundaryPassed = true
				hyphenPresent = true
				i += 4
			}
		} else {
			if boundaryPassed {
				if lastChar == 0 || (beforeLastChar == 'i' && lastChar == 's') {
					hyphenUnconditionallyAllowed = true
				}
				if hyphenRequired && hyphenPresent {
					hyphenRequired = false
				}
				if !(hyphenUnconditionallyAllowed && hyphenPresent) {
					lastChar = chars.Lower(lastChar)
					lcNext := chars.Lower(fstOutput[i])
					needHyphen := (lastChar == lcNext && chars.IsVowel(lastChar)) || isASCIIDigit(lastChar)
					if needHyphen != hyphenPresent {
						return false
					}
				}
				boundaryPassed = false
				if hyphenUnconditionallyAllowedJustSet {
					hyphenUnconditionallyAllowedJustSet = false
				} else {
					hyphenUnconditionallyAllowed = false
				}
			}
			beforeLastChar = lastChar
			lastChar = fstOutput[i]
		}
	}

	return !requiredHyphenMissing && (!startsWithProperNoun || !endsWithNonIcaNoun)
}

// parseBaseform extracts the base form of a word from transducer output,
// using [Xp]...[X] markers ([Xj]...[X] for joined forms). The STRUCTURE
// string decides capitalization. Numerals and compound place names with
// [De] derivation get special handling. Returns "" when no base form can
// be produced.
func parseBaseform(fstOutput, structure []rune) string {
	fstLen := len(fstOutput)
	structureLen := len(structure)
	baseform := make([]rune, 0, fstLen+1)
	latestXpStartInFst := 0
	latestXpStartInBaseform := 0
	hyphensInLatestXp := 0
	structurePos := 0
	isInXp := false
	isInXr := false
	isInTag := false
	ignoreNextDe := false
	isDe := false
	classTagSeen := false

	for i := 0; i < fstLen; i++ {
		if fstOutput[i] == '[' {
			if i+2 >= fstLen {
				return ""
			}
			if fstOutput[i+1] == 'X' {
				if fstOutput[i+2] == ']' {
					isInXp = false
					isInXr = false
					i += 2
				} else if i+6 < fstLen && fstOutput[i+3] == ']' {
					switch fstOutput[i+2] {
					case 'p', 'j':
						i += 3
						isInXp = true
						latestXpStartInFst = i + 1
						latestXpStartInBaseform = len(baseform)
						hyphensInLatestXp = 0
					default:
						i += 3
						isInXr = true
					}
				}
			} else if !classTagSeen && i+6 < fstLen && startsWith(fstOutput, i+1, "Lu]") {
				i += 3
				classTagSeen = true
				if bf, ok := parseNumeralBaseform(fstOutput[i+1:], baseform); ok {
					return bf
				}
			} else if startsWith(fstOutput, i+1, "De]") {
				isDe = !ignoreNextDe
				i += 3
			} else {
				if fstOutput[i+1] == 'L' {
					classTagSeen = true
					isDe = false
					ignoreNextDe = i+3 >= fstLen ||
						(fstOutput[i+2] != 'l' && !startsWith(fstOutput, i+2, "nl"))
				}
				isInTag = true
			}
		} else if isInXr {
			// skip
		} else if isInTag {
			if fstOutput[i] == ']' {
				isInTag = false
			}
		} else if isInXp {
			if fstOutput[i] == '-' {
				hyphensInLatestXp++
			}
		} else {
			nextChar := fstOutput[i]

			if nextChar == '-' {
				if hyphensInLatestXp > 0 {
					hyphensInLatestXp--
				} else {
					// Compound place names such as "Isolla-Britannialla"
					// take their base form from the latest [Xp] block.
					if isDe && latestXpStartInFst != 0 &&
						!(i >= 2 && fstOutput[i-2] == 'i' && fstOutput[i-1] == 's') {
						for j := i; j+4 < fstLen; j++ {
							if startsWith(fstOutput, j, "[Lep]") {
								baseform = baseform[:latestXpStartInBaseform]
								first := true
								for k := latestXpStartInFst; k < fstLen && fstOutput[k] != '['; k++ {
									if fstOutput[k] != '=' {
										if first {
											baseform = append(baseform, chars.Upper(fstOutput[k]))
											first = false
										} else {
											baseform = append(baseform, fstOutput[k])
										}
									}
								}
								break
							}
						}
					}
					latestXpStartInFst = 0
				}
				isDe = false
			}

			for structurePos < structureLen {
				patternChar := structure[structurePos]
				structurePos++
				if patternChar != '=' {
					if patternChar == 'i' || patternChar == 'j' {
						nextChar = chars.Upper(nextChar)
					}
					break
				}
			}
			baseform = append(baseform, nextChar)
		}
	}

	if latestXpStartInFst != 0 {
		baseform = baseform[:latestXpStartInBaseform]
		for k := latestXpStartInFst; k < fstLen && fstOutput[k] != '['; k++ {
			if fstOutput[k] != '=' {
				baseform = append(baseform, fstOutput[k])
			}
		}
	}

	if len(baseform) == 0 {
		return ""
	}
	return string(baseform)
}

// parseNumeralBaseform handles base forms for numerals. The second return
// value is false when the standard algorithm should be used instead.
func parseNumeralBaseform(fstOutput, prefix []rune) (string, bool) {
	fstLen := len(fstOutput)
	baseform := make([]rune, len(prefix), len(prefix)+fstLen)
	copy(baseform, prefix)
	isInXp := false
	isInXr := false
	isInTag := false
	isInDigitSequence := false
	xpPassed := false

	for i := 0; i < fstLen; i++ {
		if i == 0 && (isASCIIDigit(fstOutput[i]) || fstOutput[i] == '-') {
			isInDigitSequence = true
		}
		if fstOutput[i] == '[' {
			if isInDigitSequence {
				isInDigitSequence = false
				xpPassed = true
			}
			if i+2 >= fstLen {
				return "", false
			}
			if i+6 < fstLen && (startsWith(fstOutput, i, "[Xp]") || startsWith(fstOutput, i, "[Xj]")) {
				i += 3
				isInXp = true
			} else if i+6 < fstLen && startsWith(fstOutput, i, "[Xr]") {
				i += 3
				isInXr = true
			} else if i+4 == fstLen && startsWith(fstOutput, i, "[Bc]") {
				// An incomplete numeral is really a prefix.
				return "", false
			} else if i+6 < fstLen && startsWith(fstOutput, i, "[Bc]") {
				i += 3
				xpPassed = false
			} else if i+6 < fstLen &&
				(startsWith(fstOutput, i, "[Ln]") || startsWith(fstOutput, i, "[Ll]") || startsWith(fstOutput, i, "[Lnl]")) {
				// Give up and return to the standard algorithm.
				return "", false
			} else if startsWith(fstOutput, i, "[X]") {
				if isInXp {
					isInXp = false
					xpPassed = true
				}
				isInXr = false
				i += 2
			} else {
				isInTag = true
			}
		} else if isInXr {
			// skip
		} else if isInTag {
			if fstOutput[i] == ']' {
				isInTag = false
			}
		} else if isInXp || isInDigitSequence || !xpPassed || fstOutput[i] == '-' {
			baseform = append(baseform, fstOutput[i])
		}
	}

	return string(baseform), true
}

// basicAttributes holds the attribute values found by a backward tag scan.
// Empty strings mean the attribute was not present.
type basicAttributes struct {
	class                    string
	sijamuoto                string
	number                   string
	person                   string
	mood                     string
	tense                    string
	focus                    string
	possessive               string
	negative                 string
	comparison               string
	participle               string
	kysymysliite             bool
	requireFollowingVerb     string
	malagaVapaaJalkiosa      bool
	possibleGeographicalName bool
}

// parseBasicAttributes scans tags backwards so that the last tag for each
// attribute category wins, since suffixes determine the final inflection.
func parseBasicAttributes(fstOutput []rune) basicAttributes {
	fstLen := len(fstOutput)
	var attrs basicAttributes
	convertNimiLaatusanaToLaatusana := false
	bcPassed := false
	classSet := false

	if fstLen < 3 {
		return attrs
	}

	for i := fstLen - 1; i >= 2; {
		if fstOutput[i] == ']' {
			j := i
			for j >= 1 {
				j--
				if fstOutput[j] == '[' {
					tagChar := fstOutput[j+1]
					code := tagCode(fstOutput, j, i)

					switch tagChar {
					case 'L':
						if !classSet || fstOutput[j+2] == ']' {
							if code == "nl" {
								if convertNimiLaatusanaToLaatusana ||
									attrs.comparison == "comparative" || attrs.comparison == "superlative" ||
									(fstLen >= 4 && startsWith(fstOutput, 0, "[Lu]")) {
									attrs.class = "laatusana"
								} else {
									attrs.class = "nimisana_laatusana"
								}
							} else if cls, ok := classNames[code]; ok {
								attrs.class = cls
							}
							classSet = true
						}
					case 'N':
						// NUMBER is not applicable to prefixes and adverbs.
						if attrs.number == "" && attrs.class != "etuliite" && attrs.class != "seikkasana" {
							attrs.number = numberNames[code]
						}
					case 'P':
						if attrs.person == "" {
							attrs.person = personNames[code]
						}
					case 'S':
						if attrs.sijamuoto == "" && attrs.class != "etuliite" && attrs.class != "seikkasana" {
							attrs.sijamuoto = sijamuotoNames[code]
							if code == "sti" {
								convertNimiLaatusanaToLaatusana = true
							}
						}
					case 'T':
						if attrs.class == "" && attrs.mood == "" {
							attrs.mood = moodNames[code]
						}
					case 'A':
						if attrs.tense == "" {
							attrs.tense = tenseNames[code]
						}
					case 'F':
						if code == "ko" {
							attrs.kysymysliite = true
						} else if attrs.focus == "" {
							attrs.focus = focusNames[code]
						}
					case 'O':
						if attrs.possessive == "" {
							attrs.possessive = possessiveNames[code]
						}
					case 'C':
						if attrs.class == "" && attrs.comparison == "" {
							attrs.comparison = comparisonNames[code]
						}
					case 'E':
						if attrs.negative == "" {
							attrs.negative = negativeNames[code]
						}
					case 'R':
						if !bcPassed && attrs.participle == "" {
							skip := attrs.class != "" && attrs.class != "laatusana" &&
								!startsWith(fstOutput, fstLen-4, "[Ln]")
							if !skip {
								attrs.participle = participleNames[code]
							}
						}
					case 'I':
						addInfoFlag(&attrs, code, fstOutput, j)
					case 'B':
						if j >= 5 && fstOutput[j+2] == 'c' {
							if !classSet && attrs.class == "" &&
								(fstOutput[j-1] == '-' || startsWith(fstOutput, j-5, "-[Bh]")) {
								attrs.class = "etuliite"
								classSet = true
							}
							bcPassed = true
						}
					}
					break
				}
			}
			if j < 3 {
				return attrs
			}
			i = j
		}
		if i == 0 {
			break
		}
		i--
	}

	return attrs
}

// addInfoFlag processes [Ix] info tags at the given tag position.
func addInfoFlag(attrs *basicAttributes, code string, fstOutput []rune, tagPos int) {
	switch code {
	case "vj":
		if len(fstOutput) > 0 && fstOutput[0] != '-' {
			attrs.malagaVapaaJalkiosa = true
		}
	case "ca":
		// A geographical name candidate must not be followed by another
		// compound part or an adjective; only the suffix matters.
		suffix := fstOutput[tagPos:]
		hasBc := containsTag(suffix, "[Bc]")
		hasLl := containsTag(suffix, "[Ll]")
		if !hasBc && !hasLl && (attrs.class == "" || attrs.class == "nimisana") {
			attrs.possibleGeographicalName = true
		}
	case "ra":
		if !dominatedByInfinitive(attrs.mood) && (attrs.class == "" || attrs.class == "teonsana") {
			attrs.requireFollowingVerb = "A-infinitive"
		}
	case "rm":
		if !dominatedByInfinitive(attrs.mood) && (attrs.class == "" || attrs.class == "teonsana") {
			attrs.requireFollowingVerb = "MA-infinitive"
		}
	}
}

func dominatedByInfinitive(mood string) bool {
	return mood == "E-infinitive" || mood == "MINEN-infinitive" || mood == "MA-infinitive"
}

func containsTag(s []rune, tag string) bool {
	for i := 0; i+len(tag) <= len(s); i++ {
		if startsWith(s, i, tag) {
			return true
		}
	}
	return false
}

// debugAttributes holds the WORDBASES and WORDIDS attribute values.
type debugAttributes struct {
	wordbases string
	wordids   string
	hasIds    bool
}

// parseDebugAttributes decomposes compound words into their constituent
// parts, using [Xs]...[X] for word identifiers and [Xp]...[X] or
// [Xj]...[X] for base forms.
func parseDebugAttributes(fstOutput []rune) debugAttributes {
	fstLen := len(fstOutput)
	wordIds := make([]rune, 0, 2*fstLen+1)
	wordBases := make([]rune, 0, 2*fstLen+1)
	xsBuffer := make([]rune, 0, fstLen)
	xpBuffer := make([]rune, 0, fstLen)
	idPosLast := 0
	basePosLast := 0
	inXs := false
	inXp := false
	inXj := false
	inXOther := false
	inContent := false
	inTag := false
	anyXs := false

	for i := 0; i < fstLen; i++ {
		if startsWith(fstOutput, i, "[L") || startsWith(fstOutput, i, "-[B") {
			inContent = false
			inTag = true
			wordIds, wordBases, xsBuffer, xpBuffer = debugContentEnd(wordIds, wordBases, xsBuffer, xpBuffer)
			if fstOutput[i] == '-' {
				wordIds = append(wordIds, '+', '-')
				wordBases = append(wordBases, '+', '-')
				i++
			}
		} else if fstOutput[i] == '[' && i+2 < fstLen {
			if fstOutput[i+1] == 'X' {
				switch fstOutput[i+2] {
				case 's':
					inXs = true
					anyXs = true
					xsBuffer = xsBuffer[:0]
					i += 3
				case 'p':
					inXp = true
					xpBuffer = xpBuffer[:0]
					i += 3
				case 'j':
					if inContent {
						wordIds, wordBases, xsBuffer, xpBuffer = debugContentEnd(wordIds, wordBases, xsBuffer, xpBuffer)
						idPosLast = len(wordIds)
						basePosLast = len(wordBases)
					}
					inXj = true
					xpBuffer = xpBuffer[:0]
					i += 3
				case ']':
					inXs = false
					inXp = false
					inXj = false
					inXOther = false
					i += 2
				default:
					inXOther = true
					i += 3
				}
			} else {
				inTag = true
			}
		} else if fstOutput[i] == ']' {
			inTag = false
		} else if inTag || inXOther {
			// skip
		} else if inXs {
			xsBuffer = append(xsBuffer, fstOutput[i])
		} else if inXp {
			xpBuffer = append(xpBuffer, fstOutput[i])
		} else if inXj {
			if len(xpBuffer) == 0 {
				xpBuffer = append(xpBuffer, '+')
			}
			xpBuffer = append(xpBuffer, fstOutput[i])
		} else {
			if !inContent {
				wordIds = append(wordIds, '+')
				wordBases = append(wordBases, '+')
				idPosLast = len(wordIds)
				basePosLast = len(wordBases)
				inContent = true
			}
			wordIds = append(wordIds, fstOutput[i])
			wordBases = append(wordBases, fstOutput[i])
		}
	}

	if len(xpBuffer) > 0 {
		wordBases = wordBases[:basePosLast]
		wordIds = wordIds[:idPosLast]
		if len(wordBases) > 0 && xpBuffer[0] == '+' && wordBases[len(wordBases)-1] == '+' {
			wordBases = wordBases[:len(wordBases)-1]
			wordIds = wordIds[:len(wordIds)-1]
		}
		for _, c := range xpBuffer {
			if c != '=' {
				wordBases = append(wordBases, c)
				wordIds = append(wordIds, c)
			}
		}
		wordBases = append(wordBases, '(')
		wordBases = append(wordBases, xpBuffer...)
		wordBases = append(wordBases, ')')
	}
	if len(xsBuffer) > 0 {
		wordIds = append(wordIds, '(', 'w')
		wordIds = append(wordIds, xsBuffer...)
		wordIds = append(wordIds, ')')
	}

	return debugAttributes{
		wordbases: string(wordBases),
		wordids:   string(wordIds),
		hasIds:    anyXs,
	}
}

// debugContentEnd flushes the pending xs/xp buffers into wordIds and
// wordBases.
func debugContentEnd(wordIds, wordBases, xsBuffer, xpBuffer []rune) ([]rune, []rune, []rune, []rune) {
	if len(xsBuffer) > 0 {
		wordIds = append(wordIds, '(', 'w')
		wordIds = append(wordIds, xsBuffer...)
		wordIds = append(wordIds, ')')
		xsBuffer = xsBuffer[:0]
	}
	if len(xpBuffer) > 0 {
		wordBases = append(wordBases, '(')
		wordBases = append(wordBases, xpBuffer...)
		wordBases = append(wordBases, ')')
		xpBuffer = xpBuffer[:0]
	}
	return wordIds, wordBases, xsBuffer, xpBuffer
}

// fixStructure adjusts the STRUCTURE string for derivation tags. [Dg]
// forces lowercase on the part it applies to, [De] forces uppercase after
// a hyphen when the derivation ends in a place name.
func fixStructure(structure, fstOutput []rune) {
	fstLen := len(fstOutput)
	isDe := false
	hyphenCount := 0

	for j := 0; j < fstLen; j++ {
		if j+3 < fstLen && fstOutput[j] == '[' {
			if fstOutput[j+1] == 'D' {
				if fstOutput[j+2] == 'g' {
					hyphensInStructure := 0
					for k, ch := range structure {
						if ch == 'i' {
							if hyphensInStructure == hyphenCount {
								structure[k] = 'p'
							}
						} else if ch == '-' {
							hyphensInStructure++
						}
					}
				} else if fstOutput[j+2] == 'e' {
					isDe = true
				}
			} else if startsWith(fstOutput, j+1, "Ln]") {
				isDe = false
			}
		} else if fstOutput[j] == '-' {
			hyphenCount++
			if isDe {
				toUpper := j == fstLen-1
				for k := j + 1; !toUpper && k+4 < fstLen; k++ {
					if startsWith(fstOutput, k, "[Lep]") {
						toUpper = true
					}
				}
				if toUpper {
					for k, ch := range structure {
						if ch == 'i' || ch == 'p' {
							structure[k] = 'i'
							return
						}
					}
				}
			}
		}
	}
}
