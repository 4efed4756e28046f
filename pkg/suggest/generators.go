package suggest

import (
	"github.com/louhiala/sanakko/internal/chars"
	"github.com/louhiala/sanakko/pkg/morph"
	"github.com/louhiala/sanakko/pkg/speller"
)

const softHyphen = '­'

// Back vowels and the front vowels they correspond to under Finnish vowel
// harmony, in matching index order.
var (
	backVowels  = []rune{'a', 'o', 'u', 'A', 'O', 'U'}
	frontVowels = []rune{'ä', 'ö', 'y', 'Ä', 'Ö', 'Y'}
)

// Generator produces correction candidates by applying one class of edit
// operation to the word tracked by the status, validating each candidate
// through the speller.
type Generator interface {
	Generate(sp speller.Speller, st *Status)
}

// suggestForBuffer checks a candidate against the speller and records it
// with appropriate case corrections if it passes.
func suggestForBuffer(sp speller.Speller, st *Status, buffer []rune) {
	suggestForBufferWithAnalyzer(sp, st, buffer, nil)
}

// suggestForBufferWithAnalyzer is the analyzer-aware variant. When the
// spell result is a capitalization error and an analyzer is available, the
// STRUCTURE attribute of the first reading determines the corrected case
// of each letter. The analyzer also refines the candidate's priority.
func suggestForBufferWithAnalyzer(sp speller.Speller, st *Status, buffer []rune, analyzer morph.Analyzer) {
	if st.ShouldAbort() {
		return
	}
	result := sp.Spell(buffer)
	st.Charge()
	switch result {
	case speller.ResultOk:
		st.Add(string(buffer), computePriority(analyzer, buffer, result))
	case speller.ResultCapitalizeFirst:
		prio := computePriority(analyzer, buffer, result)
		corrected := make([]rune, len(buffer))
		copy(corrected, buffer)
		corrected[0] = chars.Upper(corrected[0])
		st.Add(string(corrected), prio)
	case speller.ResultCapitalizationError:
		if analyzer == nil {
			st.Add(string(buffer), priorityFromResult(result))
			return
		}
		analyses := analyzer.Analyze(buffer)
		st.Charge()
		if len(analyses) == 0 {
			return
		}
		prio := bestPriorityFromAnalyses(analyses, result)
		if structure := analyses[0].Value(morph.AttrStructure); structure != "" {
			st.Add(string(applyStructureCase(buffer, structure)), prio)
		} else {
			st.Add(string(buffer), prio)
		}
	}
}

// computePriority uses analysis-based priority when an analyzer is
// available and falls back to the plain spell result otherwise.
func computePriority(analyzer morph.Analyzer, word []rune, result speller.Result) int {
	if analyzer != nil {
		if analyses := analyzer.Analyze(word); len(analyses) > 0 {
			return bestPriorityFromAnalyses(analyses, result)
		}
	}
	return priorityFromResult(result)
}

// applyStructureCase fixes the case of each letter according to the
// STRUCTURE attribute: i and j positions become uppercase, p and q
// positions lowercase. Compound boundary markers do not consume a letter.
func applyStructureCase(word []rune, structure string) []rune {
	result := make([]rune, len(word))
	copy(result, word)
	pattern := []rune(structure)
	j := 0
	for i := range result {
		for j < len(pattern) && pattern[j] == '=' {
			j++
		}
		if j >= len(pattern) {
			break
		}
		switch pattern[j] {
		case 'i', 'j':
			result[i] = chars.Upper(result[i])
		case 'p', 'q':
			result[i] = chars.Lower(result[i])
		}
		j++
	}
	return result
}

// CaseChange tries the word as-is, catching words that only need a case
// correction. Cheap enough to run as a primary generator.
type CaseChange struct {
	// Analyzer, when set, resolves mixed-case corrections from the
	// STRUCTURE attribute and refines priorities.
	Analyzer morph.Analyzer
}

func (g CaseChange) Generate(sp speller.Speller, st *Status) {
	suggestForBufferWithAnalyzer(sp, st, st.Word(), g.Analyzer)
}

// SoftHyphens tries the word with all soft hyphens removed, handling words
// pasted from hyphenated text.
type SoftHyphens struct{}

func (SoftHyphens) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	found := false
	for _, c := range word {
		if c == softHyphen {
			found = true
			break
		}
	}
	if !found {
		return
	}
	buffer := make([]rune, 0, len(word))
	for _, c := range word {
		if c != softHyphen {
			buffer = append(buffer, c)
		}
	}
	suggestForBuffer(sp, st, buffer)
}

// Deletion tries removing one character at each position. Positions whose
// character repeats its predecessor are skipped since deleting either
// yields the same candidate.
type Deletion struct{}

func (Deletion) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if wlen < 2 {
		return
	}
	buffer := make([]rune, 0, wlen-1)
	for i := 0; i < wlen; i++ {
		if st.ShouldAbort() {
			break
		}
		if i > 0 && chars.Lower(word[i]) == chars.Lower(word[i-1]) {
			continue
		}
		buffer = buffer[:0]
		buffer = append(buffer, word[:i]...)
		buffer = append(buffer, word[i+1:]...)
		suggestForBuffer(sp, st, buffer)
	}
}

// Insertion tries inserting each character from a set at every position.
// The set is ordered by letter frequency so common insertions are tested
// first.
type Insertion struct {
	Characters []rune
}

func (g Insertion) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if wlen == 0 {
		return
	}
	buffer := make([]rune, wlen+1)
	for _, ins := range g.Characters {
		buffer[0] = word[0]
		copy(buffer[1:], word)
		for j := 0; j < wlen; j++ {
			if st.ShouldAbort() {
				break
			}
			if j != 0 {
				buffer[j-1] = word[j-1]
			}
			// Inserting next to an identical character repeats an
			// earlier candidate.
			if ins == chars.Lower(word[j]) {
				continue
			}
			if j > 0 && ins == chars.Lower(word[j-1]) {
				continue
			}
			buffer[j] = ins
			suggestForBuffer(sp, st, buffer)
		}
		if st.ShouldAbort() {
			break
		}
		if ins == word[wlen-1] {
			continue
		}
		buffer[wlen-1] = word[wlen-1]
		buffer[wlen] = ins
		suggestForBuffer(sp, st, buffer)
	}
}

// InsertSpecial tries inserting a hyphen at interior positions and
// duplicating single characters.
type InsertSpecial struct{}

func (InsertSpecial) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if wlen < 4 {
		return
	}
	buffer := make([]rune, wlen+1)

	for j := 2; j <= wlen-2; j++ {
		if st.ShouldAbort() {
			break
		}
		// No hyphen next to an existing one.
		if word[j-2] == '-' || word[j-1] == '-' || word[j] == '-' ||
			(j+1 < wlen && word[j+1] == '-') {
			continue
		}
		copy(buffer, word[:j])
		buffer[j] = '-'
		copy(buffer[j+1:], word[j:])
		suggestForBuffer(sp, st, buffer)
	}

	buffer[0] = word[0]
	copy(buffer[1:], word)
	j := 0
	for j < wlen {
		if st.ShouldAbort() {
			break
		}
		buffer[j] = word[j]
		// Already doubled letters stay as they are.
		if j+1 < wlen && word[j] == word[j+1] {
			j += 2
			if j < wlen {
				buffer[j] = word[j]
			}
			continue
		}
		if word[j] == '-' || word[j] == '\'' {
			j++
			continue
		}
		suggestForBuffer(sp, st, buffer)
		j++
	}
}

// Replacement tries single-character replacements from a table of flat
// from/to pairs. Uppercase variants are derived automatically.
type Replacement struct {
	Pairs []rune
}

func (g Replacement) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if len(g.Pairs) < 2 {
		return
	}
	buffer := make([]rune, wlen)
	copy(buffer, word)

	for i := 0; i+1 < len(g.Pairs); i += 2 {
		from, to := g.Pairs[i], g.Pairs[i+1]
		for pos := 0; pos < wlen; pos++ {
			if buffer[pos] != from {
				continue
			}
			buffer[pos] = to
			suggestForBuffer(sp, st, buffer)
			if st.ShouldAbort() {
				return
			}
			buffer[pos] = from
		}
		upperFrom := chars.Upper(from)
		if upperFrom == from {
			continue
		}
		for pos := 0; pos < wlen; pos++ {
			if buffer[pos] != upperFrom {
				continue
			}
			buffer[pos] = chars.Upper(to)
			suggestForBuffer(sp, st, buffer)
			if st.ShouldAbort() {
				return
			}
			buffer[pos] = upperFrom
		}
	}
}

// ReplaceTwo tries replacing doubled characters: where two identical
// adjacent characters occur, both are replaced with the mapped character.
// Matching happens on the lowercased word.
type ReplaceTwo struct {
	Pairs []rune
}

func (g ReplaceTwo) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if wlen < 2 || len(g.Pairs) < 2 {
		return
	}
	buffer := make([]rune, wlen)
	for i, c := range word {
		buffer[i] = chars.Lower(c)
	}

	for i := 0; i < wlen-1; {
		replaced := buffer[i]
		if replaced != buffer[i+1] {
			i++
			continue
		}
		for j := 0; j+1 < len(g.Pairs); j += 2 {
			if g.Pairs[j] != replaced {
				continue
			}
			to := g.Pairs[j+1]
			buffer[i] = to
			buffer[i+1] = to
			suggestForBuffer(sp, st, buffer)
			if st.ShouldAbort() {
				return
			}
		}
		buffer[i] = replaced
		buffer[i+1] = replaced
		if st.ShouldAbort() {
			return
		}
		i += 2
	}
}

// MultiReplacement recursively applies up to Count replacements from a
// table. Used for OCR errors where several characters may be misread at
// once.
type MultiReplacement struct {
	Pairs []rune
	Count int
}

func (g MultiReplacement) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	buffer := make([]rune, len(word))
	copy(buffer, word)
	g.generate(sp, st, buffer, 0, g.Count)
}

func (g MultiReplacement) generate(sp speller.Speller, st *Status, buffer []rune, start, remaining int) {
	wlen := len(buffer)
	for i := 0; i+1 < len(g.Pairs); i += 2 {
		from, to := g.Pairs[i], g.Pairs[i+1]
		for pos := start; pos < wlen; pos++ {
			if buffer[pos] != from {
				continue
			}
			buffer[pos] = to
			if remaining == 1 {
				suggestForBuffer(sp, st, buffer)
			} else {
				g.generate(sp, st, buffer, pos, remaining-1)
			}
			if st.ShouldAbort() {
				return
			}
			buffer[pos] = from
		}
	}
}

// Swap tries exchanging pairs of characters. The maximum swap distance
// shrinks for long words to bound the search. Identical characters and
// front/back vowel pairs are skipped since the latter are already covered
// by VowelChange.
type Swap struct{}

func (Swap) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if wlen < 2 {
		return
	}
	maxDistance := 10
	if wlen > 8 {
		maxDistance = 50 / wlen
	}
	if maxDistance == 0 {
		return
	}
	buffer := make([]rune, wlen)
	copy(buffer, word)

	for i := 0; i < wlen; i++ {
		if st.ShouldAbort() {
			break
		}
		for j := i + 1; j < wlen; j++ {
			if st.ShouldAbort() {
				break
			}
			if j-i > maxDistance {
				break
			}
			if chars.Lower(buffer[i]) == chars.Lower(buffer[j]) {
				continue
			}
			if isVowelHarmonyPair(buffer[i], buffer[j]) {
				continue
			}
			buffer[i], buffer[j] = word[j], word[i]
			suggestForBuffer(sp, st, buffer)
			buffer[i], buffer[j] = word[i], word[j]
		}
	}
}

func isVowelHarmonyPair(a, b rune) bool {
	la, lb := chars.Lower(a), chars.Lower(b)
	for k := 0; k < 3; k++ {
		if (la == backVowels[k] && lb == frontVowels[k]) ||
			(la == frontVowels[k] && lb == backVowels[k]) {
			return true
		}
	}
	return false
}

// SplitWord tries splitting the word into two space-separated words. Both
// parts must pass spell check. A hyphen at the split point is dropped, so
// "suuntaa-antava" can become "suuntaa antava".
type SplitWord struct{}

func splitSpellOk(sp speller.Speller, st *Status, word []rune) (bool, int) {
	firstUpper := chars.IsUpper(word[0])
	if firstUpper {
		word[0] = chars.Lower(word[0])
	}
	result := sp.Spell(word)
	st.Charge()
	if firstUpper || result == speller.ResultCapitalizeFirst {
		word[0] = chars.Upper(word[0])
	}
	ok := result == speller.ResultOk || result == speller.ResultCapitalizeFirst
	return ok, priorityFromResult(result)
}

func (SplitWord) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if wlen < 4 {
		return
	}
	part1 := make([]rune, wlen)
	copy(part1, word)

	for splitind := wlen - 2; splitind >= 2; splitind-- {
		// No split next to a hyphen.
		if word[splitind-2] == '-' || word[splitind-1] == '-' ||
			(splitind+1 < wlen && word[splitind+1] == '-') {
			continue
		}
		strip := 0
		if word[splitind] == '-' {
			strip = 1
		}
		ok1, prio := splitSpellOk(sp, st, part1[:splitind])
		if !ok1 && part1[splitind-1] == '.' {
			okNoDot, prioNoDot := splitSpellOk(sp, st, part1[:splitind-1])
			if okNoDot {
				ok1, prio = true, prioNoDot
			}
		}
		if ok1 {
			w2start := splitind + strip
			if w2start < wlen {
				part2 := make([]rune, wlen-w2start)
				copy(part2, word[w2start:])
				ok2, prio2 := splitSpellOk(sp, st, part2)
				if ok2 {
					combined := (prio + prio2) * (1 + strip*5)
					st.Add(string(part1[:splitind])+" "+string(part2), combined)
				}
			}
		}
		if st.ShouldAbort() {
			break
		}
		copy(part1, word)
	}
}

// VowelChange enumerates all combinations of flipping back vowels to their
// front counterparts and vice versa, fixing vowel harmony mistakes. Words
// with more than seven vowels are left alone.
type VowelChange struct{}

func vowelIndex(c rune) int {
	for i, v := range backVowels {
		if v == c {
			return i
		}
	}
	for i, v := range frontVowels {
		if v == c {
			return i
		}
	}
	return -1
}

func (VowelChange) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)

	vcount := 0
	var mask uint32
	for _, c := range word {
		if vowelIndex(c) >= 0 {
			vcount++
			mask = mask<<1 | 1
		}
	}
	if vcount == 0 || vcount > 7 {
		return
	}
	buffer := make([]rune, wlen)

	for pat := uint32(1); pat&mask != 0; pat++ {
		copy(buffer, word)
		vowel := 0
		for i := 0; i < wlen; i++ {
			if vowelIndex(word[i]) < 0 {
				continue
			}
			if pat&(1<<uint(vowel)) != 0 {
				flipped := false
				for k, v := range backVowels {
					if v == buffer[i] {
						buffer[i] = frontVowels[k]
						flipped = true
						break
					}
				}
				if !flipped {
					for k, v := range frontVowels {
						if v == buffer[i] {
							buffer[i] = backVowels[k]
							break
						}
					}
				}
			}
			vowel++
		}
		if st.ShouldAbort() {
			return
		}
		suggestForBuffer(sp, st, buffer)
	}
}

// DeleteTwo tries removing a repeated two-character sequence from words of
// six or more characters.
type DeleteTwo struct{}

func (DeleteTwo) Generate(sp speller.Speller, st *Status) {
	word := st.Word()
	wlen := len(word)
	if wlen < 6 {
		return
	}
	seen := make(map[string]struct{})
	for i := 0; i+3 < wlen; i++ {
		if st.ShouldAbort() {
			break
		}
		if word[i] == word[i+2] && word[i+1] == word[i+3] {
			buffer := make([]rune, 0, wlen-2)
			buffer = append(buffer, word[:i]...)
			buffer = append(buffer, word[i+2:]...)
			key := string(buffer)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			suggestForBuffer(sp, st, buffer)
		}
	}
}
