package morph

import (
	"fmt"
	"math"
	"sync"

	"github.com/louhiala/sanakko/internal/chars"
	"github.com/louhiala/sanakko/pkg/fst"
)

// Analyzer produces all valid morphological readings of a word.
type Analyzer interface {
	Analyze(word []rune) []*Analysis
}

// FinnishAnalyzer is the morphological analyzer for Finnish, backed by an
// unweighted transducer loaded from mor.vfst. It parses transducer output
// into structured attributes, validates compound boundaries, and applies
// Finnish-specific post-processing. Safe for concurrent use.
type FinnishAnalyzer struct {
	mu  sync.Mutex
	t   *fst.Unweighted
	cfg *fst.Config
}

// NewFinnishAnalyzer builds an analyzer from the contents of a mor.vfst
// file.
func NewFinnishAnalyzer(data []byte) (*FinnishAnalyzer, error) {
	t, err := fst.NewUnweighted(data)
	if err != nil {
		return nil, err
	}
	return &FinnishAnalyzer{t: t, cfg: t.NewConfig(fst.DefaultBufferSize)}, nil
}

// NewFinnishAnalyzerFromTransducer wraps an already loaded transducer.
// The dictionary bundle loads transducers once and shares them.
func NewFinnishAnalyzerFromTransducer(t *fst.Unweighted) *FinnishAnalyzer {
	return &FinnishAnalyzer{t: t, cfg: t.NewConfig(fst.DefaultBufferSize)}
}

// Analyze returns all readings of word with full morphology, including
// BASEFORM, FSTOUTPUT, WORDBASES and WORDIDS.
func (a *FinnishAnalyzer) Analyze(word []rune) []*Analysis {
	return a.analyze(word, true)
}

// AnalyzeBasic returns all readings of word without the derived
// full-morphology attributes. Spell checking only needs the basic set.
func (a *FinnishAnalyzer) AnalyzeBasic(word []rune) []*Analysis {
	return a.analyze(word, false)
}

func (a *FinnishAnalyzer) analyze(word []rune, fullMorphology bool) []*Analysis {
	wlen := len(word)
	if wlen > maxWordChars {
		return nil
	}

	lower := make([]rune, wlen)
	for i, c := range word {
		lower[i] = chars.Lower(c)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Unknown characters map to a sentinel symbol, so traversal can still
	// run; it simply finds no transitions for them.
	a.t.Prepare(a.cfg, lower)

	var analyses []*Analysis
	for count := 0; count < MaxAnalyses; count++ {
		out, ok := a.t.Next(a.cfg)
		if !ok {
			break
		}
		fstOutput := []rune(out)

		if !isValidAnalysis(fstOutput) {
			continue
		}

		analysis := NewAnalysis()
		structure := []rune(parseStructure(fstOutput, wlen))

		basic := parseBasicAttributes(fstOutput)
		applyBasicAttributes(analysis, &basic)

		fixStructure(structure, fstOutput)
		analysis.Set(AttrStructure, string(structure))

		postProcessAttributes(analysis)

		dup := duplicateOrgName(analysis, fstOutput)

		if fullMorphology {
			analysis.Set(AttrFstOutput, string(fstOutput))
			if bf := parseBaseform(fstOutput, structure); bf != "" {
				analysis.Set(AttrBaseform, bf)
			}
			debug := parseDebugAttributes(fstOutput)
			analysis.Set(AttrWordbases, debug.wordbases)
			if debug.hasIds {
				analysis.Set(AttrWordids, debug.wordids)
			}
		}

		analyses = append(analyses, analysis)
		if dup != nil {
			analyses = append(analyses, dup)
		}
	}

	return analyses
}

func applyBasicAttributes(analysis *Analysis, attrs *basicAttributes) {
	if attrs.class != "" {
		analysis.Set(AttrClass, attrs.class)
	}
	if attrs.sijamuoto != "" {
		analysis.Set(AttrSijamuoto, attrs.sijamuoto)
	}
	if attrs.number != "" {
		analysis.Set(AttrNumber, attrs.number)
	}
	if attrs.person != "" {
		analysis.Set(AttrPerson, attrs.person)
	}
	if attrs.mood != "" {
		analysis.Set(AttrMood, attrs.mood)
	}
	if attrs.tense != "" {
		analysis.Set(AttrTense, attrs.tense)
	}
	if attrs.focus != "" {
		analysis.Set(AttrFocus, attrs.focus)
	}
	if attrs.possessive != "" {
		analysis.Set(AttrPossessive, attrs.possessive)
	}
	if attrs.negative != "" {
		analysis.Set(AttrNegative, attrs.negative)
	}
	if attrs.comparison != "" {
		analysis.Set(AttrComparison, attrs.comparison)
	}
	if attrs.participle != "" {
		analysis.Set(AttrParticiple, attrs.participle)
	}
	if attrs.kysymysliite {
		analysis.Set(AttrKysymysliite, "true")
	}
	if attrs.requireFollowingVerb != "" {
		analysis.Set(AttrRequireFollowingVerb, attrs.requireFollowingVerb)
	}
	if attrs.malagaVapaaJalkiosa {
		analysis.Set(AttrMalagaVapaaJalkiosa, "true")
	}
	if attrs.possibleGeographicalName {
		analysis.Set(AttrPossibleGeographicalName, "true")
	}
}

// postProcessAttributes applies cross-attribute rules after the initial
// tag scan: NEGATIVE only makes sense on finite verb forms, a past
// passive participle acts as an adjective, kerrontosti has no NUMBER, and
// adjectives default to positive COMPARISON while plain nouns carry none.
func postProcessAttributes(analysis *Analysis) {
	wclass := analysis.Value(AttrClass)
	sijamuoto := analysis.Value(AttrSijamuoto)
	mood := analysis.Value(AttrMood)
	participle := analysis.Value(AttrParticiple)

	if analysis.Has(AttrNegative) {
		isNonVerb := wclass != "" && wclass != "teonsana"
		isNominalInfinitive := mood == "MINEN-infinitive" || mood == "E-infinitive" || mood == "MA-infinitive"
		if isNonVerb || isNominalInfinitive {
			analysis.Remove(AttrNegative)
		}
	}

	if participle == "past_passive" && wclass != "laatusana" {
		analysis.Remove(AttrClass)
		analysis.Set(AttrClass, "laatusana")
	}

	wclass = analysis.Value(AttrClass)

	if analysis.Has(AttrNumber) && sijamuoto == "kerrontosti" {
		analysis.Remove(AttrNumber)
	}

	if !analysis.Has(AttrComparison) {
		if wclass == "laatusana" || wclass == "nimisana_laatusana" {
			analysis.Set(AttrComparison, "positive")
		}
	} else if wclass == "nimisana" {
		analysis.Remove(AttrComparison)
	}
}

// duplicateOrgName creates a second reading for organizational names.
// Compound nouns carrying an [Ion] tag right after a [Bc] boundary also
// act as proper names, with class "nimi" and an uppercase first letter.
func duplicateOrgName(analysis *Analysis, fstOutput []rune) *Analysis {
	if analysis.Value(AttrClass) != "nimisana" {
		return nil
	}

	fstLen := len(fstOutput)
	if fstLen < 13 {
		return nil
	}
	if fstOutput[0] == '-' {
		return nil
	}
	if startsWith(fstOutput, 0, "[La]") {
		return nil
	}

	for i := fstLen - 5; i >= 8; i-- {
		if startsWith(fstOutput, i, "[Bc]") {
			return nil
		}
		if startsWith(fstOutput, i, "[Ion]") {
			for j := i - 4; j >= 4; j-- {
				if startsWith(fstOutput, j, "[Bc]") {
					dup := analysis.Clone()
					dup.Remove(AttrClass)
					dup.Set(AttrClass, "nimi")
					dup.Remove(AttrPossibleGeographicalName)

					if oldStructure, ok := analysis.Get(AttrStructure); ok {
						newStructure := []rune(oldStructure)
						if len(newStructure) >= 2 {
							newStructure[1] = 'i'
							dup.Set(AttrStructure, string(newStructure))
							if bf := parseBaseform(fstOutput, newStructure); bf != "" {
								dup.Set(AttrBaseform, bf)
							}
						}
					}
					return dup
				}
			}
		}
	}

	return nil
}

// WeightedAnalyzer is a language-agnostic analyzer over a weighted
// transducer. It does no tag parsing; each reading carries the raw
// transducer output and a probability converted from the path weight.
// Safe for concurrent use.
type WeightedAnalyzer struct {
	mu  sync.Mutex
	t   *fst.Weighted
	cfg *fst.WeightedConfig
}

// NewWeightedAnalyzer builds an analyzer from the contents of a weighted
// mor.vfst file.
func NewWeightedAnalyzer(data []byte) (*WeightedAnalyzer, error) {
	t, err := fst.NewWeighted(data)
	if err != nil {
		return nil, err
	}
	return &WeightedAnalyzer{t: t, cfg: t.NewConfig(fst.DefaultBufferSize)}, nil
}

// Analyze returns all readings of word. Each analysis has FSTOUTPUT and
// WEIGHT attributes.
func (a *WeightedAnalyzer) Analyze(word []rune) []*Analysis {
	return a.analyzeFull(word, true)
}

func (a *WeightedAnalyzer) analyzeFull(word []rune, fullMorphology bool) []*Analysis {
	if len(word) > maxWordChars {
		return nil
	}

	lower := make([]rune, len(word))
	for i, c := range word {
		lower[i] = chars.Lower(c)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.t.Prepare(a.cfg, lower) {
		return nil
	}

	var analyses []*Analysis
	var res fst.WeightedResult
	for count := 0; count < MaxAnalyses; count++ {
		out, ok := a.t.NextWeighted(a.cfg, &res)
		if !ok {
			break
		}

		analysis := NewAnalysis()
		if fullMorphology {
			analysis.Set(AttrFstOutput, out)
		}
		analysis.Set(AttrWeight, fmt.Sprintf("%.9f", logWeightToProb(res.Weight)))
		analyses = append(analyses, analysis)
	}

	return analyses
}

// logWeightToProb converts a log-domain integer weight, stored as
// -100*ln(p), back to the probability p.
func logWeightToProb(logWeight int16) float64 {
	return math.Exp(-0.01 * float64(logWeight))
}
