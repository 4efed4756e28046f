package speller

import "github.com/louhiala/sanakko/pkg/morph"

// AnalyzerSpeller checks spelling by running morphological analysis and
// validating capitalization against each analysis' STRUCTURE attribute.
// The least severe result over all analyses wins.
type AnalyzerSpeller struct {
	analyzer morph.Analyzer
}

// NewAnalyzerSpeller wraps an analyzer as a Speller.
func NewAnalyzerSpeller(analyzer morph.Analyzer) *AnalyzerSpeller {
	return &AnalyzerSpeller{analyzer: analyzer}
}

// Spell analyzes the word and grades its capitalization. Words with no
// analyses fail outright.
func (s *AnalyzerSpeller) Spell(word []rune) Result {
	analyses := s.analyzer.Analyze(word)
	if len(analyses) == 0 {
		return ResultFailed
	}

	best := ResultFailed
	for _, analysis := range analyses {
		structure, ok := analysis.Get(morph.AttrStructure)
		if !ok {
			continue
		}
		result := MatchStructure(word, structure)
		if best == ResultFailed || best > result {
			best = result
		}
		if best == ResultOk {
			break
		}
	}
	return best
}
