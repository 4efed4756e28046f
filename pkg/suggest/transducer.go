package suggest

import (
	"sort"

	"github.com/louhiala/sanakko/pkg/fst"
)

// Traversal buffer size for the weighted transducer configurations.
const transducerBufferSize = 2000

// TransducerSuggester generates corrections from two weighted transducers
// working in tandem. The error model enumerates plausible edits of the
// misspelled word with error weights, and the acceptor validates that each
// candidate is a real word. Accepted candidates are ranked by the sum of
// their error model and acceptor weights.
type TransducerSuggester struct {
	errorModel *fst.Weighted
	acceptor   *fst.Weighted
}

// NewTransducerSuggester builds a suggester from an error model transducer
// and an acceptor transducer. The acceptor is typically the same
// transducer the speller checks words against.
func NewTransducerSuggester(errorModel, acceptor *fst.Weighted) *TransducerSuggester {
	return &TransducerSuggester{errorModel: errorModel, acceptor: acceptor}
}

// Generate enumerates error model outputs for the word tracked by the
// status, validates each through the acceptor, and records the accepted
// candidates in ascending weight order. When the acceptor rejects a
// candidate, the error model search tree is pruned at the depth where the
// acceptor gave up.
func (g *TransducerSuggester) Generate(st *Status) {
	st.SetMaxCost(100)

	word := st.Word()
	emCfg := g.errorModel.NewConfig(transducerBufferSize)
	accCfg := g.acceptor.NewConfig(transducerBufferSize)

	// Minimum combined weight per unique candidate.
	weights := make(map[string]int)

	var emRes, accRes fst.WeightedResult
	if g.errorModel.Prepare(emCfg, word) {
		for !st.ShouldAbort() {
			candidate, ok := g.errorModel.NextWeighted(emCfg, &emRes)
			if !ok {
				break
			}
			if !g.acceptor.Prepare(accCfg, []rune(candidate)) {
				continue
			}
			if _, accepted := g.acceptor.NextWeighted(accCfg, &accRes); accepted {
				weight := int(accRes.Weight) + int(emRes.Weight)
				if old, seen := weights[candidate]; !seen || weight < old {
					weights[candidate] = weight
				}
			} else {
				g.errorModel.BacktrackToOutputDepth(emCfg, accRes.FirstNotReachedPosition)
			}
		}
	}

	ranked := make([]Suggestion, 0, len(weights))
	for candidate, weight := range weights {
		ranked = append(ranked, Suggestion{Word: candidate, Priority: weight})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority < ranked[j].Priority
		}
		return ranked[i].Word < ranked[j].Word
	})
	for _, s := range ranked {
		st.Add(s.Word, s.Priority)
	}
}
