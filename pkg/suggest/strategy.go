package suggest

import (
	"github.com/charmbracelet/log"

	"github.com/louhiala/sanakko/pkg/morph"
	"github.com/louhiala/sanakko/pkg/speller"
)

// Replacement tables modeling Finnish keyboard adjacency, as flat from/to
// pairs. Table 1 holds the highest-frequency confusions, later tables
// progressively rarer ones. Table 2 covers the number row.
var (
	replacements1 = []rune(".,asiuiotrtdersšsanmuilkklkgoiäömnrertvbpbpoythjjhjkdtdsdföägfghgkfgfdbpbncvcswewvxczžzxqaåoåpåäåöaeiktyea")
	replacements2 = []rune("1q2q2w3w3e4e4r5r5t6t6y7y7u8u8i9i9o0o0p+pie")
	replacements3 = []rune("essdnhujlökjopäpmkrdvgplyhhujideölgtfvbvckwaxszaqkåaaåeéaâkcscijxz")
	replacements4 = []rune("qwqswqwswdedefrfrgtftgthygyjuhukilokolpöpäsesxdrbgfefrftfcgygbgvhyhnhbhgjujmjnkikokmlolpöpöåäåzsxdcdcfcxvfbhnjnbmjewpåaqswszdwdcdxvcawazsq")
	replacements5 = []rune("aooaoutlsraieääeuvvuoddokqpvvpqeeqaddarsetteryyrtuutyiiyuoippioåhvvhhmmh")
)

// ocrReplacements maps character shapes commonly confused by optical
// recognition, including underscores standing in for unrecognized letters.
var ocrReplacements = []rune("0oliiluoouaääaoööosššszžžzeééeaââapbbpeffeqooqnmmnuvvuoccobhhb" +
	"_a_b_c_d_e_f_g_h_i_j_k_l_m_n_o_p_q_r_s_t_u_v_w_x_y_z_ä_ö")

// Insertion candidates ordered by letter frequency in Finnish text.
var (
	insertionPrimary   = []rune("aitesn")
	insertionSecondary = []rune("ulkoämrvpyhjdögfbcw:xzqå'.")
)

// Default cost budgets for the built-in strategies.
const (
	DefaultTypingCost = 800
	DefaultOCRCost    = 2000
)

// Strategy composes generators into a pipeline with a shared cost budget.
// Primary generators run first; if any of them produces a suggestion the
// secondary generators are skipped.
type Strategy struct {
	maxCost   int
	primary   []Generator
	secondary []Generator
}

// Generate runs the strategy against the word tracked by the status.
func (s *Strategy) Generate(sp speller.Speller, st *Status) {
	st.SetMaxCost(s.maxCost)

	for _, g := range s.primary {
		if st.ShouldAbort() {
			break
		}
		g.Generate(sp, st)
	}
	if st.Count() > 0 {
		log.Debugf("Primary generators found %d suggestions", st.Count())
		return
	}

	for _, g := range s.secondary {
		if st.ShouldAbort() {
			break
		}
		g.Generate(sp, st)
	}
	log.Debugf("Suggestion search finished: %d candidates, cost %d", st.Count(), st.currentCost)
}

// NewTypingStrategy builds the strategy for human typing errors. The
// generator order runs cheap, high-yield edits before expensive ones.
// analyzer may be nil; when present the case change generator uses it to
// fix capitalization against the STRUCTURE attribute.
func NewTypingStrategy(maxCost int, analyzer morph.Analyzer) *Strategy {
	return &Strategy{
		maxCost: maxCost,
		primary: []Generator{
			CaseChange{Analyzer: analyzer},
			SoftHyphens{},
		},
		secondary: []Generator{
			VowelChange{},
			Replacement{Pairs: replacements1},
			Deletion{},
			InsertSpecial{},
			SplitWord{},
			ReplaceTwo{Pairs: replacements1},
			Replacement{Pairs: replacements2},
			Insertion{Characters: insertionPrimary},
			Swap{},
			Replacement{Pairs: replacements3},
			Insertion{Characters: insertionSecondary},
			Replacement{Pairs: replacements4},
			ReplaceTwo{Pairs: replacements2},
			ReplaceTwo{Pairs: replacements3},
			ReplaceTwo{Pairs: replacements4},
			DeleteTwo{},
			Replacement{Pairs: replacements5},
		},
	}
}

// NewOCRStrategy builds the strategy for optical character recognition
// errors, where several characters may be misread at once.
func NewOCRStrategy(maxCost int, analyzer morph.Analyzer) *Strategy {
	return &Strategy{
		maxCost: maxCost,
		primary: []Generator{
			CaseChange{Analyzer: analyzer},
		},
		secondary: []Generator{
			Replacement{Pairs: ocrReplacements},
			MultiReplacement{Pairs: ocrReplacements, Count: 2},
		},
	}
}
