package suggest

import (
	"math"
	"strings"

	"github.com/louhiala/sanakko/pkg/morph"
	"github.com/louhiala/sanakko/pkg/speller"
)

// priorityFromResult maps a spell result to a base priority. Lower is
// better.
func priorityFromResult(result speller.Result) int {
	switch result {
	case speller.ResultOk:
		return 1
	case speller.ResultCapitalizeFirst:
		return 2
	case speller.ResultCapitalizationError:
		return 3
	default:
		return math.MaxInt32
	}
}

// priorityFromNounInflection ranks inflection forms by how common they are
// in running text. Nominative and genitive rank best.
func priorityFromNounInflection(sijamuoto string) int {
	switch sijamuoto {
	case "":
		return 4
	case "nimento":
		return 2
	case "omanto":
		return 3
	case "osanto":
		return 5
	case "sisaolento":
		return 8
	case "sisaeronto":
		return 12
	case "sisatulento":
		return 8
	case "ulkoolento":
		return 12
	case "ulkoeronto":
		return 30
	case "ulkotulento":
		return 20
	case "olento":
		return 20
	case "tulento":
		return 20
	case "vajanto":
		return 60
	case "seuranto":
		return 60
	case "keinonto":
		return 20
	default:
		return 4
	}
}

// priorityFromWordClassAndInflection applies inflection-based ranking to
// nominal word classes. Other classes get a flat default.
func priorityFromWordClassAndInflection(wordClass, sijamuoto string) int {
	switch wordClass {
	case "nimisana", "laatusana", "nimisana_laatusana", "asemosana",
		"etunimi", "sukunimi", "paikannimi", "nimi":
		return priorityFromNounInflection(sijamuoto)
	default:
		return 4
	}
}

// priorityFromStructure penalizes compound words. Each compound part past
// the first multiplies the priority by 8.
func priorityFromStructure(structure string) int {
	parts := strings.Count(structure, "=")
	if parts > 5 {
		parts = 5
	}
	if parts == 0 {
		return 1
	}
	return 1 << (3 * (parts - 1))
}

// priorityFromAnalysis combines word class, compound structure, and spell
// result into one priority for a single reading.
func priorityFromAnalysis(analysis *morph.Analysis, result speller.Result) int {
	structure := analysis.Value(morph.AttrStructure)
	if structure == "" {
		structure = "=p"
	}
	classPrio := priorityFromWordClassAndInflection(
		analysis.Value(morph.AttrClass), analysis.Value(morph.AttrSijamuoto))
	return classPrio * priorityFromStructure(structure) * priorityFromResult(result)
}

// bestPriorityFromAnalyses returns the best priority over all readings of
// a word.
func bestPriorityFromAnalyses(analyses []*morph.Analysis, result speller.Result) int {
	if len(analyses) == 0 {
		return priorityFromResult(result)
	}
	best := math.MaxInt32
	for _, a := range analyses {
		if p := priorityFromAnalysis(a, result); p < best {
			best = p
		}
	}
	return best
}
