package speller

import (
	"testing"

	"github.com/louhiala/sanakko/pkg/morph"
)

func newFinnishMock() *mockAnalyzer {
	return &mockAnalyzer{analyses: map[string][]*morph.Analysis{
		"koira":     {withStructure("=ppppp")},
		"ja":        {withStructure("=pp")},
		"sana":      {withFreeSuffix("=pppp")},
		"popopisto": {withStructure("=ppp=pppppp")},
		"syysilta": {
			withStructure("=pppp=pppp"),
			withStructure("=ppp=ppppp"),
		},
		"alatalo": {withStructure("=ppp=pppp")},
	}}
}

func newFinnish(h Hyphenator, acceptExtraHyphens bool) *FinnishSpeller {
	analyzer := newFinnishMock()
	return NewFinnishSpeller(NewAnalyzerSpeller(analyzer), analyzer, h, acceptExtraHyphens)
}

func TestFinnishPassthrough(t *testing.T) {
	sp := newFinnish(nil, false)
	if got := sp.Spell([]rune("koira")); got != ResultOk {
		t.Errorf("koira: got %v", got)
	}
	if got := sp.Spell([]rune("xyzzy")); got != ResultFailed {
		t.Errorf("xyzzy: got %v", got)
	}
}

func TestFinnishFreeSuffix(t *testing.T) {
	sp := newFinnish(nil, false)
	if got := sp.Spell([]rune("ja-sana")); got != ResultOk {
		t.Errorf("ja-sana: got %v", got)
	}
	// The trailing part must carry the free suffix flag.
	if got := sp.Spell([]rune("ja-koira")); got != ResultFailed {
		t.Errorf("ja-koira: got %v", got)
	}
}

func TestFinnishVowelConsonantOverlap(t *testing.T) {
	sp := newFinnish(nil, false)
	if got := sp.Spell([]rune("pop-opisto")); got != ResultOk {
		t.Errorf("pop-opisto: got %v", got)
	}
}

func TestFinnishAmbiguousCompound(t *testing.T) {
	sp := newFinnish(nil, false)
	// "syysilta" has readings both with and without a boundary at the
	// hyphen position, so the hyphenated form is accepted.
	if got := sp.Spell([]rune("syy-silta")); got != ResultOk {
		t.Errorf("syy-silta: got %v", got)
	}
	// "alatalo" has only the boundary reading, so the hyphenated form
	// stays rejected.
	if got := sp.Spell([]rune("ala-talo")); got != ResultFailed {
		t.Errorf("ala-talo: got %v", got)
	}
}

func TestFinnishExtraHyphens(t *testing.T) {
	sp := newFinnish(nil, false)
	if got := sp.Spell([]rune("popo-pisto")); got != ResultFailed {
		t.Errorf("popo-pisto without option: got %v", got)
	}
	sp = newFinnish(nil, true)
	if got := sp.Spell([]rune("popo-pisto")); got != ResultOk {
		t.Errorf("popo-pisto with option: got %v", got)
	}
}

func TestFinnishSoftHyphenStripped(t *testing.T) {
	sp := newFinnish(nil, false)
	if got := sp.Spell([]rune("koi­ra")); got != ResultOk {
		t.Errorf("koi<shy>ra: got %v", got)
	}
}

func TestFinnishSoftHyphenEdgePositions(t *testing.T) {
	sp := newFinnish(nil, false)
	for _, w := range []string{"­koira", "koira­", "koi­­ra"} {
		if got := sp.Spell([]rune(w)); got != ResultFailed {
			t.Errorf("%q: got %v, want failed", w, got)
		}
	}
}

type fixedHyphenator struct {
	patterns map[string]string
}

func (h *fixedHyphenator) AllPossibleHyphenPositions(word []rune) string {
	return h.patterns[string(word)]
}

func TestFinnishSoftHyphenValidation(t *testing.T) {
	h := &fixedHyphenator{patterns: map[string]string{
		"koira": "   - ",
	}}
	sp := newFinnish(h, false)

	// koi-ra is the only hyphenation point.
	if got := sp.Spell([]rune("koi­ra")); got != ResultOk {
		t.Errorf("valid position: got %v, want ok", got)
	}
	if got := sp.Spell([]rune("koir­a")); got != ResultFailed {
		t.Errorf("invalid position: got %v, want failed", got)
	}
}
