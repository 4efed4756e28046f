package sanakko

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/louhiala/sanakko/pkg/dict"
	"github.com/louhiala/sanakko/pkg/speller"
	"github.com/louhiala/sanakko/pkg/tokenize"
)

func buildVfst(weighted bool, symbols []string, build func([]byte) []byte) []byte {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint32(data[0:4], 0x00013A6E)
	binary.LittleEndian.PutUint32(data[4:8], 0x000351FA)
	align := 8
	if weighted {
		data[8] = 1
		align = 16
	}
	data = binary.LittleEndian.AppendUint16(data, uint16(len(symbols)))
	for _, s := range symbols {
		data = append(data, s...)
		data = append(data, 0)
	}
	for len(data)%align != 0 {
		data = append(data, 0)
	}
	return build(data)
}

func appendTrans(data []byte, symIn, symOut uint16, target uint32) []byte {
	data = binary.LittleEndian.AppendUint16(data, symIn)
	data = binary.LittleEndian.AppendUint16(data, symOut)
	data = binary.LittleEndian.AppendUint32(data, target&0x00FFFFFF)
	return data
}

// koiraVfst maps "koira" to the tagged analysis
// [Ln][Xp]koira[X]koira[Sn][Ny].
func koiraVfst() []byte {
	symbols := []string{"", "a", "i", "k", "o", "r", "[Ln]", "[Sn]", "[Ny]", "[X]", "[Xp]"}
	const (
		symA uint16 = iota + 1
		symI
		symK
		symO
		symR
		tagLn
		tagSn
		tagNy
		tagX
		tagXp
	)
	return buildVfst(false, symbols, func(data []byte) []byte {
		data = appendTrans(data, 0, tagLn, 1)
		data = appendTrans(data, 0, tagXp, 2)
		data = appendTrans(data, 0, symK, 3)
		data = appendTrans(data, 0, symO, 4)
		data = appendTrans(data, 0, symI, 5)
		data = appendTrans(data, 0, symR, 6)
		data = appendTrans(data, 0, symA, 7)
		data = appendTrans(data, 0, tagX, 8)
		data = appendTrans(data, symK, symK, 9)
		data = appendTrans(data, symO, symO, 10)
		data = appendTrans(data, symI, symI, 11)
		data = appendTrans(data, symR, symR, 12)
		data = appendTrans(data, symA, symA, 13)
		data = appendTrans(data, 0, tagSn, 14)
		data = appendTrans(data, 0, tagNy, 15)
		data = appendTrans(data, 0xFFFF, 0, 0)
		return data
	})
}

// kioraAutocorrVfst maps the misspelling "kiora" to "koira".
func kioraAutocorrVfst() []byte {
	symbols := []string{"", "a", "i", "k", "o", "r"}
	const (
		symA uint16 = iota + 1
		symI
		symK
		symO
		symR
	)
	return buildVfst(false, symbols, func(data []byte) []byte {
		data = appendTrans(data, symK, symK, 1)
		data = appendTrans(data, symI, symO, 2)
		data = appendTrans(data, symO, symI, 3)
		data = appendTrans(data, symR, symR, 4)
		data = appendTrans(data, symA, symA, 5)
		data = appendTrans(data, 0xFFFF, 0, 0)
		return data
	})
}

func newTestHandle(t *testing.T, withAutocorr bool) *Handle {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, dict.MorphologyFile), koiraVfst(), 0o644); err != nil {
		t.Fatal(err)
	}
	if withAutocorr {
		if err := os.WriteFile(filepath.Join(dir, dict.AutocorrectFile), kioraAutocorrVfst(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	d, err := dict.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })

	h, err := New(d)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestNewRejectsNilDict(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil dictionary")
	}
}

func TestHandleSpell(t *testing.T) {
	h := newTestHandle(t, false)
	if !h.Spell("koira") {
		t.Error("koira should be accepted")
	}
	if !h.Spell("Koira") {
		t.Error("Koira should be accepted with first letter uppercased")
	}
	if h.Spell("kissa") {
		t.Error("kissa should be rejected")
	}
}

func TestHandleSpellDetail(t *testing.T) {
	h := newTestHandle(t, false)
	if got := h.SpellDetail("koira"); got != speller.ResultOk {
		t.Errorf("koira: got %v", got)
	}
	if got := h.SpellDetail("Koira"); got != speller.ResultOk {
		t.Errorf("Koira: got %v", got)
	}
	if got := h.SpellDetail("kissa"); got != speller.ResultFailed {
		t.Errorf("kissa: got %v", got)
	}
}

func TestHandleSpellEmptyWord(t *testing.T) {
	h := newTestHandle(t, false)
	if h.Spell("") {
		t.Error("empty word accepted")
	}
	if got := h.SpellDetail(""); got != speller.ResultFailed {
		t.Errorf("SpellDetail(empty word) = %v, want Failed", got)
	}
}

func TestHandleSuggestSwappedLetters(t *testing.T) {
	h := newTestHandle(t, false)
	got := h.Suggest("koiar")
	if len(got) == 0 || got[0] != "koira" {
		t.Fatalf("Suggest(koiar) = %v, want [koira]", got)
	}
}

func TestHandleSuggestCorrectWord(t *testing.T) {
	h := newTestHandle(t, false)
	got := h.Suggest("koira")
	if len(got) != 1 || got[0] != "koira" {
		t.Fatalf("Suggest(koira) = %v, want [koira]", got)
	}
}

func TestHandleSuggestRespectsMax(t *testing.T) {
	h := newTestHandle(t, false)
	h.SetMaxSuggestions(1)
	got := h.Suggest("koiar")
	if len(got) > 1 {
		t.Fatalf("got %d suggestions, want at most 1", len(got))
	}
}

func TestHandleAnalyze(t *testing.T) {
	h := newTestHandle(t, false)
	analyses := h.Analyze("koira")
	if len(analyses) != 1 {
		t.Fatalf("got %d analyses, want 1", len(analyses))
	}
	if got := analyses[0].Value("BASEFORM"); got != "koira" {
		t.Errorf("BASEFORM = %q", got)
	}
}

func TestHandleHyphenate(t *testing.T) {
	h := newTestHandle(t, false)
	if got := h.Hyphenate("koira"); got != "   - " {
		t.Errorf("Hyphenate(koira) = %q", got)
	}
	if got := h.InsertHyphens("koira", "-", false); got != "koi-ra" {
		t.Errorf("InsertHyphens(koira) = %q", got)
	}
}

func TestHandleTokensAndSentences(t *testing.T) {
	h := newTestHandle(t, false)

	tokens := h.Tokens("koira istuu")
	if len(tokens) != 3 || tokens[0].Kind != tokenize.KindWord {
		t.Fatalf("Tokens = %v", tokens)
	}

	sents := h.Sentences("Koira istuu. Kissa makaa.")
	if len(sents) != 2 {
		t.Fatalf("Sentences = %v", sents)
	}
}

func TestHandleAutoCorrect(t *testing.T) {
	h := newTestHandle(t, true)

	got, ok := h.AutoCorrect("kiora")
	if !ok || got != "koira" {
		t.Fatalf("AutoCorrect(kiora) = %q, %t", got, ok)
	}

	// Uppercase lookup falls back to the lowered form and restores the
	// initial capital on the correction.
	got, ok = h.AutoCorrect("Kiora")
	if !ok || got != "Koira" {
		t.Fatalf("AutoCorrect(Kiora) = %q, %t", got, ok)
	}

	if _, ok := h.AutoCorrect("koira"); ok {
		t.Error("koira should have no autocorrect entry")
	}
}

func TestHandleAutoCorrectWithoutTransducer(t *testing.T) {
	h := newTestHandle(t, false)
	if _, ok := h.AutoCorrect("kiora"); ok {
		t.Error("expected no correction without autocorr.vfst")
	}
}

func TestHandleCacheSize(t *testing.T) {
	h := newTestHandle(t, false)
	if err := h.SetCacheSize(-1); err == nil {
		t.Error("negative cache size should be rejected")
	}
	if err := h.SetCacheSize(2); err != nil {
		t.Fatal(err)
	}
	// Repeated checks go through the cache and keep their verdicts.
	for i := 0; i < 3; i++ {
		if !h.Spell("koira") || h.Spell("kissa") {
			t.Fatal("cached verdicts changed")
		}
	}
	if err := h.SetCacheSize(0); err != nil {
		t.Fatal(err)
	}
	if !h.Spell("koira") {
		t.Error("verdict changed after disabling cache")
	}
}

func TestHandleSuggestionStrategy(t *testing.T) {
	h := newTestHandle(t, false)
	if err := h.SetSuggestionStrategy(StrategyOCR); err != nil {
		t.Fatal(err)
	}
	if err := h.SetSuggestionStrategy(StrategyKind(42)); err == nil {
		t.Error("unknown strategy should be rejected")
	}
}

func TestHandleVersion(t *testing.T) {
	h := &Handle{}
	if h.Version() != Version {
		t.Error("Version mismatch")
	}
}

func TestAttributeValues(t *testing.T) {
	h := &Handle{}
	cases := h.AttributeValues("SIJAMUOTO")
	if len(cases) != 16 {
		t.Fatalf("expected 16 case values, got %d", len(cases))
	}
	if cases[0] != "nimento" {
		t.Errorf("first case value = %q, want nimento", cases[0])
	}
	if got := h.AttributeValues("NUMBER"); len(got) != 2 {
		t.Errorf("NUMBER values = %v", got)
	}
	if h.AttributeValues("BASEFORM") != nil {
		t.Error("open-class attribute should return nil")
	}
	if h.AttributeValues("NOSUCH") != nil {
		t.Error("unknown attribute should return nil")
	}

	cases[0] = "mutated"
	if h.AttributeValues("SIJAMUOTO")[0] != "nimento" {
		t.Error("returned slice should be a copy")
	}
}
