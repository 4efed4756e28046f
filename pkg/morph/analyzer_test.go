package morph

import (
	"encoding/binary"
	"testing"
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

func appendWeightedTrans(data []byte, symIn, symOut, target uint32, weight int16) []byte {
	data = binary.LittleEndian.AppendUint32(data, symIn)
	data = binary.LittleEndian.AppendUint32(data, symOut)
	data = binary.LittleEndian.AppendUint32(data, target)
	data = binary.LittleEndian.AppendUint16(data, uint16(weight))
	data = append(data, 0, 0)
	return data
}

// koiraVfst builds a transducer that maps "koira" to the tagged analysis
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

func TestFinnishAnalyzerKnownWord(t *testing.T) {
	a, err := NewFinnishAnalyzer(koiraVfst())
	if err != nil {
		t.Fatal(err)
	}

	analyses := a.Analyze([]rune("koira"))
	if len(analyses) != 1 {
		t.Fatalf("got %d analyses, want 1", len(analyses))
	}
	got := analyses[0]

	want := map[string]string{
		AttrClass:     "nimisana",
		AttrSijamuoto: "nimento",
		AttrNumber:    "singular",
		AttrStructure: "=ppppp",
		AttrBaseform:  "koira",
		AttrFstOutput: "[Ln][Xp]koira[X]koira[Sn][Ny]",
		AttrWordbases: "+koira(koira)",
	}
	for key, value := range want {
		if v := got.Value(key); v != value {
			t.Errorf("%s = %q, want %q", key, v, value)
		}
	}
	if got.Has(AttrWordids) {
		t.Error("WORDIDS present without [Xs] markers")
	}
	if got.Has(AttrComparison) {
		t.Error("COMPARISON present on a plain noun")
	}
}

func TestFinnishAnalyzerCaseInsensitive(t *testing.T) {
	a, err := NewFinnishAnalyzer(koiraVfst())
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Analyze([]rune("KOIRA")); len(got) != 1 {
		t.Errorf("uppercase input: got %d analyses, want 1", len(got))
	}
}

func TestFinnishAnalyzerUnknownWord(t *testing.T) {
	a, err := NewFinnishAnalyzer(koiraVfst())
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Analyze([]rune("kissa")); len(got) != 0 {
		t.Errorf("unknown word: got %d analyses, want 0", len(got))
	}
}

func TestFinnishAnalyzerBasicOmitsDerived(t *testing.T) {
	a, err := NewFinnishAnalyzer(koiraVfst())
	if err != nil {
		t.Fatal(err)
	}
	analyses := a.AnalyzeBasic([]rune("koira"))
	if len(analyses) != 1 {
		t.Fatalf("got %d analyses, want 1", len(analyses))
	}
	got := analyses[0]
	for _, key := range []string{AttrFstOutput, AttrBaseform, AttrWordbases} {
		if got.Has(key) {
			t.Errorf("%s present in basic analysis", key)
		}
	}
	if got.Value(AttrClass) != "nimisana" {
		t.Errorf("CLASS = %q, want nimisana", got.Value(AttrClass))
	}
}

func TestFinnishAnalyzerTooLongWord(t *testing.T) {
	a, err := NewFinnishAnalyzer(koiraVfst())
	if err != nil {
		t.Fatal(err)
	}
	long := make([]rune, maxWordChars+1)
	for i := range long {
		long[i] = 'a'
	}
	if got := a.Analyze(long); got != nil {
		t.Errorf("overlong word: got %d analyses, want none", len(got))
	}
}

func TestPostProcessRemovesNegativeFromNoun(t *testing.T) {
	a := NewAnalysis()
	a.Set(AttrClass, "nimisana")
	a.Set(AttrNegative, "true")
	postProcessAttributes(a)
	if a.Has(AttrNegative) {
		t.Error("NEGATIVE kept on a noun")
	}
}

func TestPostProcessKeepsNegativeOnVerb(t *testing.T) {
	a := NewAnalysis()
	a.Set(AttrClass, "teonsana")
	a.Set(AttrNegative, "true")
	a.Set(AttrMood, "indicative")
	postProcessAttributes(a)
	if !a.Has(AttrNegative) {
		t.Error("NEGATIVE dropped from a finite verb")
	}
}

func TestPostProcessPastPassiveForcesLaatusana(t *testing.T) {
	a := NewAnalysis()
	a.Set(AttrClass, "teonsana")
	a.Set(AttrParticiple, "past_passive")
	postProcessAttributes(a)
	if a.Value(AttrClass) != "laatusana" {
		t.Errorf("CLASS = %q, want laatusana", a.Value(AttrClass))
	}
}

func TestPostProcessRemovesNumberForKerrontosti(t *testing.T) {
	a := NewAnalysis()
	a.Set(AttrClass, "laatusana")
	a.Set(AttrSijamuoto, "kerrontosti")
	a.Set(AttrNumber, "singular")
	postProcessAttributes(a)
	if a.Has(AttrNumber) {
		t.Error("NUMBER kept for kerrontosti")
	}
}

func TestPostProcessDefaultComparison(t *testing.T) {
	a := NewAnalysis()
	a.Set(AttrClass, "laatusana")
	postProcessAttributes(a)
	if a.Value(AttrComparison) != "positive" {
		t.Errorf("COMPARISON = %q, want positive", a.Value(AttrComparison))
	}

	b := NewAnalysis()
	b.Set(AttrClass, "nimisana")
	b.Set(AttrComparison, "comparative")
	postProcessAttributes(b)
	if b.Has(AttrComparison) {
		t.Error("COMPARISON kept on a noun")
	}
}

func TestDuplicateOrgName(t *testing.T) {
	fst := runes("[Ln][Xp]sana[X]sana[Bc][Ion][Xp]pari[X]pari[Sn][Ny]")

	a := NewAnalysis()
	a.Set(AttrClass, "teonsana")
	if duplicateOrgName(a, fst) != nil {
		t.Error("duplicate produced for a verb")
	}

	a = NewAnalysis()
	a.Set(AttrClass, "nimisana")
	a.Set(AttrStructure, "=pppppppp")
	dup := duplicateOrgName(a, fst)
	if dup == nil {
		t.Fatal("no duplicate for organizational name")
	}
	if dup.Value(AttrClass) != "nimi" {
		t.Errorf("dup CLASS = %q, want nimi", dup.Value(AttrClass))
	}
	if dup.Value(AttrStructure) != "=ippppppp" {
		t.Errorf("dup STRUCTURE = %q, want =ippppppp", dup.Value(AttrStructure))
	}
	if dup.Value(AttrBaseform) != "Sanapari" {
		t.Errorf("dup BASEFORM = %q, want Sanapari", dup.Value(AttrBaseform))
	}
	// The original analysis is untouched.
	if a.Value(AttrStructure) != "=pppppppp" {
		t.Errorf("original STRUCTURE mutated to %q", a.Value(AttrStructure))
	}
}

func TestWeightedAnalyzer(t *testing.T) {
	symbols := []string{"", "a", "b"}
	data := buildVfst(true, symbols, func(data []byte) []byte {
		data = appendWeightedTrans(data, 1, 1, 1, 10)
		data = appendWeightedTrans(data, 2, 2, 2, 20)
		data = appendWeightedTrans(data, 0xFFFFFFFF, 0, 0, 5)
		return data
	})

	a, err := NewWeightedAnalyzer(data)
	if err != nil {
		t.Fatal(err)
	}
	analyses := a.Analyze([]rune("ab"))
	if len(analyses) != 1 {
		t.Fatalf("got %d analyses, want 1", len(analyses))
	}
	got := analyses[0]
	if got.Value(AttrFstOutput) != "ab" {
		t.Errorf("FSTOUTPUT = %q, want %q", got.Value(AttrFstOutput), "ab")
	}
	// Path weight 30 plus final weight 5, exp(-0.35).
	if got.Value(AttrWeight) != "0.704688090" {
		t.Errorf("WEIGHT = %q, want 0.704688090", got.Value(AttrWeight))
	}

	if len(a.Analyze([]rune("ax"))) != 0 {
		t.Error("unknown character should yield no analyses")
	}
}

func TestLogWeightToProb(t *testing.T) {
	if p := logWeightToProb(0); p < 0.999999999 || p > 1.000000001 {
		t.Errorf("weight 0: prob = %v, want 1", p)
	}
	if p := logWeightToProb(100); p > 0.37 || p < 0.36 {
		t.Errorf("weight 100: prob = %v, want about exp(-1)", p)
	}
	if p := logWeightToProb(-100); p < 2.7 || p > 2.72 {
		t.Errorf("weight -100: prob = %v, want about exp(1)", p)
	}
}

func TestAnalysisAttributeMap(t *testing.T) {
	a := NewAnalysis()
	a.Set(AttrBaseform, "koira")
	a.Set(AttrClass, "nimisana")
	a.Set(AttrBaseform, "kissa")

	if v := a.Value(AttrBaseform); v != "kissa" {
		t.Errorf("Set did not replace: %q", v)
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
	keys := a.Keys()
	if len(keys) != 2 || keys[0] != AttrBaseform || keys[1] != AttrClass {
		t.Errorf("Keys = %v, want insertion order", keys)
	}

	a.Remove(AttrBaseform)
	if a.Has(AttrBaseform) || a.Len() != 1 {
		t.Error("Remove left state behind")
	}
	a.Remove(AttrBaseform) // no-op

	b := a.Clone()
	b.Set(AttrClass, "teonsana")
	if a.Value(AttrClass) != "nimisana" {
		t.Error("Clone shares state with original")
	}
}
