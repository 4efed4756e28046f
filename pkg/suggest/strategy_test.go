package suggest

import "testing"

func TestTypingStrategyPrimaryShortCircuits(t *testing.T) {
	sp := newMockSpeller("koira")
	st := NewStatus([]rune("koira"), 5)
	NewTypingStrategy(DefaultTypingCost, nil).Generate(sp, st)
	if st.Count() != 1 || st.Suggestions()[0].Word != "koira" {
		t.Errorf("suggestions = %v, want [koira]", words(st))
	}
}

func TestTypingStrategyDeletion(t *testing.T) {
	sp := newMockSpeller("koira")
	st := NewStatus([]rune("koiraa"), 5)
	NewTypingStrategy(DefaultTypingCost, nil).Generate(sp, st)
	if !contains(st, "koira") {
		t.Errorf("suggestions = %v, want koira", words(st))
	}
}

func TestTypingStrategySwap(t *testing.T) {
	sp := newMockSpeller("koira")
	st := NewStatus([]rune("kiora"), 5)
	NewTypingStrategy(DefaultTypingCost, nil).Generate(sp, st)
	if !contains(st, "koira") {
		t.Errorf("suggestions = %v, want koira", words(st))
	}
}

func TestTypingStrategySplitWord(t *testing.T) {
	sp := newMockSpeller("koira", "kissa")
	st := NewStatus([]rune("koirakissa"), 5)
	NewTypingStrategy(DefaultTypingCost, nil).Generate(sp, st)
	if !contains(st, "koira kissa") {
		t.Errorf("suggestions = %v, want 'koira kissa'", words(st))
	}
}

func TestTypingStrategyVowelHarmony(t *testing.T) {
	sp := newMockSpeller("tyhmä")
	st := NewStatus([]rune("tyhma"), 5)
	NewTypingStrategy(DefaultTypingCost, nil).Generate(sp, st)
	if !contains(st, "tyhmä") {
		t.Errorf("suggestions = %v, want tyhmä", words(st))
	}
}

func TestOCRStrategyReplacement(t *testing.T) {
	sp := newMockSpeller("koira")
	st := NewStatus([]rune("k0ira"), 5)
	NewOCRStrategy(DefaultOCRCost, nil).Generate(sp, st)
	if !contains(st, "koira") {
		t.Errorf("suggestions = %v, want koira", words(st))
	}
}

func TestOCRStrategyDoubleReplacement(t *testing.T) {
	sp := newMockSpeller("koira")
	st := NewStatus([]rune("k0irä"), 5)
	NewOCRStrategy(DefaultOCRCost, nil).Generate(sp, st)
	if !contains(st, "koira") {
		t.Errorf("suggestions = %v, want koira", words(st))
	}
}

func TestStrategyRespectsMaxSuggestions(t *testing.T) {
	sp := newMockSpeller("a", "b", "c", "d", "e")
	st := NewStatus([]rune("x"), 2)
	NewTypingStrategy(DefaultTypingCost, nil).Generate(sp, st)
	if st.Count() > 2 {
		t.Errorf("count = %d, want at most 2", st.Count())
	}
}

func TestStrategyTerminatesOnTinyBudget(t *testing.T) {
	sp := newMockSpeller("koira")
	st := NewStatus([]rune("xyzzyxyzzy"), 5)
	NewTypingStrategy(1, nil).Generate(sp, st)
}

func TestStrategyGeneratorCounts(t *testing.T) {
	typing := NewTypingStrategy(DefaultTypingCost, nil)
	if len(typing.primary) != 2 || len(typing.secondary) != 17 {
		t.Errorf("typing generators = %d/%d, want 2/17", len(typing.primary), len(typing.secondary))
	}
	ocr := NewOCRStrategy(DefaultOCRCost, nil)
	if len(ocr.primary) != 1 || len(ocr.secondary) != 2 {
		t.Errorf("ocr generators = %d/%d, want 1/2", len(ocr.primary), len(ocr.secondary))
	}
}
