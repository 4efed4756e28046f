package tokenize

import "testing"

func tok(t *testing.T, text string) []Token {
	t.Helper()
	tokens := Tokens(text)
	var joined string
	for _, tk := range tokens {
		joined += tk.Text
	}
	if joined != text {
		t.Fatalf("tokens of %q do not round trip: got %q", text, joined)
	}
	return tokens
}

func wantTokens(t *testing.T, text string, want []Token) {
	t.Helper()
	got := tok(t, text)
	if len(got) != len(want) {
		t.Fatalf("Tokens(%q) = %v, want %v", text, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens(%q)[%d] = %v, want %v", text, i, got[i], want[i])
		}
	}
}

func TestTokensSimpleWords(t *testing.T) {
	wantTokens(t, "kissa istuu", []Token{
		{KindWord, "kissa"},
		{KindWhitespace, " "},
		{KindWord, "istuu"},
	})
}

func TestTokensTrailingDotSeparate(t *testing.T) {
	wantTokens(t, "koira.", []Token{
		{KindWord, "koira"},
		{KindPunctuation, "."},
	})
}

func TestTokensCompoundWithHyphen(t *testing.T) {
	wantTokens(t, "linja-auto", []Token{{KindWord, "linja-auto"}})
}

func TestTokensHyphenAtEndOfWord(t *testing.T) {
	// "linja- ja kuorma-autot": the dangling hyphen stays on the word.
	wantTokens(t, "linja- ja", []Token{
		{KindWord, "linja-"},
		{KindWhitespace, " "},
		{KindWord, "ja"},
	})
}

func TestTokensLeadingHyphenJoinsWord(t *testing.T) {
	wantTokens(t, "-sta", []Token{{KindWord, "-sta"}})
}

func TestTokensLoneHyphen(t *testing.T) {
	wantTokens(t, "-", []Token{{KindPunctuation, "-"}})
}

func TestTokensApostropheAndColon(t *testing.T) {
	wantTokens(t, "vaa'an", []Token{{KindWord, "vaa'an"}})
	wantTokens(t, "EU:ssa", []Token{{KindWord, "EU:ssa"}})
	// Colon not followed by a letter ends the word.
	wantTokens(t, "EU: ", []Token{
		{KindWord, "EU"},
		{KindPunctuation, ":"},
		{KindWhitespace, " "},
	})
}

func TestTokensNumbers(t *testing.T) {
	wantTokens(t, "1,234", []Token{{KindWord, "1,234"}})
	wantTokens(t, "1.2.3", []Token{{KindWord, "1.2.3"}})
	// A comma without a following digit is punctuation.
	wantTokens(t, "1, 2", []Token{
		{KindWord, "1"},
		{KindPunctuation, ","},
		{KindWhitespace, " "},
		{KindWord, "2"},
	})
}

func TestTokensDotBetweenLettersAndDigit(t *testing.T) {
	// A dot continues a word before a letter but not after letters
	// before a digit.
	wantTokens(t, "www.esimerkki", []Token{{KindWord, "www.esimerkki"}})
	wantTokens(t, "abc.1", []Token{
		{KindWord, "abc"},
		{KindPunctuation, "."},
		{KindWord, "1"},
	})
}

func TestTokensURL(t *testing.T) {
	wantTokens(t, "katso http://example.com/sivu?id=1 nyt", []Token{
		{KindWord, "katso"},
		{KindWhitespace, " "},
		{KindWord, "http://example.com/sivu?id=1"},
		{KindWhitespace, " "},
		{KindWord, "nyt"},
	})
}

func TestTokensURLDropsTrailingDot(t *testing.T) {
	wantTokens(t, "https://example.fi/ohje.", []Token{
		{KindWord, "https://example.fi/ohje"},
		{KindPunctuation, "."},
	})
}

func TestTokensEmail(t *testing.T) {
	wantTokens(t, "etunimi.sukunimi@example.fi", []Token{
		{KindWord, "etunimi.sukunimi@example.fi"},
	})
	wantTokens(t, "kirjoita osoitteeseen matti@example.fi.", []Token{
		{KindWord, "kirjoita"},
		{KindWhitespace, " "},
		{KindWord, "osoitteeseen"},
		{KindWhitespace, " "},
		{KindWord, "matti@example.fi"},
		{KindPunctuation, "."},
	})
}

func TestTokensEllipsis(t *testing.T) {
	wantTokens(t, "No...", []Token{
		{KindWord, "No"},
		{KindPunctuation, "..."},
	})
}

func TestTokensWhitespaceRun(t *testing.T) {
	wantTokens(t, "a \t\nb", []Token{
		{KindWord, "a"},
		{KindWhitespace, " \t\n"},
		{KindWord, "b"},
	})
}

func TestTokensUnknown(t *testing.T) {
	wantTokens(t, "a@", []Token{
		{KindWord, "a"},
		{KindUnknown, "@"},
	})
}

func TestTokensSoftHyphenInsideWord(t *testing.T) {
	wantTokens(t, "kis­sa", []Token{{KindWord, "kis­sa"}})
}

func TestTokensRoundTripMixedText(t *testing.T) {
	tok(t, "Hei! Käykö 24.12. vai 1,5 €? Katso https://example.fi/x#a "+
		"tai kirjoita a.b@example.fi... \"Sopii\", hän sanoi.")
}

func TestTokensEmptyInput(t *testing.T) {
	if got := Tokens(""); got != nil {
		t.Fatalf("Tokens(\"\") = %v, want nil", got)
	}
}
