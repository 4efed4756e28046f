package userdict

import (
	"reflect"
	"testing"

	"github.com/louhiala/sanakko/pkg/speller"
)

type memStore struct {
	words map[string]struct{}
	fail  error
}

func newMemStore(words ...string) *memStore {
	m := &memStore{words: make(map[string]struct{})}
	for _, w := range words {
		m.words[w] = struct{}{}
	}
	return m
}

func (m *memStore) Add(word string) error {
	if m.fail != nil {
		return m.fail
	}
	m.words[word] = struct{}{}
	return nil
}

func (m *memStore) Remove(word string) error {
	if m.fail != nil {
		return m.fail
	}
	delete(m.words, word)
	return nil
}

func (m *memStore) All() ([]string, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]string, 0, len(m.words))
	for w := range m.words {
		out = append(out, w)
	}
	return out, nil
}

type failSpeller struct{}

func (failSpeller) Spell(word []rune) speller.Result { return speller.ResultFailed }

func TestAddRemoveContains(t *testing.T) {
	d := New(nil)
	if err := d.Add("sanakko"); err != nil {
		t.Fatal(err)
	}
	if !d.Contains("sanakko") {
		t.Error("added word not found")
	}
	if d.Contains("sana") {
		t.Error("prefix must not match as a word")
	}
	if d.Len() != 1 {
		t.Errorf("len = %d, want 1", d.Len())
	}
	if err := d.Remove("sanakko"); err != nil {
		t.Fatal(err)
	}
	if d.Contains("sanakko") || d.Len() != 0 {
		t.Error("removed word still present")
	}
}

func TestAddDuplicateCountsOnce(t *testing.T) {
	d := New(nil)
	_ = d.Add("sana")
	_ = d.Add("sana")
	if d.Len() != 1 {
		t.Errorf("len = %d, want 1", d.Len())
	}
}

func TestLoadFromStore(t *testing.T) {
	d := New(newMemStore("eka", "toka"))
	if err := d.Load(); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 || !d.Contains("eka") || !d.Contains("toka") {
		t.Errorf("load gave %d words", d.Len())
	}
}

func TestAddPersistsToStore(t *testing.T) {
	store := newMemStore()
	d := New(store)
	if err := d.Add("uusi"); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.words["uusi"]; !ok {
		t.Error("word not persisted")
	}
}

func TestWordsWithPrefix(t *testing.T) {
	d := New(nil)
	for _, w := range []string{"sana", "sanakirja", "kirja"} {
		_ = d.Add(w)
	}
	got := d.WordsWithPrefix("sana")
	want := []string{"sana", "sanakirja"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordsWithPrefix = %v, want %v", got, want)
	}
}

func TestWrapSpeller(t *testing.T) {
	d := New(nil)
	_ = d.Add("sanakko")
	sp := WrapSpeller(d, failSpeller{})

	if got := sp.Spell([]rune("sanakko")); got != speller.ResultOk {
		t.Errorf("user word = %v, want Ok", got)
	}
	if got := sp.Spell([]rune("Sanakko")); got != speller.ResultOk {
		t.Errorf("capitalized user word = %v, want Ok", got)
	}
	if got := sp.Spell([]rune("tuntematon")); got != speller.ResultFailed {
		t.Errorf("unknown word = %v, want Failed", got)
	}
}
