// Package userdict keeps a user-maintained word list that the spell
// checking pipeline consults before the transducer dictionary. Words live
// in an in-memory trie; an optional store persists them across sessions.
package userdict

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/louhiala/sanakko/internal/chars"
	"github.com/louhiala/sanakko/pkg/speller"
)

// Store persists user words outside the process.
type Store interface {
	Add(word string) error
	Remove(word string) error
	All() ([]string, error)
}

// Dictionary is an in-memory user word list. Safe for concurrent use.
type Dictionary struct {
	mu    sync.RWMutex
	trie  *patricia.Trie
	count int
	store Store
}

// New creates an empty dictionary. The store may be nil, in which case
// words live only in memory.
func New(store Store) *Dictionary {
	return &Dictionary{trie: patricia.NewTrie(), store: store}
}

// Load replaces the in-memory contents with the words in the store.
func (d *Dictionary) Load() error {
	if d.store == nil {
		return nil
	}
	words, err := d.store.All()
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.trie = patricia.NewTrie()
	d.count = 0
	for _, w := range words {
		if d.trie.Insert(patricia.Prefix(w), struct{}{}) {
			d.count++
		}
	}
	log.Debugf("Loaded %d user words", d.count)
	return nil
}

// Add inserts a word, persisting it when a store is attached.
func (d *Dictionary) Add(word string) error {
	if word == "" {
		return nil
	}
	d.mu.Lock()
	if d.trie.Insert(patricia.Prefix(word), struct{}{}) {
		d.count++
	}
	d.mu.Unlock()
	if d.store != nil {
		return d.store.Add(word)
	}
	return nil
}

// Remove deletes a word, removing it from the store when one is attached.
func (d *Dictionary) Remove(word string) error {
	d.mu.Lock()
	if d.trie.Delete(patricia.Prefix(word)) {
		d.count--
	}
	d.mu.Unlock()
	if d.store != nil {
		return d.store.Remove(word)
	}
	return nil
}

// Contains reports whether the exact word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.Get(patricia.Prefix(word)) != nil
}

// Len returns the number of stored words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.count
}

// WordsWithPrefix returns the stored words starting with the prefix, in
// trie order.
func (d *Dictionary) WordsWithPrefix(prefix string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []string
	_ = d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	return out
}

// spellerAdapter accepts user words before delegating to the wrapped
// speller.
type spellerAdapter struct {
	dict  *Dictionary
	inner speller.Speller
}

// WrapSpeller returns a speller that accepts the dictionary's words in
// addition to everything the wrapped speller accepts. A stored lowercase
// word is also accepted with its first letter capitalized, so user words
// pass at sentence starts.
func WrapSpeller(dict *Dictionary, inner speller.Speller) speller.Speller {
	return &spellerAdapter{dict: dict, inner: inner}
}

func (a *spellerAdapter) Spell(word []rune) speller.Result {
	if len(word) > 0 && a.dict.Len() > 0 {
		if a.dict.Contains(string(word)) {
			return speller.ResultOk
		}
		if chars.IsUpper(word[0]) {
			lowered := make([]rune, len(word))
			copy(lowered, word)
			lowered[0] = chars.Lower(lowered[0])
			if a.dict.Contains(string(lowered)) {
				return speller.ResultOk
			}
		}
	}
	return a.inner.Spell(word)
}
