// Package suggest produces spelling correction candidates for misspelled
// words. Individual generators apply one class of edit operation each
// (deletion, insertion, replacement, swap and so on) and validate the
// candidates through a speller. A strategy composes generators into a
// pipeline with a shared cost budget.
package suggest

import "sort"

// Suggestion is a correction candidate with its computed priority.
// Lower priority values indicate better suggestions.
type Suggestion struct {
	Word     string
	Priority int
}

// Status tracks the state of one suggestion search: collected candidates,
// the cost budget, and abort conditions. Every spell check during the
// search charges one cost unit.
type Status struct {
	word           []rune
	maxSuggestions int
	maxCost        int
	currentCost    int
	suggestions    []Suggestion
	seen           map[string]struct{}
}

// NewStatus creates a search state for the given word.
func NewStatus(word []rune, maxSuggestions int) *Status {
	return &Status{
		word:           word,
		maxSuggestions: maxSuggestions,
		suggestions:    make([]Suggestion, 0, maxSuggestions),
		seen:           make(map[string]struct{}),
	}
}

// ShouldAbort reports whether the search should stop: either the maximum
// suggestion count was reached or the cost budget ran out. An empty result
// set doubles the budget so hard words get a longer search.
func (s *Status) ShouldAbort() bool {
	if len(s.suggestions) >= s.maxSuggestions {
		return true
	}
	if s.currentCost < s.maxCost {
		return false
	}
	if len(s.suggestions) == 0 && s.currentCost < 2*s.maxCost {
		return false
	}
	return true
}

// Charge consumes one unit of the cost budget.
func (s *Status) Charge() {
	s.currentCost++
}

// SetMaxCost sets the cost budget for the search.
func (s *Status) SetMaxCost(maxCost int) {
	s.maxCost = maxCost
}

// Add records a suggestion. The stored priority is scaled by the number of
// suggestions found so far, which biases the ranking toward generators that
// ran earlier in the pipeline. Duplicates are silently dropped.
func (s *Status) Add(word string, priority int) {
	if len(s.suggestions) >= s.maxSuggestions {
		return
	}
	if _, dup := s.seen[word]; dup {
		return
	}
	s.seen[word] = struct{}{}
	s.suggestions = append(s.suggestions, Suggestion{
		Word:     word,
		Priority: priority * (len(s.suggestions) + 5),
	})
}

// Sort orders the collected suggestions by ascending priority.
func (s *Status) Sort() {
	sort.SliceStable(s.suggestions, func(i, j int) bool {
		return s.suggestions[i].Priority < s.suggestions[j].Priority
	})
}

// Count returns the number of suggestions collected so far.
func (s *Status) Count() int {
	return len(s.suggestions)
}

// MaxCount returns the suggestion capacity of the search.
func (s *Status) MaxCount() int {
	return s.maxSuggestions
}

// Word returns the word the search is generating suggestions for.
func (s *Status) Word() []rune {
	return s.word
}

// Suggestions returns the collected suggestions.
func (s *Status) Suggestions() []Suggestion {
	return s.suggestions
}
