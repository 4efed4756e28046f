// Package morph provides morphological analysis of Finnish words using
// finite state transducers.
//
// The transducer emits output strings with bracketed tags interleaved with
// surface characters, such as:
//
//	[Ln][Xp]koira[X]koira[Sn][Ny]
//
// This package parses those strings into structured Analysis values.
package morph

// Attribute keys present in analysis results.
const (
	AttrBaseform                 = "BASEFORM"
	AttrClass                    = "CLASS"
	AttrComparison               = "COMPARISON"
	AttrFocus                    = "FOCUS"
	AttrFstOutput                = "FSTOUTPUT"
	AttrKysymysliite             = "KYSYMYSLIITE"
	AttrMalagaVapaaJalkiosa      = "MALAGA_VAPAA_JALKIOSA"
	AttrMood                     = "MOOD"
	AttrNegative                 = "NEGATIVE"
	AttrNumber                   = "NUMBER"
	AttrParticiple               = "PARTICIPLE"
	AttrPerson                   = "PERSON"
	AttrPossessive               = "POSSESSIVE"
	AttrPossibleGeographicalName = "POSSIBLE_GEOGRAPHICAL_NAME"
	AttrRequireFollowingVerb     = "REQUIRE_FOLLOWING_VERB"
	AttrSijamuoto                = "SIJAMUOTO"
	AttrStructure                = "STRUCTURE"
	AttrTense                    = "TENSE"
	AttrWeight                   = "WEIGHT"
	AttrWordbases                = "WORDBASES"
	AttrWordids                  = "WORDIDS"
)

// Analysis is one morphological reading of a word, stored as attribute
// key-value pairs. Keys preserve insertion order so that repeated analyses
// of the same word render identically.
type Analysis struct {
	keys  []string
	attrs map[string]string
}

// NewAnalysis returns an empty analysis.
func NewAnalysis() *Analysis {
	return &Analysis{attrs: make(map[string]string)}
}

// Set stores an attribute value, replacing any previous value for the key.
func (a *Analysis) Set(key, value string) {
	if _, ok := a.attrs[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.attrs[key] = value
}

// Get returns the value for key and whether it is present.
func (a *Analysis) Get(key string) (string, bool) {
	v, ok := a.attrs[key]
	return v, ok
}

// Value returns the value for key, or the empty string if absent.
func (a *Analysis) Value(key string) string {
	return a.attrs[key]
}

// Has reports whether the attribute key is present.
func (a *Analysis) Has(key string) bool {
	_, ok := a.attrs[key]
	return ok
}

// Remove deletes an attribute. Removing an absent key is a no-op.
func (a *Analysis) Remove(key string) {
	if _, ok := a.attrs[key]; !ok {
		return
	}
	delete(a.attrs, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the attribute keys in insertion order.
func (a *Analysis) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of attributes.
func (a *Analysis) Len() int {
	return len(a.attrs)
}

// Clone returns an independent copy of the analysis.
func (a *Analysis) Clone() *Analysis {
	c := &Analysis{
		keys:  make([]string, len(a.keys)),
		attrs: make(map[string]string, len(a.attrs)),
	}
	copy(c.keys, a.keys)
	for k, v := range a.attrs {
		c.attrs[k] = v
	}
	return c
}
