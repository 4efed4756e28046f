package sanakko

import (
	"sync"

	"github.com/louhiala/sanakko/internal/chars"
	"github.com/louhiala/sanakko/pkg/fst"
)

const autocorrSoftHyphen = '­'

// autocorrector looks up common misspellings in the unweighted
// autocorr.vfst transducer, which maps each known error directly to its
// correction.
type autocorrector struct {
	mu  sync.Mutex
	t   *fst.Unweighted
	cfg *fst.Config
}

func newAutocorrector(t *fst.Unweighted) *autocorrector {
	return &autocorrector{t: t, cfg: t.NewConfig(fst.DefaultBufferSize)}
}

// correct returns the correction for word, if the transducer knows one.
// Soft hyphens are stripped before lookup. A word starting with an
// uppercase letter that has no entry as written is retried lowercased,
// and the correction gets its first letter uppercased back.
func (a *autocorrector) correct(word []rune) (string, bool) {
	buffer := make([]rune, 0, len(word))
	for _, c := range word {
		if c != autocorrSoftHyphen {
			buffer = append(buffer, c)
		}
	}
	if len(buffer) == 0 {
		return "", false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if out, ok := a.lookup(buffer); ok {
		return out, true
	}
	if chars.IsUpper(buffer[0]) {
		lowered := make([]rune, len(buffer))
		copy(lowered, buffer)
		lowered[0] = chars.Lower(lowered[0])
		if out, ok := a.lookup(lowered); ok {
			corrected := []rune(out)
			if len(corrected) > 0 {
				corrected[0] = chars.Upper(corrected[0])
			}
			return string(corrected), true
		}
	}
	return "", false
}

func (a *autocorrector) lookup(word []rune) (string, bool) {
	a.t.Prepare(a.cfg, word)
	return a.t.Next(a.cfg)
}

// AutoCorrect returns the replacement the auto-correction dictionary
// holds for word, if any. The second return value reports whether a
// correction was found. Without autocorr.vfst in the bundle it always
// reports false.
func (h *Handle) AutoCorrect(word string) (string, bool) {
	if h.autocorr == nil {
		return "", false
	}
	return h.autocorr.correct([]rune(word))
}
