package fst

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Unweighted is an unweighted VFST transducer, used for morphology and
// auto-correction dictionaries. It is immutable after loading and safe for
// concurrent traversal as long as each traversal uses its own Config.
type Unweighted struct {
	table      transitionTable
	syms       *symbolTable
	unknownSym uint16
}

// NewUnweighted parses raw VFST bytes into an unweighted transducer. The
// transducer keeps referencing data, so the buffer must stay alive and
// unmodified for the transducer's lifetime.
func NewUnweighted(data []byte) (*Unweighted, error) {
	weighted, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if weighted {
		return nil, ErrTypeMismatch
	}

	syms, symEnd, err := parseSymbolTable(data, headerSize)
	if err != nil {
		return nil, err
	}
	offset := symEnd
	if partial := symEnd % transitionSize; partial > 0 {
		offset += transitionSize - partial
	}
	if offset >= len(data) {
		return nil, ErrTooShort
	}
	remaining := data[offset:]
	if len(remaining)%transitionSize != 0 {
		return nil, ErrAlignment
	}

	log.Debugf("Loaded unweighted transducer: %d symbols, %d transitions",
		len(syms.strings), len(remaining)/transitionSize)

	return &Unweighted{
		table:      transitionTable{data: remaining},
		syms:       syms,
		unknownSym: uint16(len(syms.strings)),
	}, nil
}

// NewConfig allocates traversal state sized for this transducer.
func (t *Unweighted) NewConfig(bufferSize int) *Config {
	return newConfig(t.syms.featureCount, bufferSize)
}

// Prepare stages input for traversal, resetting any earlier state in cfg.
// It reports whether every input character is a known symbol. Unknown
// characters are mapped to a sentinel so traversal can still match paths
// that end before them, which prefix matching relies on.
func (t *Unweighted) Prepare(cfg *Config, input []rune) bool {
	cfg.reset()
	if len(input) >= cfg.bufferSize {
		return false
	}
	allKnown := true
	for _, ch := range input {
		sym, ok := t.syms.charToSymbol[ch]
		if !ok {
			sym = t.unknownSym
			allKnown = false
		}
		cfg.inputSymbolStack[cfg.inputLength] = sym
		cfg.inputLength++
	}
	return allKnown
}

// Next yields the output of the next accepting path that consumes the whole
// input, or ok=false when the paths are exhausted.
func (t *Unweighted) Next(cfg *Config) (output string, ok bool) {
	output, _, ok = t.next(cfg, false)
	return output, ok
}

// NextPrefix is like Next but accepts paths that consume only a prefix of
// the input, reporting the consumed length. Auto-correction uses it to look
// up entries at the start of longer text.
func (t *Unweighted) NextPrefix(cfg *Config) (output string, prefixLen int, ok bool) {
	return t.next(cfg, true)
}

// next runs the DFS until the next accepting path or exhaustion. The stacks
// in cfg carry the whole traversal state so the walk resumes where the
// previous call left off.
func (t *Unweighted) next(cfg *Config, prefix bool) (string, int, bool) {
	table := t.table
	firstNormal := t.syms.firstNormalChar

	var loopCounter uint32

outer:
	for loopCounter < MaxLoopCount {
		stateIdx := cfg.stateIndexStack[cfg.stackDepth]
		currentIdx := cfg.currentTransStack[cfg.stackDepth]
		maxTC := table.maxTC(stateIdx)

		tc := currentIdx - stateIdx
		transIdx := currentIdx

		for tc <= maxTC {
			if tc == 1 && maxTC >= 255 {
				// skip the overflow cell
				tc++
				transIdx++
			}
			symIn := table.symIn(transIdx)

			if symIn == finalSym {
				if cfg.inputDepth == cfg.inputLength || prefix {
					var sb strings.Builder
					for i := 0; i < cfg.stackDepth; i++ {
						sb.WriteString(t.syms.strings[cfg.outputSymbolStack[i]])
					}
					cfg.currentTransStack[cfg.stackDepth] = transIdx + 1
					return sb.String(), cfg.inputDepth, true
				}
			} else if (cfg.inputDepth < cfg.inputLength && cfg.inputSymbolStack[cfg.inputDepth] == symIn) ||
				(symIn < firstNormal && t.flagCheck(cfg, symIn)) {
				if cfg.stackDepth+2 == cfg.bufferSize {
					return "", 0, false
				}
				symOut := table.symOut(transIdx)
				if symOut < firstNormal {
					symOut = 0
				}
				cfg.outputSymbolStack[cfg.stackDepth] = symOut
				cfg.currentTransStack[cfg.stackDepth] = transIdx
				cfg.stackDepth++
				target := table.target(transIdx)
				cfg.stateIndexStack[cfg.stackDepth] = target
				cfg.currentTransStack[cfg.stackDepth] = target
				if symIn >= firstNormal {
					cfg.inputDepth++
				}
				loopCounter++
				continue outer
			}

			tc++
			transIdx++
		}

		if cfg.stackDepth == 0 {
			return "", 0, false
		}

		// backtrack
		cfg.stackDepth--
		prevSymIn := table.symIn(cfg.currentTransStack[cfg.stackDepth])
		if prevSymIn >= firstNormal {
			cfg.inputDepth--
		} else if t.syms.featureCount > 0 && prevSymIn != 0 {
			cfg.flagDepth--
			cfg.flagValues[cfg.flagUndoFeature[cfg.flagDepth]] = cfg.flagUndoValue[cfg.flagDepth]
		}
		cfg.currentTransStack[cfg.stackDepth]++

		loopCounter++
	}

	return "", 0, false
}

// flagCheck evaluates a flag diacritic transition, recording undo state so
// a later backtrack restores the previous value.
func (t *Unweighted) flagCheck(cfg *Config, symbol uint16) bool {
	if t.syms.featureCount == 0 || symbol == 0 {
		return true
	}
	ofv := t.syms.diacritics[symbol]
	current := cfg.flagValues[ofv.feature]

	result, newValue := checkFlag(ofv, current)
	if result == flagReject {
		return false
	}
	// the undo stack records even no-op checks so pop counts stay aligned
	cfg.flagUndoFeature[cfg.flagDepth] = ofv.feature
	cfg.flagUndoValue[cfg.flagDepth] = current
	if result == flagAcceptUpdate {
		cfg.flagValues[ofv.feature] = newValue
	}
	cfg.flagDepth++
	return true
}
