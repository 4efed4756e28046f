package fst

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Weighted is a weighted VFST transducer, used for the spelling acceptor
// and the suggestion error model. Transitions out of a state are sorted by
// input symbol, which allows early termination and binary search during
// traversal.
type Weighted struct {
	table weightedTable
	syms  *symbolTable
}

// WeightedResult reports the accumulated path weight of a Next match and
// the deepest input position the traversal reached, whether or not the
// current path got there.
type WeightedResult struct {
	Weight int16
	// FirstNotReachedPosition is the first input index no explored path
	// consumed. The suggestion search uses it to place edits.
	FirstNotReachedPosition int
}

// NewWeighted parses raw VFST bytes into a weighted transducer. The buffer
// must stay alive and unmodified for the transducer's lifetime.
func NewWeighted(data []byte) (*Weighted, error) {
	weighted, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if !weighted {
		return nil, ErrTypeMismatch
	}

	syms, symEnd, err := parseSymbolTable(data, headerSize)
	if err != nil {
		return nil, err
	}
	offset := symEnd
	if partial := symEnd % weightedTransitionSize; partial > 0 {
		offset += weightedTransitionSize - partial
	}
	if offset >= len(data) {
		return nil, ErrTooShort
	}
	remaining := data[offset:]
	if len(remaining)%weightedTransitionSize != 0 {
		return nil, ErrAlignment
	}

	log.Debugf("Loaded weighted transducer: %d symbols, %d transitions",
		len(syms.strings), len(remaining)/weightedTransitionSize)

	return &Weighted{
		table: weightedTable{data: remaining},
		syms:  syms,
	}, nil
}

// NewConfig allocates traversal state sized for this transducer.
func (t *Weighted) NewConfig(bufferSize int) *WeightedConfig {
	return newWeightedConfig(t.syms.featureCount, bufferSize)
}

// Prepare stages input for traversal. Unlike the unweighted variant it
// fails outright on characters missing from the symbol table: a weighted
// search has no meaningful result past an unknown symbol.
func (t *Weighted) Prepare(cfg *WeightedConfig, input []rune) bool {
	cfg.reset()
	if len(input) >= cfg.bufferSize {
		return false
	}
	for _, ch := range input {
		sym, ok := t.syms.charToSymbol[ch]
		if !ok {
			return false
		}
		cfg.inputSymbolStack[cfg.inputLength] = uint32(sym)
		cfg.inputLength++
	}
	return true
}

// Next yields the next accepting path's output, discarding weight data.
func (t *Weighted) Next(cfg *WeightedConfig) (string, bool) {
	var res WeightedResult
	return t.NextWeighted(cfg, &res)
}

// NextWeighted yields the next accepting path's output along with its
// accumulated weight.
func (t *Weighted) NextWeighted(cfg *WeightedConfig, res *WeightedResult) (string, bool) {
	table := t.table
	firstNormal := uint32(t.syms.firstNormalChar)

	var loopCounter uint32
	res.FirstNotReachedPosition = cfg.inputDepth

outer:
	for loopCounter < MaxLoopCount {
		stateIdx := cfg.stateIndexStack[cfg.stackDepth]
		currentIdx := cfg.currentTransStack[cfg.stackDepth]
		maxTC := table.maxTC(stateIdx)

		var inputSym uint32
		if cfg.inputDepth < cfg.inputLength {
			inputSym = cfg.inputSymbolStack[cfg.inputDepth]
		}

		tc := currentIdx - stateIdx
		transIdx := currentIdx

		for tc <= maxTC {
			if tc == 1 && maxTC >= 255 {
				tc++
				transIdx++
			}
			symIn := table.symIn(transIdx)

			if symIn == weightedFinalSym {
				if cfg.inputDepth == cfg.inputLength {
					var sb strings.Builder
					for i := 0; i < cfg.stackDepth; i++ {
						sb.WriteString(t.syms.strings[cfg.outputSymbolStack[i]])
					}
					cfg.currentTransStack[cfg.stackDepth] = transIdx + 1

					total := table.weight(transIdx)
					for i := 0; i < cfg.stackDepth; i++ {
						total += table.weight(cfg.currentTransStack[i])
					}
					res.Weight = total
					return sb.String(), true
				}
			} else if inputSym == 0 && symIn >= firstNormal {
				// input exhausted, only normal transitions remain
				break
			} else if (cfg.inputDepth < cfg.inputLength && inputSym == symIn) ||
				(symIn < firstNormal && t.flagCheck(cfg, uint16(symIn))) {
				if cfg.stackDepth+2 == cfg.bufferSize {
					return "", false
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
					if res.FirstNotReachedPosition < cfg.inputDepth {
						res.FirstNotReachedPosition = cfg.inputDepth
					}
				}
				loopCounter++
				continue outer
			} else if symIn > inputSym {
				// sorted transitions: nothing later can match
				break
			} else if tc >= 1 && symIn >= firstNormal && symIn < inputSym {
				// binary search toward the matching input symbol
				min := uint32(0)
				max := maxTC - tc
				for min+1 < max {
					middle := (min + max) / 2
					if table.symIn(transIdx+middle) < inputSym {
						min = middle
					} else {
						max = middle
					}
				}
				tc += min
				transIdx += min
			}

			tc++
			transIdx++
		}

		if cfg.stackDepth == 0 {
			return "", false
		}

		cfg.stackDepth--
		prevSymIn := table.symIn(cfg.currentTransStack[cfg.stackDepth])
		if prevSymIn >= firstNormal {
			cfg.inputDepth--
		} else if t.syms.featureCount > 0 && prevSymIn != 0 {
			cfg.flagDepth--
		}
		cfg.currentTransStack[cfg.stackDepth]++

		loopCounter++
	}

	return "", false
}

// BacktrackToOutputDepth rewinds the traversal so that at most depth+1
// output symbols remain on the path. The suggestion search uses it to prune
// the error model when the acceptor rejects a candidate early.
func (t *Weighted) BacktrackToOutputDepth(cfg *WeightedConfig, depth int) {
	table := t.table
	firstNormal := uint32(t.syms.firstNormalChar)

	outputDepth := 0
	stackIndex := 0
	for outputDepth < depth+1 && stackIndex < cfg.stackDepth {
		if table.symOut(cfg.currentTransStack[stackIndex]) >= firstNormal {
			outputDepth++
		}
		stackIndex++
	}

	for stackIndex < cfg.stackDepth {
		cfg.stackDepth--
		if table.symIn(cfg.currentTransStack[cfg.stackDepth]) >= firstNormal {
			cfg.inputDepth--
		}
		cfg.currentTransStack[cfg.stackDepth]++
	}
}

// flagCheck evaluates a flag diacritic with copy-on-push value rows.
func (t *Weighted) flagCheck(cfg *WeightedConfig, symbol uint16) bool {
	if t.syms.featureCount == 0 || symbol == 0 {
		return true
	}
	ofv := t.syms.diacritics[symbol]
	current := uint16(cfg.currentFlag(int(ofv.feature)))

	result, newValue := checkFlag(ofv, current)
	if result == flagReject {
		return false
	}
	cfg.pushFlags()
	if result == flagAcceptUpdate {
		cfg.flagValueStack[cfg.flagDepth*cfg.featureCount+int(ofv.feature)] = uint32(newValue)
	}
	return true
}
