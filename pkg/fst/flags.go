package fst

import "fmt"

// Flag diacritic operations. Symbols like "@P.FEAT.VAL@" constrain which
// paths through the transducer are valid based on feature variables carried
// along the path.
type flagOp byte

const (
	opPush     flagOp = 'P' // unconditionally set feature to value
	opClear    flagOp = 'C' // reset feature to neutral
	opUnify    flagOp = 'U' // set if neutral, pass if equal, fail otherwise
	opRequire  flagOp = 'R' // fail unless feature matches
	opDisallow flagOp = 'D' // fail if feature matches
)

const (
	flagValueNeutral uint16 = 0
	flagValueAny     uint16 = 1
)

// opFeatureValue is one parsed flag diacritic.
type opFeatureValue struct {
	op      flagOp
	feature uint16
	value   uint16
}

// flagCheck results.
type flagResult int

const (
	flagReject flagResult = iota
	flagAcceptUpdate
	flagAcceptNoUpdate
)

// checkFlag decides whether a flag diacritic transition is allowed given
// the current value of its feature, and if so whether the feature changes.
// newValue is meaningful only for flagAcceptUpdate.
func checkFlag(ofv opFeatureValue, current uint16) (flagResult, uint16) {
	switch ofv.op {
	case opPush:
		return flagAcceptUpdate, ofv.value
	case opClear:
		return flagAcceptUpdate, flagValueNeutral
	case opUnify:
		if current != flagValueNeutral {
			if current != ofv.value {
				return flagReject, 0
			}
			return flagAcceptNoUpdate, 0
		}
		return flagAcceptUpdate, ofv.value
	case opRequire:
		if ofv.value == flagValueAny {
			if current == flagValueNeutral {
				return flagReject, 0
			}
		} else if current != ofv.value {
			return flagReject, 0
		}
		return flagAcceptNoUpdate, 0
	case opDisallow:
		if (ofv.value == flagValueAny && current != flagValueNeutral) || current == ofv.value {
			return flagReject, 0
		}
		return flagAcceptNoUpdate, 0
	}
	return flagReject, 0
}

// flagParser assigns sequential indices to features and values as they
// first appear in the symbol table.
type flagParser struct {
	features map[string]uint16
	values   map[string]uint16
}

func newFlagParser() *flagParser {
	return &flagParser{
		features: make(map[string]uint16),
		values:   map[string]uint16{"": flagValueNeutral, "@": flagValueAny},
	}
}

func (p *flagParser) featureCount() uint16 {
	return uint16(len(p.features))
}

// parse reads a symbol like "@P.FEATURE.VALUE@" or "@C.FEATURE@".
// A missing value part maps to the any-value wildcard.
func (p *flagParser) parse(symbol string) (opFeatureValue, error) {
	if len(symbol) <= 4 {
		return opFeatureValue{}, fmt.Errorf("%w: %q too short", ErrInvalidFlag, symbol)
	}
	op := flagOp(symbol[1])
	switch op {
	case opPush, opClear, opUnify, opRequire, opDisallow:
	default:
		return opFeatureValue{}, fmt.Errorf("%w: unknown operation in %q", ErrInvalidFlag, symbol)
	}

	inner := symbol[3 : len(symbol)-1]
	featureStr := inner
	valueStr := "@"
	for i := 0; i < len(inner); i++ {
		if inner[i] == '.' {
			featureStr = inner[:i]
			valueStr = inner[i+1:]
			break
		}
	}

	feature, ok := p.features[featureStr]
	if !ok {
		feature = uint16(len(p.features))
		p.features[featureStr] = feature
	}
	value, ok := p.values[valueStr]
	if !ok {
		value = uint16(len(p.values))
		p.values[valueStr] = value
	}
	return opFeatureValue{op: op, feature: feature, value: value}, nil
}
