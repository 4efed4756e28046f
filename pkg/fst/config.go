package fst

// Config holds the traversal state for an unweighted transducer: the
// explicit DFS stack plus flag diacritic values with an undo stack. Flag
// values are mutated in place on push and restored from the undo stack on
// backtrack. A Config belongs to one traversal at a time; the transducer
// itself carries no per-query state.
type Config struct {
	bufferSize  int
	stackDepth  int
	flagDepth   int
	inputDepth  int
	inputLength int

	stateIndexStack   []uint32
	currentTransStack []uint32
	inputSymbolStack  []uint16
	outputSymbolStack []uint16

	flagValues      []uint16
	flagUndoValue   []uint16
	flagUndoFeature []uint16
}

// NewConfig allocates traversal state for the given stack depth.
func newConfig(featureCount uint16, bufferSize int) *Config {
	c := &Config{
		bufferSize:        bufferSize,
		stateIndexStack:   make([]uint32, bufferSize),
		currentTransStack: make([]uint32, bufferSize),
		inputSymbolStack:  make([]uint16, bufferSize),
		outputSymbolStack: make([]uint16, bufferSize),
		flagValues:        make([]uint16, featureCount),
	}
	if featureCount > 0 {
		c.flagUndoValue = make([]uint16, bufferSize)
		c.flagUndoFeature = make([]uint16, bufferSize)
	}
	return c
}

func (c *Config) reset() {
	c.stackDepth = 0
	c.flagDepth = 0
	c.inputDepth = 0
	c.inputLength = 0
	c.stateIndexStack[0] = 0
	c.currentTransStack[0] = 0
	for i := range c.flagValues {
		c.flagValues[i] = 0
	}
}

// WeightedConfig holds the traversal state for a weighted transducer. Flag
// values use copy-on-push: each flag diacritic step copies the whole value
// row forward so backtracking is a depth decrement.
type WeightedConfig struct {
	bufferSize  int
	stackDepth  int
	flagDepth   int
	inputDepth  int
	inputLength int

	stateIndexStack   []uint32
	currentTransStack []uint32
	inputSymbolStack  []uint32
	outputSymbolStack []uint32

	// flagValueStack[flagDepth*featureCount+feature]
	flagValueStack []uint32
	featureCount   int
}

func newWeightedConfig(featureCount uint16, bufferSize int) *WeightedConfig {
	fc := int(featureCount)
	c := &WeightedConfig{
		bufferSize:        bufferSize,
		featureCount:      fc,
		stateIndexStack:   make([]uint32, bufferSize),
		currentTransStack: make([]uint32, bufferSize),
		inputSymbolStack:  make([]uint32, bufferSize),
		outputSymbolStack: make([]uint32, bufferSize),
	}
	if fc > 0 {
		c.flagValueStack = make([]uint32, fc*bufferSize)
	}
	return c
}

func (c *WeightedConfig) reset() {
	c.stackDepth = 0
	c.flagDepth = 0
	c.inputDepth = 0
	c.inputLength = 0
	c.stateIndexStack[0] = 0
	c.currentTransStack[0] = 0
	for i := 0; i < c.featureCount; i++ {
		c.flagValueStack[i] = 0
	}
}

func (c *WeightedConfig) currentFlag(feature int) uint32 {
	return c.flagValueStack[c.flagDepth*c.featureCount+feature]
}

// pushFlags copies the current flag row forward and advances flagDepth.
func (c *WeightedConfig) pushFlags() {
	if c.featureCount == 0 {
		return
	}
	src := c.flagDepth * c.featureCount
	copy(c.flagValueStack[src+c.featureCount:src+2*c.featureCount], c.flagValueStack[src:src+c.featureCount])
	c.flagDepth++
}
