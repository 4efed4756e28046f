package fst

import "encoding/binary"

// Transition record sizes in bytes.
const (
	transitionSize         = 8
	weightedTransitionSize = 16
)

// Final state markers in the symIn field.
const (
	finalSym         uint16 = 0xFFFF
	weightedFinalSym uint32 = 0xFFFFFFFF
)

// The transition table is read in place. Unweighted records are 8 bytes:
// u16 symIn, u16 symOut, u32 transInfo with the target state in bits 0-23
// and the extra transition count in bits 24-31. Weighted records are 16
// bytes: u32 symIn, u32 symOut, u32 target, i16 weight, u8 more, u8 pad.
// When the extra count is 255 the following record is an overflow cell
// whose first u32 carries the real count.

type transitionTable struct {
	data []byte
}

func (t transitionTable) count() int { return len(t.data) / transitionSize }

func (t transitionTable) symIn(i uint32) uint16 {
	return binary.LittleEndian.Uint16(t.data[i*transitionSize:])
}

func (t transitionTable) symOut(i uint32) uint16 {
	return binary.LittleEndian.Uint16(t.data[i*transitionSize+2:])
}

func (t transitionTable) target(i uint32) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*transitionSize+4:]) & 0x00FFFFFF
}

func (t transitionTable) more(i uint32) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*transitionSize+4:]) >> 24
}

// maxTC returns the highest transition index (relative to the state head)
// for the state starting at stateIndex.
func (t transitionTable) maxTC(stateIndex uint32) uint32 {
	m := t.more(stateIndex)
	if m == 255 {
		return binary.LittleEndian.Uint32(t.data[(stateIndex+1)*transitionSize:]) + 1
	}
	return m
}

type weightedTable struct {
	data []byte
}

func (t weightedTable) count() int { return len(t.data) / weightedTransitionSize }

func (t weightedTable) symIn(i uint32) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*weightedTransitionSize:])
}

func (t weightedTable) symOut(i uint32) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*weightedTransitionSize+4:])
}

func (t weightedTable) target(i uint32) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*weightedTransitionSize+8:])
}

func (t weightedTable) weight(i uint32) int16 {
	return int16(binary.LittleEndian.Uint16(t.data[i*weightedTransitionSize+12:]))
}

func (t weightedTable) more(i uint32) uint32 {
	return uint32(t.data[i*weightedTransitionSize+14])
}

func (t weightedTable) maxTC(stateIndex uint32) uint32 {
	m := t.more(stateIndex)
	if m == 255 {
		return binary.LittleEndian.Uint32(t.data[(stateIndex+1)*weightedTransitionSize:]) + 1
	}
	return m
}
