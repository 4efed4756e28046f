package suggest

import (
	"encoding/binary"
	"testing"

	"github.com/louhiala/sanakko/pkg/fst"
)

// Weighted VFST fixtures are built byte by byte so the suggester runs
// against the real transducer traversal.

func buildWeightedVfst(symbols []string, transitions [][5]int) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], 0x00013A6E)
	binary.LittleEndian.PutUint32(buf[4:8], 0x000351FA)
	buf[8] = 1

	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(symbols)))
	for _, s := range symbols {
		buf = append(buf, s...)
		buf = append(buf, 0)
	}
	for len(buf)%16 != 0 {
		buf = append(buf, 0)
	}
	for _, tr := range transitions {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(tr[0]))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(tr[1]))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(tr[2]))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(tr[3])))
		buf = append(buf, byte(tr[4]), 0)
	}
	return buf
}

const final = -1 // 0xFFFFFFFF input symbol marks a final state

func mustWeighted(t *testing.T, data []byte) *fst.Weighted {
	t.Helper()
	tr, err := fst.NewWeighted(data)
	if err != nil {
		t.Fatalf("NewWeighted: %v", err)
	}
	return tr
}

func TestTransducerSuggesterSingleCandidate(t *testing.T) {
	// Error model maps "x" to "a" with weight 5, acceptor accepts "a"
	// with weight 3. Expect one suggestion with combined weight 8.
	errorModel := mustWeighted(t, buildWeightedVfst(
		[]string{"", "x", "a"},
		[][5]int{
			{1, 2, 1, 5, 0},
			{final, 0, 0, 0, 0},
		}))
	acceptor := mustWeighted(t, buildWeightedVfst(
		[]string{"", "a"},
		[][5]int{
			{1, 1, 1, 3, 0},
			{final, 0, 0, 0, 0},
		}))

	st := NewStatus([]rune("x"), 10)
	NewTransducerSuggester(errorModel, acceptor).Generate(st)

	if st.Count() != 1 {
		t.Fatalf("count = %d, want 1", st.Count())
	}
	if got := st.Suggestions()[0]; got.Word != "a" || got.Priority != 40 {
		t.Errorf("suggestion = %+v, want {a 40}", got)
	}
}

func TestTransducerSuggesterRanksByWeight(t *testing.T) {
	// "x" maps to "a" (weight 5) and "b" (weight 10); the acceptor takes
	// both ("a" at 3, "b" at 1). Combined weights 8 and 11 rank "a" first.
	errorModel := mustWeighted(t, buildWeightedVfst(
		[]string{"", "x", "a", "b"},
		[][5]int{
			{1, 2, 2, 5, 1},
			{1, 3, 3, 10, 0},
			{final, 0, 0, 0, 0},
			{final, 0, 0, 0, 0},
		}))
	acceptor := mustWeighted(t, buildWeightedVfst(
		[]string{"", "a", "b"},
		[][5]int{
			{1, 1, 2, 3, 1},
			{2, 2, 3, 1, 0},
			{final, 0, 0, 0, 0},
			{final, 0, 0, 0, 0},
		}))

	st := NewStatus([]rune("x"), 10)
	NewTransducerSuggester(errorModel, acceptor).Generate(st)

	if st.Count() != 2 {
		t.Fatalf("count = %d, want 2", st.Count())
	}
	if st.Suggestions()[0].Word != "a" || st.Suggestions()[1].Word != "b" {
		t.Errorf("order = %v, want [a b]", words(st))
	}
}

func TestTransducerSuggesterRejectedCandidate(t *testing.T) {
	// The error model proposes "z" but the acceptor only knows "a".
	errorModel := mustWeighted(t, buildWeightedVfst(
		[]string{"", "x", "z"},
		[][5]int{
			{1, 2, 1, 5, 0},
			{final, 0, 0, 0, 0},
		}))
	acceptor := mustWeighted(t, buildWeightedVfst(
		[]string{"", "a"},
		[][5]int{
			{1, 1, 1, 0, 0},
			{final, 0, 0, 0, 0},
		}))

	st := NewStatus([]rune("x"), 10)
	NewTransducerSuggester(errorModel, acceptor).Generate(st)
	if st.Count() != 0 {
		t.Errorf("suggestions = %v, want none", words(st))
	}
}

func TestTransducerSuggesterUnknownInput(t *testing.T) {
	data := buildWeightedVfst(
		[]string{"", "a"},
		[][5]int{
			{1, 1, 1, 0, 0},
			{final, 0, 0, 0, 0},
		})
	errorModel := mustWeighted(t, data)
	acceptor := mustWeighted(t, data)

	st := NewStatus([]rune("z"), 10)
	NewTransducerSuggester(errorModel, acceptor).Generate(st)
	if st.Count() != 0 {
		t.Errorf("suggestions = %v, want none", words(st))
	}
}

func TestTransducerSuggesterKeepsMinimumWeight(t *testing.T) {
	// Two paths produce the same candidate with weights 5 and 15; the
	// cheaper one wins.
	errorModel := mustWeighted(t, buildWeightedVfst(
		[]string{"", "x", "a"},
		[][5]int{
			{1, 2, 2, 5, 1},
			{1, 2, 3, 15, 0},
			{final, 0, 0, 0, 0},
			{final, 0, 0, 0, 0},
		}))
	acceptor := mustWeighted(t, buildWeightedVfst(
		[]string{"", "a"},
		[][5]int{
			{1, 1, 1, 3, 0},
			{final, 0, 0, 0, 0},
		}))

	st := NewStatus([]rune("x"), 10)
	NewTransducerSuggester(errorModel, acceptor).Generate(st)

	if st.Count() != 1 {
		t.Fatalf("count = %d, want 1", st.Count())
	}
	if got := st.Suggestions()[0]; got.Word != "a" || got.Priority != 40 {
		t.Errorf("suggestion = %+v, want {a 40}", got)
	}
}
