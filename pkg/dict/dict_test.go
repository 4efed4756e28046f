package dict

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func vfstHeader(weighted bool) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], 0x00013A6E)
	binary.LittleEndian.PutUint32(buf[4:8], 0x000351FA)
	if weighted {
		buf[8] = 1
	}
	return buf
}

func symbolTable(symbols []string) []byte {
	var buf []byte
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(symbols)))
	for _, s := range symbols {
		buf = append(buf, s...)
		buf = append(buf, 0)
	}
	return buf
}

func pad(data []byte, align int) []byte {
	for len(data)%align != 0 {
		data = append(data, 0)
	}
	return data
}

// unweightedFixture accepts "a" and outputs "a".
func unweightedFixture() []byte {
	data := vfstHeader(false)
	data = append(data, symbolTable([]string{"", "a"})...)
	data = pad(data, 8)
	// state 0: a -> a, target 1
	data = binary.LittleEndian.AppendUint16(data, 1)
	data = binary.LittleEndian.AppendUint16(data, 1)
	data = binary.LittleEndian.AppendUint32(data, 1)
	// state 1: final
	data = binary.LittleEndian.AppendUint16(data, 0xFFFF)
	data = binary.LittleEndian.AppendUint16(data, 0)
	data = binary.LittleEndian.AppendUint32(data, 0)
	return data
}

// weightedFixture accepts "a" with weight 3.
func weightedFixture() []byte {
	data := vfstHeader(true)
	data = append(data, symbolTable([]string{"", "a"})...)
	data = pad(data, 16)
	data = binary.LittleEndian.AppendUint32(data, 1)
	data = binary.LittleEndian.AppendUint32(data, 1)
	data = binary.LittleEndian.AppendUint32(data, 1)
	data = binary.LittleEndian.AppendUint16(data, 3)
	data = append(data, 0, 0)
	data = binary.LittleEndian.AppendUint32(data, 0xFFFFFFFF)
	data = binary.LittleEndian.AppendUint32(data, 0)
	data = binary.LittleEndian.AppendUint32(data, 0)
	data = binary.LittleEndian.AppendUint16(data, 0)
	data = append(data, 0, 0)
	return data
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenMinimalBundle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, MorphologyFile, unweightedFixture())

	d, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if d.Morphology == nil {
		t.Error("morphology transducer missing")
	}
	if d.Speller != nil || d.ErrorModel != nil || d.Autocorrect != nil {
		t.Error("absent optional transducers should be nil")
	}
	if d.Path() != dir {
		t.Errorf("path = %q, want %q", d.Path(), dir)
	}
}

func TestOpenFullBundle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, MorphologyFile, unweightedFixture())
	writeFile(t, dir, SpellerFile, weightedFixture())
	writeFile(t, dir, ErrorModelFile, weightedFixture())
	writeFile(t, dir, AutocorrectFile, unweightedFixture())
	writeFile(t, dir, IndexFile, []byte("# metadata\nlanguage: fi\ndescription: Suomen sanasto\n"))

	d, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if d.Speller == nil || d.ErrorModel == nil || d.Autocorrect == nil {
		t.Error("optional transducers should be loaded")
	}
	info := d.Info()
	if info.Language != "fi" || info.Description != "Suomen sanasto" {
		t.Errorf("info = %+v", info)
	}
}

func TestOpenMissingMorphology(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SpellerFile, weightedFixture())
	if _, err := Open(dir); err == nil {
		t.Error("expected error for missing mor.vfst")
	}
}

func TestValidateRejectsTruncatedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, MorphologyFile, []byte{1, 2, 3})
	if err := Validate(dir); err == nil {
		t.Error("expected error for truncated mor.vfst")
	}
}

func TestOpenCorruptOptionalFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, MorphologyFile, unweightedFixture())
	bad := make([]byte, 32)
	writeFile(t, dir, SpellerFile, bad)
	if _, err := Open(dir); err == nil {
		t.Error("expected error for corrupt spl.vfst")
	}
}
