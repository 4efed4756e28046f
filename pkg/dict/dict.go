// Package dict locates and loads a transducer dictionary directory. A
// bundle holds the morphology transducer (mor.vfst, required) plus the
// optional spell acceptor (spl.vfst), error model (err.vfst) and
// auto-correction (autocorr.vfst) transducers, with sidecar metadata from
// index.txt.
package dict

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/louhiala/sanakko/pkg/fst"
)

// Bundle file names.
const (
	MorphologyFile  = "mor.vfst"
	SpellerFile     = "spl.vfst"
	ErrorModelFile  = "err.vfst"
	AutocorrectFile = "autocorr.vfst"
	IndexFile       = "index.txt"
)

// fileSpec describes one bundle member for validation.
type fileSpec struct {
	name     string
	required bool
	minSize  int64
}

// A vfst file needs at least its 16-byte header and a symbol count.
var bundleFiles = []fileSpec{
	{MorphologyFile, true, 18},
	{SpellerFile, false, 18},
	{ErrorModelFile, false, 18},
	{AutocorrectFile, false, 18},
}

// Info carries the dictionary metadata from index.txt.
type Info struct {
	Language    string
	Description string
}

// Dict is a loaded dictionary bundle. The transducers stay valid until
// Close unmaps the backing files. Optional transducers are nil when their
// file is absent.
type Dict struct {
	path string
	info Info

	Morphology  *fst.Unweighted
	Speller     *fst.Weighted
	ErrorModel  *fst.Weighted
	Autocorrect *fst.Unweighted

	files []*fst.File
}

// Validate checks that dir holds a usable dictionary bundle without
// loading it.
func Validate(dir string) error {
	for _, spec := range bundleFiles {
		path := filepath.Join(dir, spec.name)
		fi, err := os.Stat(path)
		if err != nil {
			if spec.required {
				return fmt.Errorf("dict: missing required file %s: %w", spec.name, err)
			}
			continue
		}
		if fi.Size() < spec.minSize {
			return fmt.Errorf("dict: file %s is too small (%d bytes, minimum %d)",
				spec.name, fi.Size(), spec.minSize)
		}
	}
	return nil
}

// Open loads the dictionary bundle in dir.
func Open(dir string) (*Dict, error) {
	if err := Validate(dir); err != nil {
		return nil, err
	}
	d := &Dict{path: dir, info: readIndex(filepath.Join(dir, IndexFile))}

	morData, err := d.mapFile(filepath.Join(dir, MorphologyFile))
	if err != nil {
		d.Close()
		return nil, err
	}
	if d.Morphology, err = fst.NewUnweighted(morData); err != nil {
		d.Close()
		return nil, fmt.Errorf("dict: %s: %w", MorphologyFile, err)
	}

	data, err := d.mapOptional(filepath.Join(dir, SpellerFile))
	if err != nil {
		d.Close()
		return nil, err
	}
	if data != nil {
		if d.Speller, err = fst.NewWeighted(data); err != nil {
			d.Close()
			return nil, fmt.Errorf("dict: %s: %w", SpellerFile, err)
		}
	}

	if data, err = d.mapOptional(filepath.Join(dir, ErrorModelFile)); err != nil {
		d.Close()
		return nil, err
	}
	if data != nil {
		if d.ErrorModel, err = fst.NewWeighted(data); err != nil {
			d.Close()
			return nil, fmt.Errorf("dict: %s: %w", ErrorModelFile, err)
		}
	}

	if data, err = d.mapOptional(filepath.Join(dir, AutocorrectFile)); err != nil {
		d.Close()
		return nil, err
	}
	if data != nil {
		if d.Autocorrect, err = fst.NewUnweighted(data); err != nil {
			d.Close()
			return nil, fmt.Errorf("dict: %s: %w", AutocorrectFile, err)
		}
	}

	log.Debugf("Opened dictionary at %s (speller=%v, error model=%v, autocorrect=%v)",
		dir, d.Speller != nil, d.ErrorModel != nil, d.Autocorrect != nil)
	return d, nil
}

// Path returns the bundle directory.
func (d *Dict) Path() string {
	return d.path
}

// Info returns the sidecar metadata.
func (d *Dict) Info() Info {
	return d.info
}

// Close unmaps all bundle files. The transducers must not be used
// afterwards.
func (d *Dict) Close() error {
	var first error
	for _, f := range d.files {
		if err := f.Close(); first == nil {
			first = err
		}
	}
	d.files = nil
	return first
}

func (d *Dict) mapFile(path string) ([]byte, error) {
	f, err := fst.OpenFile(path)
	if err != nil {
		return nil, err
	}
	d.files = append(d.files, f)
	return f.Bytes(), nil
}

func (d *Dict) mapOptional(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return d.mapFile(path)
}

// readIndex parses "key: value" lines from index.txt. A missing or
// unreadable file leaves the metadata empty.
func readIndex(path string) Info {
	var info Info
	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "language":
			info.Language = strings.TrimSpace(value)
		case "description":
			info.Description = strings.TrimSpace(value)
		}
	}
	return info
}
