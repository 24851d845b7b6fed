// Package roster loads person records from YAML or JSON files.
//
// A roster file models the output of the upstream name-resolution service:
// an ordered list of already-resolved records. Order is preserved exactly as
// written, because category color assignment is first-seen-order dependent.
//
// # File format
//
//	people:
//	  - name: Ada Lovelace
//	    birth_year: 1815
//	    death_year: 1852
//	    category: science
//	  - name: Grace Hopper
//	    birth_year: 1906
//	    death_year: 1992
//	    category: science
//	    approximate: false
//
// The JSON form uses the same field names under a top-level "people" key.
// A missing death_year means the person is treated as living.
package roster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/timeline"
)

// Format identifies a roster file encoding.
type Format string

// Supported roster encodings.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is the on-disk roster schema.
type File struct {
	People []timeline.Person `json:"people" yaml:"people"`
}

// Load reads and validates a roster file, detecting the format from the
// file extension (.yaml/.yml, .json).
func Load(path string) ([]timeline.Person, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "roster file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "open roster %s", path)
	}
	defer f.Close()

	people, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "parse roster %s", path)
	}
	if err := Validate(people); err != nil {
		return nil, err
	}
	return people, nil
}

// Read decodes a roster from r in the given format. The result is not
// validated; callers that accept external input should follow up with
// [Validate].
func Read(r io.Reader, format Format) ([]timeline.Person, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var file File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported roster format %q", format)
	}

	return file.People, nil
}

// DetectFormat infers the roster encoding from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect roster format from %q (use .yaml, .yml, or .json)", filepath.Base(path))
	}
}

// Validate checks the structural invariants the layout engine relies on:
// a non-empty list, valid names, and name uniqueness within the roster.
//
// A death year before the birth year is deliberately NOT rejected here - the
// layout engine clamps such records to minimum visual spans, and whether the
// record is wrong is the upstream resolver's concern, not ours.
func Validate(people []timeline.Person) error {
	if len(people) == 0 {
		return errors.New(errors.ErrCodeEmptyRoster, "roster has no people")
	}

	seen := make(map[string]bool, len(people))
	for i, p := range people {
		if err := errors.ValidatePersonName(p.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRoster, err, "person %d", i)
		}
		if seen[p.Name] {
			return errors.New(errors.ErrCodeInvalidRoster, "duplicate person name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Find returns the person with the given name, or PERSON_NOT_FOUND.
func Find(people []timeline.Person, name string) (timeline.Person, error) {
	for _, p := range people {
		if p.Name == name {
			return p, nil
		}
	}
	return timeline.Person{}, errors.New(errors.ErrCodePersonNotFound, "no person named %q in roster", name)
}

// Marshal encodes a roster in the given format, the inverse of [Read].
func Marshal(people []timeline.Person, format Format) ([]byte, error) {
	file := File{People: people}
	switch format {
	case FormatYAML:
		return yaml.Marshal(file)
	case FormatJSON:
		return json.MarshalIndent(file, "", "  ")
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported roster format %q", format)
	}
}
