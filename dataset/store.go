// Package dataset persists named notation datasets as files under a
// single base directory. A dataset is either a flat value list (the
// multi-line form) or a JSON-like tree (the compact form). Files are
// fully overwritten on save; there is no locking, no atomic rename,
// and no partial-write protection, so two concurrent writers to the
// same name race and the last one wins.
package dataset

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/grouphunt/linknot/notation"
)

// Store reads and writes datasets under one base directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily
// on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for a dataset name. Names are joined to
// the base directory verbatim.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether a dataset file is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Flat is a loaded flat dataset with its projections.
type Flat struct {
	Raw     string
	Values  []*notation.Value
	Numbers []int64
	Strings []string
}

// SaveFlat writes a flat value list, fully overwriting any previous
// content.
func (s *Store) SaveFlat(name string, values []*notation.Value) error {
	return s.write(name, notation.Emit(values))
}

// LoadFlat reads a flat dataset. A missing file returns (nil, nil);
// malformed content returns a *notation.ParseError.
func (s *Store) LoadFlat(name string) (*Flat, error) {
	raw, ok, err := s.read(name)
	if err != nil || !ok {
		return nil, err
	}

	values, err := notation.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &Flat{
		Raw:     raw,
		Values:  values,
		Numbers: notation.Numbers(values),
		Strings: notation.Strings(values),
	}, nil
}

// SaveJSON writes a JSON-serializable tree as compact notation, fully
// overwriting any previous content.
func (s *Store) SaveJSON(name string, v interface{}) error {
	gv, err := notation.FromJSONValue(v)
	if err != nil {
		return err
	}
	return s.write(name, notation.EmitCompact(gv))
}

// LoadJSON reads a JSON dataset. The bool reports presence: a missing
// file returns (nil, false, nil).
func (s *Store) LoadJSON(name string) (interface{}, bool, error) {
	raw, ok, err := s.read(name)
	if err != nil || !ok {
		return nil, false, err
	}

	values, err := notation.Parse(raw)
	if err != nil {
		return nil, false, err
	}

	v, err := notation.ToJSONValue(values)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *Store) write(name, text string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "create dataset dir %s", s.dir)
	}
	path := s.Path(name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "write dataset %s", name)
	}
	return nil
}

func (s *Store) read(name string) (string, bool, error) {
	data, err := os.ReadFile(s.Path(name))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "read dataset %s", name)
	}
	return string(data), true, nil
}
