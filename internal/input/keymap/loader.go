package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Loader loads keymaps from JSON configuration files. A user keymap
// typically carries a higher priority than the default map so its
// bindings win chord conflicts.
type Loader struct {
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a JSON file.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := l.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if km.Name == "" {
		km.Name = filepath.Base(path)
	}
	return km, nil
}

// LoadReader loads a keymap from a reader.
func (l *Loader) LoadReader(r io.Reader) (*Keymap, error) {
	var km Keymap
	if err := json.NewDecoder(r).Decode(&km); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	// Validate chords up front so a broken file fails at load, not at
	// first keypress.
	if _, err := km.Parse(); err != nil {
		return nil, err
	}
	return &km, nil
}

// LoadAll loads every keymap from the search paths. Unreadable or
// invalid files are skipped.
func (l *Loader) LoadAll() []*Keymap {
	var keymaps []*Keymap
	for _, dir := range l.searchPaths {
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			km, err := l.LoadFile(path)
			if err != nil {
				continue
			}
			keymaps = append(keymaps, km)
		}
	}
	return keymaps
}
