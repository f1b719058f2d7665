package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keynav/internal/input/key"
)

// Registry holds keymaps and resolves chords to action names.
type Registry struct {
	mu      sync.RWMutex
	keymaps map[string]*ParsedKeymap
	index   map[string][]indexEntry // canonical chord -> entries
}

type indexEntry struct {
	action string
	score  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*ParsedKeymap),
		index:   make(map[string][]indexEntry),
	}
}

// Register adds a keymap. A keymap with the same name replaces the
// previous one.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("keymap: cannot register nil keymap")
	}
	parsed, err := km.Parse()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keymaps[parsed.Name] = parsed
	r.rebuildLocked()
	return nil
}

// Unregister removes a keymap by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keymaps, name)
	r.rebuildLocked()
}

// rebuildLocked reindexes all bindings. Called with the lock held.
func (r *Registry) rebuildLocked() {
	index := make(map[string][]indexEntry)
	for _, km := range r.keymaps {
		for _, pb := range km.Bindings {
			chord := pb.Chord.String()
			index[chord] = append(index[chord], indexEntry{
				action: pb.Action,
				score:  km.Priority*100 + pb.Priority,
			})
		}
	}
	for chord := range index {
		entries := index[chord]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].score > entries[j].score
		})
		index[chord] = entries
	}
	r.index = index
}

// Resolve returns the action names bound to the chord, highest
// priority first, with duplicates removed.
func (r *Registry) Resolve(c key.Chord) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.index[c.String()]
	if len(entries) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if seen[e.action] {
			continue
		}
		seen[e.action] = true
		out = append(out, e.action)
	}
	return out
}

// ChordsFor returns the canonical chord forms bound to an action,
// across all keymaps.
func (r *Registry) ChordsFor(action string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for chord, entries := range r.index {
		for _, e := range entries {
			if e.action == action {
				out = append(out, chord)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// Keymaps returns the names of all registered keymaps.
func (r *Registry) Keymaps() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.keymaps))
	for name := range r.keymaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
