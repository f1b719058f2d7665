package keymap

import (
	"fmt"

	"github.com/dshills/keynav/internal/input/key"
)

// Binding represents a single chord-to-action mapping.
type Binding struct {
	// Keys is the chord that triggers this binding.
	// Formats: "Delete", "Ctrl+c", "C-S-z".
	Keys string `json:"keys"`

	// Action is the command to execute, e.g. "cursor.next",
	// "edit.delete".
	Action string `json:"action"`

	// Description provides documentation for the binding.
	Description string `json:"description,omitempty"`

	// Priority determines precedence when multiple bindings match the
	// same chord. Higher priority wins. Default is 0.
	Priority int `json:"priority,omitempty"`
}

// NewBinding creates a binding with the given chord spec and action.
func NewBinding(keys, action string) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithPriority sets the priority for this binding.
func (b Binding) WithPriority(priority int) Binding {
	b.Priority = priority
	return b
}

// ParsedBinding is a binding with its chord pre-parsed.
type ParsedBinding struct {
	Binding
	Chord key.Chord
}

// Parse validates the binding's chord specification.
func (b Binding) Parse() (ParsedBinding, error) {
	c, err := key.Parse(b.Keys)
	if err != nil {
		return ParsedBinding{}, fmt.Errorf("binding %q: %w", b.Action, err)
	}
	return ParsedBinding{Binding: b, Chord: c}, nil
}

// Keymap is a named, prioritized collection of bindings.
type Keymap struct {
	// Name identifies the keymap in the registry.
	Name string `json:"name"`

	// Priority ranks this keymap against others. Higher priority
	// keymaps win chord conflicts. Default is 0.
	Priority int `json:"priority,omitempty"`

	// Bindings are the keymap's chord-to-action mappings.
	Bindings []Binding `json:"bindings"`
}

// Parse pre-parses every binding in the keymap.
func (km *Keymap) Parse() (*ParsedKeymap, error) {
	pk := &ParsedKeymap{
		Name:     km.Name,
		Priority: km.Priority,
	}
	for _, b := range km.Bindings {
		pb, err := b.Parse()
		if err != nil {
			return nil, fmt.Errorf("keymap %q: %w", km.Name, err)
		}
		pk.Bindings = append(pk.Bindings, pb)
	}
	return pk, nil
}

// ParsedKeymap is a keymap with every chord pre-parsed.
type ParsedKeymap struct {
	Name     string
	Priority int
	Bindings []ParsedBinding
}
