package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Chord is a modifier combination plus one key. Its canonical string
// form is the index used by keymap registries: modifiers in C-A-S-M
// order joined to the key name with hyphens, e.g. "C-S-z", "Del",
// "M-c".
type Chord struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// String returns the canonical serialized form of the chord.
func (c Chord) String() string {
	var parts []string
	if mods := c.Mods.ShortString(); mods != "" {
		parts = append(parts, mods)
	}
	parts = append(parts, c.keyName())
	return strings.Join(parts, "-")
}

func (c Chord) keyName() string {
	switch c.Key {
	case KeyRune:
		if c.Rune == ' ' {
			return "Space"
		}
		return string(c.Rune)
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyInsert:
		return "Ins"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	default:
		return c.Key.String()
	}
}

// IsZero reports whether the chord is empty.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone && c.Rune == 0 && c.Mods == ModNone
}

// Equals reports whether two chords describe the same key press.
func (c Chord) Equals(other Chord) bool {
	return c.Key == other.Key && c.Rune == other.Rune && c.Mods == other.Mods
}

// Parse parses a chord specification. Accepted forms:
//
//	"a"            single character
//	"Delete"       special key name
//	"Ctrl+Delete"  long modifier names joined with +
//	"C-S-z"        short modifier names joined with -
//
// Character keys with Ctrl/Alt/Meta are normalized to lowercase, since
// those modifiers make Shift part of the chord rather than part of the
// character.
func Parse(spec string) (Chord, error) {
	// Single character, no modifiers. Checked before trimming so a lone
	// space means the space bar rather than an empty spec.
	if runes := []rune(spec); len(runes) == 1 {
		return chordForRune(runes[0], ModNone), nil
	}

	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	var parts []string
	switch {
	case strings.Contains(spec, "+"):
		parts = strings.Split(spec, "+")
	case strings.Contains(spec, "-"):
		parts = strings.Split(spec, "-")
	default:
		parts = []string{spec}
	}

	var mods Modifier
	for _, part := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(part))
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: %q in %q", ErrUnknownModifier, part, spec)
		}
		mods = mods.With(mod)
	}

	last := strings.TrimSpace(parts[len(parts)-1])
	if k := FromName(last); k != KeyNone {
		return Chord{Key: k, Mods: mods}, nil
	}
	if runes := []rune(last); len(runes) == 1 {
		return chordForRune(runes[0], mods), nil
	}
	return Chord{}, fmt.Errorf("%w: %q in %q", ErrUnknownKey, last, spec)
}

// MustParse parses a chord specification and panics on error. For
// default tables with hardwired specs.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func chordForRune(r rune, mods Modifier) Chord {
	if mods.Has(ModCtrl) || mods.Has(ModAlt) || mods.Has(ModMeta) {
		r = unicode.ToLower(r)
	} else if unicode.IsUpper(r) {
		mods = mods.With(ModShift)
	}
	if r == ' ' {
		return Chord{Key: KeySpace, Mods: mods}
	}
	return Chord{Key: KeyRune, Rune: r, Mods: mods}
}
