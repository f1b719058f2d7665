package keymap

import (
	"testing"

	"github.com/dshills/keynav/internal/input/key"
)

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Default()); err != nil {
		t.Fatalf("Register(Default()) error = %v", err)
	}

	tests := []struct {
		spec string
		want string
	}{
		{"Down", ActionCursorNext},
		{"Up", ActionCursorPrev},
		{"Right", ActionCursorIn},
		{"Left", ActionCursorOut},
		{"Delete", ActionDelete},
		{"Backspace", ActionDelete},
		{"Ctrl+c", ActionCopy},
		{"Meta+v", ActionPaste},
		{"Ctrl+Shift+z", ActionRedo},
		{"Ctrl+y", ActionRedo},
		{"Ctrl+Home", ActionJumpWorkspaceFirst},
	}

	for _, tt := range tests {
		got := r.Resolve(key.MustParse(tt.spec))
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("Resolve(%q) = %v, want [%s]", tt.spec, got, tt.want)
		}
	}

	if got := r.Resolve(key.MustParse("F")); got != nil {
		t.Errorf("Resolve of an unbound chord = %v, want nil", got)
	}
}

func TestRegistryResolveEquivalentSpecs(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Default()); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	// The index is keyed on the canonical chord form, so spelling
	// variants of the same chord resolve identically.
	long := r.Resolve(key.MustParse("Ctrl+Shift+z"))
	short := r.Resolve(key.MustParse("C-S-z"))
	if len(long) != 1 || len(short) != 1 || long[0] != short[0] {
		t.Errorf("spelling variants resolved differently: %v vs %v", long, short)
	}
}

func TestRegistryPriority(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Default()); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	user := &Keymap{
		Name:     "user",
		Priority: 10,
		Bindings: []Binding{
			{Keys: "Delete", Action: "custom.remove"},
		},
	}
	if err := r.Register(user); err != nil {
		t.Fatalf("Register(user) error = %v", err)
	}

	got := r.Resolve(key.MustParse("Delete"))
	if len(got) != 2 {
		t.Fatalf("Resolve(Delete) = %v, want two candidates", got)
	}
	if got[0] != "custom.remove" {
		t.Errorf("highest priority candidate = %q, want custom.remove", got[0])
	}
	if got[1] != ActionDelete {
		t.Errorf("fallback candidate = %q, want %s", got[1], ActionDelete)
	}

	r.Unregister("user")
	got = r.Resolve(key.MustParse("Delete"))
	if len(got) != 1 || got[0] != ActionDelete {
		t.Errorf("after unregister Resolve(Delete) = %v, want [%s]", got, ActionDelete)
	}
}

func TestRegistryBindingPriority(t *testing.T) {
	r := NewRegistry()
	km := &Keymap{
		Name: "m",
		Bindings: []Binding{
			{Keys: "Enter", Action: "low"},
			{Keys: "Enter", Action: "high", Priority: 5},
		},
	}
	if err := r.Register(km); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	got := r.Resolve(key.MustParse("Enter"))
	if len(got) != 2 || got[0] != "high" || got[1] != "low" {
		t.Errorf("Resolve(Enter) = %v, want [high low]", got)
	}
}

func TestRegistryReplaceSameName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&Keymap{Name: "m", Bindings: []Binding{{Keys: "a", Action: "one"}}}); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	if err := r.Register(&Keymap{Name: "m", Bindings: []Binding{{Keys: "a", Action: "two"}}}); err != nil {
		t.Fatalf("Register replacement error = %v", err)
	}

	got := r.Resolve(key.MustParse("a"))
	if len(got) != 1 || got[0] != "two" {
		t.Errorf("Resolve(a) = %v, want [two]", got)
	}
	if names := r.Keymaps(); len(names) != 1 {
		t.Errorf("Keymaps() = %v, want one entry", names)
	}
}

func TestRegistryRejectsInvalidBinding(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Keymap{Name: "bad", Bindings: []Binding{{Keys: "Hyper+q", Action: "x"}}})
	if err == nil {
		t.Fatal("registering an unparseable binding did not fail")
	}
	if got := r.Resolve(key.MustParse("q")); got != nil {
		t.Errorf("failed registration leaked bindings: %v", got)
	}
}

func TestChordsFor(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Default()); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	got := r.ChordsFor(ActionDelete)
	want := []string{"BS", "Del"}
	if len(got) != len(want) {
		t.Fatalf("ChordsFor(delete) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ChordsFor(delete)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
