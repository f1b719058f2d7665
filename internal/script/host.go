package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keynav/internal/dispatch"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
)

// Host runs user scripts against one dispatcher.
//
// gopher-lua's LState is not goroutine-safe; all Host methods and all
// dispatched callbacks must run on the same goroutine as the event
// loop.
type Host struct {
	L      *lua.LState
	disp   *dispatch.Dispatcher
	closed bool
}

// NewHost creates a sandboxed Lua state bound to the dispatcher.
func NewHost(d *dispatch.Dispatcher) *Host {
	L := lua.NewState()
	h := &Host{L: L, disp: d}
	h.sandbox()
	h.installAPI()
	return h
}

// sandbox removes the escape hatches from the default state.
func (h *Host) sandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		h.L.SetGlobal(name, lua.LNil)
	}
	h.L.SetGlobal("io", lua.LNil)
	h.L.SetGlobal("os", lua.LNil)
}

// installAPI publishes the keynav module.
func (h *Host) installAPI() {
	mod := h.L.NewTable()
	h.L.SetFuncs(mod, map[string]lua.LGFunction{
		"register":       h.luaRegister,
		"next":           h.cursorOp(func() bool { return h.disp.Cursor().Next() != nil }),
		"previous":       h.cursorOp(func() bool { return h.disp.Cursor().Prev() != nil }),
		"step_in":        h.cursorOp(func() bool { return h.disp.Cursor().In() != nil }),
		"step_out":       h.cursorOp(func() bool { return h.disp.Cursor().Out() != nil }),
		"at_end_of_line": h.cursorOp(func() bool { return h.disp.Cursor().AtEndOfLine() }),
		"focused_kind":   h.luaFocusedKind,
	})
	h.L.SetGlobal("keynav", mod)
}

func (h *Host) cursorOp(op func() bool) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(op()))
		return 1
	}
}

func (h *Host) luaFocusedKind(L *lua.LState) int {
	n := h.disp.Workspace().Focus().Focused()
	if n == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(n.Kind().String()))
	return 1
}

// luaRegister implements keynav.register(name, keys, fn).
func (h *Host) luaRegister(L *lua.LState) int {
	name := L.CheckString(1)
	keysArg := L.CheckAny(2)
	fn := L.CheckFunction(3)

	specs, err := chordSpecs(keysArg)
	if err != nil {
		L.RaiseError("register %s: %s", name, err)
		return 0
	}
	for _, spec := range specs {
		if _, err := key.Parse(spec); err != nil {
			L.RaiseError("register %s: %s", name, err)
			return 0
		}
	}

	sc := &dispatch.Shortcut{
		Name:        name,
		Description: "script-defined shortcut",
		Callback: func(_ *dispatch.Context, _ key.Event) (bool, error) {
			h.L.Push(fn)
			if err := h.L.PCall(0, 1, nil); err != nil {
				return true, fmt.Errorf("script %s: %w", name, err)
			}
			ret := h.L.Get(-1)
			h.L.Pop(1)
			return lua.LVAsBool(ret), nil
		},
	}
	if err := h.disp.Shortcuts().Register(sc); err != nil {
		L.RaiseError("register %s: %s", name, err)
		return 0
	}

	km := &keymap.Keymap{Name: "script:" + name, Priority: 10}
	for _, spec := range specs {
		km.Bindings = append(km.Bindings, keymap.NewBinding(spec, name))
	}
	if err := h.disp.Keymaps().Register(km); err != nil {
		L.RaiseError("register %s: %s", name, err)
	}
	return 0
}

// chordSpecs accepts one chord spec string or a table of them.
func chordSpecs(v lua.LValue) ([]string, error) {
	switch val := v.(type) {
	case lua.LString:
		return []string{string(val)}, nil
	case *lua.LTable:
		var specs []string
		var bad lua.LValue
		val.ForEach(func(_, item lua.LValue) {
			if s, ok := item.(lua.LString); ok {
				specs = append(specs, string(s))
			} else if bad == nil {
				bad = item
			}
		})
		if bad != nil {
			return nil, fmt.Errorf("keys table must contain strings")
		}
		if len(specs) == 0 {
			return nil, fmt.Errorf("keys table is empty")
		}
		return specs, nil
	default:
		return nil, fmt.Errorf("keys must be a string or table of strings")
	}
}

// DoString runs a script from source.
func (h *Host) DoString(src string) error {
	if h.closed {
		return ErrHostClosed
	}
	return h.L.DoString(src)
}

// DoFile runs a script file.
func (h *Host) DoFile(path string) error {
	if h.closed {
		return ErrHostClosed
	}
	return h.L.DoFile(path)
}

// Close shuts down the Lua state. The host is unusable afterwards,
// but shortcuts already registered stay installed.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}
