package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keynav/internal/dispatch"
	"github.com/dshills/keynav/internal/input/key"
)

// terminal drives the demo's tcell screen and event loop.
type terminal struct {
	screen tcell.Screen
}

// newTerminal creates a terminal over a fresh tcell screen.
func newTerminal() (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &terminal{screen: screen}, nil
}

func (t *terminal) Init() error {
	return t.screen.Init()
}

func (t *terminal) Shutdown() {
	t.screen.Fini()
}

// Interrupt wakes the event loop so Run can return.
func (t *terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Play implements the workspace audio hook. The terminal has one voice,
// so every cue becomes a bell.
func (t *terminal) Play(string) {
	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// Run polls events until quit, routing key presses through the
// dispatcher and redrawing after each one.
func (t *terminal) Run(disp *dispatch.Dispatcher) error {
	var status string
	for {
		drawWorkspace(t.screen, disp.Workspace(), status)

		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()

		case *tcell.EventInterrupt:
			return nil

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return nil
			}
			kev, ok := convertKeyEvent(ev)
			if !ok {
				continue
			}
			handled, err := disp.OnKey(kev)
			if err != nil {
				return err
			}
			if handled {
				status = ""
			} else {
				status = "unbound: " + kev.String()
			}
		}
	}
}

// convertKeyEvent translates a tcell key event into the input model.
// Events with no mapping (function keys, control characters the demo
// does not use) report ok=false.
func convertKeyEvent(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return key.NewSpecialEvent(key.KeySpace, mods), true
		}
		return key.NewRuneEvent(ev.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	}

	// tcell folds Ctrl+letter into control characters; unfold them back
	// into a rune with the Ctrl modifier.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods|key.ModCtrl), true
	}
	return key.Event{}, false
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
