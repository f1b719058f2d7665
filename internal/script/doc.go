// Package script hosts user Lua code that extends the shortcut set
// without recompiling.
//
// Scripts see a single `keynav` module:
//
//	keynav.register(name, keys, fn)  -- bind chords to a Lua callback
//	keynav.next()                    -- cursor moves; return true on
//	keynav.previous()                -- success
//	keynav.step_in()
//	keynav.step_out()
//	keynav.focused_kind()            -- "Block", "Connection", ...
//	keynav.at_end_of_line()
//
// `keys` is one chord spec or a table of them, in the formats the key
// package parses. The callback's truthiness is the handled flag
// returned to the dispatcher.
//
// The Lua state is sandboxed: load/dofile/loadfile are removed and the
// io and os libraries are never opened, so scripts can only drive the
// editor API they are given.
package script
