// Package main is the entry point for the keynav demo browser.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keynav/internal/block"
	"github.com/dshills/keynav/internal/dispatch"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/nav/cursor"
	"github.com/dshills/keynav/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	KeymapPath string
	ScriptPath string
	ReadOnly   bool
	NoLoop     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	ws := sampleWorkspace()
	ws.SetReadOnly(opts.ReadOnly)

	cur := cursor.New(ws)
	cur.SetLoop(!opts.NoLoop)
	disp := dispatch.New(ws, cur)

	if opts.KeymapPath != "" {
		km, err := keymap.NewLoader().LoadFile(opts.KeymapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load keymap: %v\n", err)
			return 1
		}
		if err := disp.Keymaps().Register(km); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to register keymap: %v\n", err)
			return 1
		}
	}

	if opts.ScriptPath != "" {
		host := script.NewHost(disp)
		defer host.Close()
		if err := host.DoFile(opts.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to run script: %v\n", err)
			return 1
		}
	}

	term, err := newTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	ws.SetAudio(term)
	ws.Focus().Focus(cur.FirstNode())

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.Interrupt()
	}()

	if err := term.Run(disp); err != nil {
		term.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.KeymapPath, "keymap", "", "Path to a JSON keymap file")
	flag.StringVar(&opts.KeymapPath, "k", "", "Path to a JSON keymap file (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Path to a Lua startup script")
	flag.StringVar(&opts.ScriptPath, "s", "", "Path to a Lua startup script (shorthand)")
	flag.BoolVar(&opts.ReadOnly, "readonly", false, "Open the workspace read-only")
	flag.BoolVar(&opts.ReadOnly, "R", false, "Open the workspace read-only (shorthand)")
	flag.BoolVar(&opts.NoLoop, "no-loop", false, "Stop at document boundaries instead of wrapping")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Keynav - keyboard navigation for block documents\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keynav [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Up/Down       previous/next line\n")
		fmt.Fprintf(os.Stderr, "  Left/Right    step out/in\n")
		fmt.Fprintf(os.Stderr, "  Delete        delete the focused block\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+c/x/v    copy, cut, paste\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+z        undo, Ctrl+Shift+z redo\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q        quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Keynav %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

// Compile-time check that the terminal doubles as the audio sink.
var _ block.Audio = (*terminal)(nil)
