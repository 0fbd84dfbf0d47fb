// Package main is the entry point for the linedit editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/dshills/linedit/internal/app"
	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	debug      bool
	tabWidth   int
	logLevel   string
	logFile    string
	readOnly   bool
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: linedit must run in a terminal")
		return 1
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Config:   cfg,
		File:     f.file,
		ReadOnly: f.readOnly,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Stop()
		}
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and environment, then applies the
// flags that were given on the command line.
func loadConfig(f flags) (*config.Config, error) {
	var opts []config.Option
	if f.configPath != "" {
		opts = append(opts, config.WithFile(f.configPath))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	var setErr error
	set := func(path string, v any) {
		if err := cfg.Set(path, v); err != nil && setErr == nil {
			setErr = err
		}
	}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug", "d":
			set("debug", f.debug)
		case "tab-width":
			set("editor.tab_width", f.tabWidth)
		case "log-level":
			set("logging.level", f.logLevel)
		case "log-file":
			set("logging.file", f.logFile)
		}
	})
	if setErr != nil {
		return nil, setErr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&f.debug, "debug", false, "Show the debug pane")
	flag.BoolVar(&f.debug, "d", false, "Show the debug pane (shorthand)")
	flag.IntVar(&f.tabWidth, "tab-width", 0, "Columns per tab stop")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write the log to this file")
	flag.BoolVar(&f.readOnly, "readonly", false, "Open the file in read-only mode")
	flag.BoolVar(&f.readOnly, "R", false, "Open the file in read-only mode (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linedit - a small soft-wrapping text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linedit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+S save  Ctrl+Q quit  Ctrl+K copy line  Ctrl+V paste  Ctrl+L redraw\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  linedit                     Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  linedit notes.txt           Open a file\n")
		fmt.Fprintf(os.Stderr, "  linedit -R notes.txt        Open file read-only\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("linedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		f.file = flag.Arg(0)
	default:
		fmt.Fprintln(os.Stderr, "Error: linedit edits one file at a time")
		os.Exit(1)
	}
	return f
}
