package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/share"
	"github.com/Justice-Caban/Iroai/internal/tui"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches to a subcommand, or to the TUI when the first argument is
// absent or a flag
func run(args []string, stdout, stderr io.Writer) int {
	// Load config, noting whether this run creates the file
	firstRun := !config.Exists()
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	logPath := cfg.Paths.DebugLog
	if logPath == "" {
		logPath = os.Getenv("IROAI_DEBUG_LOG")
	}
	closeLog, err := setupLogging(logPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening debug log: %v\n", err)
		return 1
	}
	defer closeLog()

	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		if cfgErr != nil {
			slog.Warn("config load failed, using defaults", "error", cfgErr)
		}
		c := &cli{cfg: cfg, out: stdout}
		if err := c.dispatch(args[0], args[1:]); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	return runTUIMode(args, cfg, cfgErr, firstRun, stdout, stderr)
}

// runTUIMode runs the main TUI application with alt-screen
func runTUIMode(args []string, cfg *config.Config, cfgErr error, firstRun bool, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("iroai", flag.ContinueOnError)
	fs.SetOutput(stderr)
	shared := fs.String("shared", "", "restore a shared palette (share URL or blob)")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *showVersion {
		fmt.Fprintf(stderr, "iroai %s\n", version)
		return 0
	}

	// Without a terminal to draw on, print the palette instead
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printPalette(&cli{cfg: cfg, out: stdout}, *shared); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Create the application model
	m := tui.NewAppModel(cfg, cfgErr, firstRun, *shared)

	// Run the TUI program with alt-screen
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error running Iroai: %v\n", err)
		return 1
	}
	return 0
}

// printPalette writes the shared palette, or a fresh one when shared is
// empty or unreadable
func printPalette(c *cli, shared string) error {
	if shared != "" {
		if st, err := share.Decode(share.FromURL(shared)); err == nil {
			return c.printLines(st.Palette)
		}
		slog.Info("shared palette unreadable, generating", "shared", shared)
	}
	return c.generate(nil)
}

// setupLogging points the default slog logger at path, or discards when
// path is empty. The TUI owns the terminal, so nothing logs to stdout.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Debug("iroai starting", "version", version, "pid", os.Getpid())
	return func() { f.Close() }, nil
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Iroai %s - color palette studio

Usage:
  iroai [--shared URL|BLOB]      interactive palette studio
  iroai generate [flags]         print a generated palette
  iroai inspect HEX...           show every representation of a color
  iroai adjust [flags] HEX...    apply hue/saturation/brightness/temperature
  iroai simulate [flags] HEX...  simulate color vision deficiencies
  iroai contrast [-all] HEX...   list text/background pairs by contrast
  iroai share [flags] HEX...     print a share link, or -decode one

Flags:
`, version)
	fs.PrintDefaults()
}
