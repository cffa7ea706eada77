// mkicon renders the extension icons (icon16.png, icon48.png, icon128.png).
// Usage: go run ./cmd/mkicon [--out DIR] [--config FILE] [--favicon]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/Mavwarf/bubbleicon/internal/config"
	"github.com/Mavwarf/bubbleicon/internal/eventlog"
	"github.com/Mavwarf/bubbleicon/internal/generate"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	color := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, color))
}

type cliOptions struct {
	outDir     string
	configPath string
	favicon    bool
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, color bool) int {
	var opts cliOptions

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 >= len(args) {
				fmt.Fprintf(stderr, "Error: --out requires a directory\n")
				return 1
			}
			opts.outDir = args[i+1]
			i++
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintf(stderr, "Error: --config requires a file path\n")
				return 1
			}
			opts.configPath = args[i+1]
			i++
		case "--favicon":
			opts.favicon = true
		case "help", "-h", "--help":
			printUsage(stdout)
			return 0
		case "version", "-V", "--version":
			fmt.Fprintf(stdout, "mkicon %s (built %s)\n", version, buildDate)
			return 0
		default:
			fmt.Fprintf(stderr, "Error: unknown argument %q\n", args[i])
			fmt.Fprintf(stderr, "Run 'mkicon help' for usage.\n")
			return 1
		}
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	// Flags win over the config file.
	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}
	if opts.favicon {
		cfg.Favicon = true
	}

	var store *eventlog.FileStore
	if cfg.Log {
		store = eventlog.NewFileStore(eventlog.DefaultPath())
	}

	results, err := generate.Run(generate.Options{
		Dir:     cfg.OutputDir,
		Favicon: cfg.Favicon,
		Progress: func(r generate.Result) {
			fmt.Fprintln(stdout, progressLine(filepath.Base(r.Path), color))
			if store != nil {
				eventlog.Best(stderr, store.LogFile(r.Size, r.Path, r.Bytes))
			}
		},
	})
	if store != nil {
		eventlog.Best(stderr, store.LogRun(cfg.OutputDir, len(results), err))
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func progressLine(name string, color bool) string {
	if color {
		return "\x1b[32m✓\x1b[0m Generated " + name
	}
	return "Generated " + name
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `mkicon - render the extension icon set

Usage:
  mkicon [options]

Options:
  -o, --out DIR        Output directory (default from config, else extension/public/icons)
  -c, --config FILE    Config file path (default: ./icons-config.json)
      --favicon        Also write favicon.ico
  -h, --help           Show this help
  -V, --version        Show version

Existing icon files are overwritten.
`)
}
