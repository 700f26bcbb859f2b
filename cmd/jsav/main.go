// Command jsav lexes jsav source files.
//
// Usage:
//
//	jsav -i main.jsav            report lexical errors
//	jsav -i main.jsav -tokens    print every token
//	jsav -i main.jsav -color     print the source highlighted
//	jsav -repl                   lex lines interactively
//
// The exit status is 0 when the input lexes cleanly, 1 when it contains
// lexical errors and 2 on usage or I/O failure.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hassan/jsav/internal/diag"
	"github.com/hassan/jsav/internal/highlight"
	"github.com/hassan/jsav/internal/lexer"
	"github.com/hassan/jsav/internal/source"
)

const (
	appName = "jsav"
	version = "0.1.0"
)

const (
	exitOK     = 0
	exitLexErr = 1
	exitUsage  = 2
)

type config struct {
	input   string
	version bool
	tokens  bool
	color   bool
	repl    bool
	debug   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	if cfg.version {
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return exitOK
	}

	logger := newLogger(stderr, cfg.debug)

	if cfg.repl {
		return runREPL(stdout, stderr, logger)
	}

	if cfg.input == "" {
		fmt.Fprintf(stderr, "%s: no input file (use -i <file>)\n", appName)
		return exitUsage
	}
	return lexFile(cfg, stdout, stderr, logger)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "i", "", "input `file`")
	fs.StringVar(&cfg.input, "input", "", "input `file` (same as -i)")
	fs.BoolVar(&cfg.version, "v", false, "print the version and exit")
	fs.BoolVar(&cfg.version, "version", false, "print the version and exit (same as -v)")
	fs.BoolVar(&cfg.tokens, "tokens", false, "print every token")
	fs.BoolVar(&cfg.color, "color", false, "print the source with syntax highlighting")
	fs.BoolVar(&cfg.repl, "repl", false, "lex lines read from the terminal")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [file]\n", appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	switch {
	case fs.NArg() == 1 && cfg.input == "":
		cfg.input = fs.Arg(0)
	case fs.NArg() > 0:
		fmt.Fprintf(stderr, "%s: unexpected arguments %q\n", appName, fs.Args())
		fs.Usage()
		return cfg, errors.New("unexpected arguments")
	}
	return cfg, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func lexFile(cfg config, stdout, stderr io.Writer, logger *slog.Logger) int {
	start := time.Now()
	f, err := source.ReadFile(cfg.input)
	if err != nil {
		logger.Error("cannot read input", slog.Any("error", err))
		return exitUsage
	}
	logger.Info("read source",
		slog.String("path", f.Path),
		slog.String("size", source.FormatSize(f.Size)),
		slog.Duration("elapsed", time.Since(start)))

	start = time.Now()
	lx, err := lexer.New(f.Content, f.Path, lexer.WithLogger(logger))
	if err != nil {
		logger.Error("cannot lex input", slog.Any("error", err))
		return exitUsage
	}
	tokens := lx.Tokenize()
	logger.Info("tokenized",
		slog.Int("tokens", len(tokens)),
		slog.Duration("elapsed", time.Since(start)))

	if cfg.tokens {
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok)
		}
	}
	if cfg.color {
		theme := highlight.NewTheme(lipgloss.NewRenderer(stdout))
		fmt.Fprint(stdout, theme.Render(f.Content, tokens))
	}

	errs := diag.FromTokens(tokens, f.Content)
	if errs.HasErrors() {
		fmt.Fprint(stderr, errs.FormatAll())
		logger.Info("lexing failed", slog.Int("count", errs.Len()))
		return exitLexErr
	}
	return exitOK
}
