package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/hassan/jsav/internal/diag"
	"github.com/hassan/jsav/internal/lexer"
)

const (
	replPath    = "<repl>"
	replPrompt  = "jsav> "
	historyFile = ".jsav_history"
)

func runREPL(stdout, stderr io.Writer, logger *slog.Logger) int {
	fmt.Fprintf(stdout, "%s %s lexer REPL. Type :quit to exit.\n", appName, version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := historyPath(); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	} else {
		logger.Debug("history disabled: no home directory")
	}

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(stdout)
			return exitOK
		}
		if err != nil {
			logger.Error("read line", slog.Any("error", err))
			return exitUsage
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit", ":q":
			return exitOK
		}
		ln.AppendHistory(line)
		lexLine(line, stdout, stderr, logger)
	}
}

// historyPath returns the history file in the user's home directory. It
// reports false when the home directory cannot be determined, in which case
// history is not kept at all.
func historyPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, historyFile), true
}

// lexLine prints the tokens of one line followed by its diagnostics.
func lexLine(line string, stdout, stderr io.Writer, logger *slog.Logger) {
	lx, err := lexer.New(line, replPath, lexer.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return
	}
	tokens := lx.Tokenize()
	for _, tok := range tokens[:len(tokens)-1] {
		fmt.Fprintln(stdout, tok)
	}
	if errs := diag.FromTokens(tokens, line); errs.HasErrors() {
		fmt.Fprint(stderr, errs.FormatAll())
	}
}
