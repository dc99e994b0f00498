package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/pulse/internal"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

func runRepl(session *internal.Session, cfg internal.ReplConfig) int {
	fmt.Println(color.Bold("Pulse") + " interactive mode, Ctrl-D to exit")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(cfg.HistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			logrus.WithField("path", histPath).Warn("cannot save history: ", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	for {
		source, ok := readInput(ln, cfg.Prompt, cfg.Continuation)
		if !ok {
			fmt.Println()
			return internal.ExitOK
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
		session.RunSource(source + "\n")
	}
}

// readInput reads one statement. A line ending with ':' opens a block and
// input continues until an empty line closes it.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	inBlock := false

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if errors.Is(err, io.EOF) {
			return b.String(), b.Len() > 0
		}
		if err != nil {
			logrus.Fatal(err)
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, ":") {
			inBlock = true
		}
		if !inBlock || trimmed == "" {
			return b.String(), true
		}
	}
}

func historyPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
