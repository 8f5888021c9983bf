package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/takoeight0821/inzertion/driver"
)

var history = filepath.Join(xdg.DataHome, "inzertion", ".izr_history")

// RunPrompt parses each line on its own and prints the statements.
// Lines do not share any state; diagnostics of one line do not affect the next.
func RunPrompt(s *settings) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if s.cfg.REPL.History {
			saveHistory(line)
		}
		line.Close()
	}()

	if s.cfg.REPL.History {
		if f, err := os.Open(history); err == nil {
			defer f.Close()
			if _, err := line.ReadHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}

	r := s.newRunner()
	for {
		input, err := line.Prompt(s.cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		line.AppendHistory(input)

		// diagnostics are already on s.errOut
		r.Log().Reset()
		program, _ := r.RunSource(input)
		if err := driver.WriteProgram(s.out, s.format, program); err != nil {
			return err
		}
	}
}

func saveHistory(line *liner.State) {
	if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	f, err := os.Create(history)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
