package main

import (
	"os"

	"github.com/takoeight0821/inzertion/driver"
)

// ScanFile prints the tokens of the script at path.
func ScanFile(s *settings, path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens, lexErr := s.newRunner().Lex(string(bytes))
	if err := driver.WriteTokens(s.out, s.format, tokens); err != nil {
		return err
	}
	if lexErr != nil {
		return errHadDiagnostics
	}

	return nil
}

// ParseFile prints the statements of the script at path.
// Statements recovered after a syntax error are printed too.
func ParseFile(s *settings, path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	program, parseErr := s.newRunner().RunSource(string(bytes))
	if err := driver.WriteProgram(s.out, s.format, program); err != nil {
		return err
	}
	if parseErr != nil {
		return errHadDiagnostics
	}

	return nil
}
