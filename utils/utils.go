// Package utils holds helpers shared by the package tests.
package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/inzertion/diag"
	"github.com/takoeight0821/inzertion/driver"
	"gopkg.in/yaml.v3"
)

// TestData is one entry of testdata/testcase.yaml.
// Expected maps a stage ("parser", "diagnostics") to its rendered output.
type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) ([]TestData, error) {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		return nil, fmt.Errorf("read test data: %w", err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data, nil
}

// FindSourceFiles returns the *.izr files directly under dir, sorted by name.
func FindSourceFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.izr"))
	if err != nil {
		return nil, fmt.Errorf("find source files: %w", err)
	}

	return files, nil
}

type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
}

// RunTest parses testcase.Input and compares the statements, one per line, with Expected["parser"],
// and the diagnostics, one per line, with Expected["diagnostics"] (empty when missing).
func RunTest(t Reporter, testcase TestData) {
	t.Helper()

	log := diag.NewLog(nil, false)
	program, _ := driver.NewRunner(log).RunSource(testcase.Input)

	var b strings.Builder
	for _, stmt := range program {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	if diff := cmp.Diff(testcase.Expected["parser"], b.String()); diff != "" {
		t.Errorf("%s: statements mismatch (-want +got):\n%s", testcase.Label, diff)
	}

	b.Reset()
	for _, d := range log.Diagnostics() {
		b.WriteString(d.Error())
		b.WriteString("\n")
	}
	if diff := cmp.Diff(testcase.Expected["diagnostics"], b.String()); diff != "" {
		t.Errorf("%s: diagnostics mismatch (-want +got):\n%s", testcase.Label, diff)
	}
}
