// Package batch converts many expressions from a YAML case file and checks
// them against expected SQL.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pandasql/internal/convert"
)

// File is a batch of conversion cases.
type File struct {
	// Name identifies the batch in reports.
	Name string `yaml:"name"`

	// Table is the default table for cases that do not set one.
	// Empty means the converter's default table.
	Table string `yaml:"table,omitempty"`

	// Cases are converted in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single expression to convert.
type Case struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`

	// Table overrides File.Table for this case.
	Table string `yaml:"table,omitempty"`

	// Expect is the SQL the case must produce. Empty means the case only
	// records its output and always passes. Use the unsupported-pattern
	// message to assert that an expression is rejected.
	Expect string `yaml:"expect,omitempty"`
}

// Load reads and parses a batch YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or is missing required fields.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a batch file with strict field checking.
func Parse(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid batch: file is empty")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateFile(&f); err != nil {
		return nil, fmt.Errorf("invalid batch: %w", err)
	}

	return &f, nil
}

func validateFile(f *File) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(f.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range f.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if c.Expression == "" {
			return fmt.Errorf("cases[%d]: expression is required", i)
		}
	}

	return nil
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name       string   `json:"name"`
	Expression string   `json:"expression"`
	Table      string   `json:"table"`
	Pattern    string   `json:"pattern"`
	SQL        string   `json:"sql"`
	Expected   string   `json:"expected,omitempty"`
	Pass       bool     `json:"pass"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Report is the outcome of a batch.
type Report struct {
	Name   string       `json:"name"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// Runner converts batches with one converter.
type Runner struct {
	converter *convert.Converter
	logger    *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards diagnostics.
func NewRunner(c *convert.Converter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{converter: c, logger: logger}
}

// Run converts every case in f.
func (r *Runner) Run(f *File) Report {
	report := Report{
		Name:  f.Name,
		Cases: make([]CaseResult, 0, len(f.Cases)),
		Total: len(f.Cases),
	}

	for _, c := range f.Cases {
		result := r.runCase(f, c)
		if result.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Cases = append(report.Cases, result)
	}

	r.logger.Info("batch finished", "name", f.Name, "passed", report.Passed, "failed", report.Failed)
	return report
}

func (r *Runner) runCase(f *File, c Case) CaseResult {
	table := c.Table
	if table == "" {
		table = f.Table
	}
	if table == "" {
		table = r.converter.DefaultTable()
	}

	result := CaseResult{
		Name:       c.Name,
		Expression: c.Expression,
		Table:      table,
		Expected:   c.Expect,
	}

	res, err := r.converter.Translate(c.Expression, table)
	if err != nil {
		result.Pattern = "unsupported"
		result.SQL = convert.Unsupported
		r.logger.Debug("case unsupported", "case", c.Name, "error", err)
	} else {
		result.Pattern = res.Pattern.String()
		result.SQL = res.SQL
		result.Warnings = res.Warnings
	}

	result.Pass = c.Expect == "" || c.Expect == result.SQL
	if !result.Pass {
		r.logger.Debug("case mismatch", "case", c.Name, "expected", c.Expect, "got", result.SQL)
	}

	return result
}
