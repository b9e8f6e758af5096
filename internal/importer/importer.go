// Package importer parses bank and accounting export files into raw
// transaction records. A file may contain several concatenated export
// sections (users paste exports together); each recognized header line
// starts a new section, and each section is parsed by the format whose
// header signature it matches. Parsing fails softly: unrecognized content
// yields no records, and malformed rows are skipped and counted.
package importer

import (
	"strings"

	"github.com/holdback-dev/holdback/internal/model"
)

// Parser handles one export format.
type Parser interface {
	// Format returns the parser name.
	Format() string
	// Matches reports whether the given header row belongs to this format.
	Matches(header []string) bool
	// ParseRow converts one data row into a RawRecord. ok is false for
	// rows that should be skipped (missing date, zero amount, malformed).
	ParseRow(header, row []string) (rec model.RawRecord, ok bool)
}

// Registry holds the known format parsers in detection order.
type Registry struct {
	parsers []Parser
}

// Result is the outcome of parsing one file.
type Result struct {
	Records  []model.RawRecord
	Skipped  int // malformed or dropped data rows
	Sections int // recognized export sections
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	for _, existing := range r.parsers {
		if strings.EqualFold(existing.Format(), p.Format()) {
			panic("duplicate parser format: " + p.Format())
		}
	}
	r.parsers = append(r.parsers, p)
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	for _, p := range r.parsers {
		if strings.EqualFold(p.Format(), format) {
			return p
		}
	}
	return nil
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&BankParser{})
	r.Register(&CardParser{})
	r.Register(&LedgerParser{})
	return r
}

// detect returns the parser whose header signature matches, or nil.
func (r *Registry) detect(fields []string) Parser {
	lowered := make([]string, len(fields))
	for i, f := range fields {
		lowered[i] = strings.ToLower(strings.TrimSpace(f))
	}
	for _, p := range r.parsers {
		if p.Matches(lowered) {
			return p
		}
	}
	return nil
}

// ParseText parses a full export file, splitting it into sections at each
// recognized header line. Lines before the first recognized header are
// ignored, as is any section whose header no parser recognizes.
func (r *Registry) ParseText(text string) Result {
	var res Result

	var current Parser
	var header []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line)
		if p := r.detect(fields); p != nil {
			current = p
			header = lowerTrim(fields)
			res.Sections++
			continue
		}

		if current == nil {
			continue
		}

		rec, ok := current.ParseRow(header, fields)
		if !ok {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res
}

func lowerTrim(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return out
}

// column returns the index of the named header column, or -1.
func column(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// cell returns the trimmed value at idx, or "" when out of range.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
