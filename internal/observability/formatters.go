// Package observability provides formatted output utilities for the check
// command's verbose reporting.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for the data-integrity report.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDataSummary outputs a human-readable overview of the seed data.
func (p *Printer) PrintDataSummary(profile types.Profile, certifications, posts int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:            %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Title:           %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Skills:          %d\n", len(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Experience:      %d\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Certifications:  %d\n", certifications))
	sb.WriteString(fmt.Sprintf("Blog posts:      %d", posts))

	p.printBox("Portfolio Data", sb.String())
}

// CheckResult is the outcome of a single integrity check.
type CheckResult struct {
	Name string
	Err  error
}

// PrintCheckResults outputs one line per check with its outcome.
func (p *Printer) PrintCheckResults(results []CheckResult) {
	var sb strings.Builder

	for i, res := range results {
		mark := "ok"
		if res.Err != nil {
			mark = "FAIL"
		}
		sb.WriteString(fmt.Sprintf("%-30s %s", res.Name, mark))
		if i < len(results)-1 {
			sb.WriteByte('\n')
		}
	}

	p.printBox("Integrity Checks", sb.String())

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(p.out, "%s: %v\n", res.Name, res.Err)
		}
	}
}
