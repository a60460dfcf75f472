// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
	// maxPreviewLength bounds text previews
	maxPreviewLength = 120
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisInput outputs a summary of the job text and the merged skill list.
func (p *Printer) PrintAnalysisInput(input *types.SkillGapInput) {
	if input == nil {
		return
	}

	var sb strings.Builder

	preview := strings.Join(strings.Fields(input.JobText), " ")
	if runes := []rune(preview); len(runes) > maxPreviewLength {
		preview = string(runes[:maxPreviewLength-3]) + "..."
	}
	sb.WriteString(fmt.Sprintf("Job text: %d chars\n", len(input.JobText)))
	if preview != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", preview))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Candidate skill entries: %d\n", len(input.Skills)))
	count := min(len(input.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", input.Skills[i]))
	}
	if len(input.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(input.Skills)-maxItemsToShow))
	}

	p.printBox("ANALYSIS INPUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtractedTerms outputs the terms extracted from a named source.
func (p *Printer) PrintExtractedTerms(source string, terms []string) {
	if len(terms) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d terms:\n", len(terms)))

	count := min(len(terms), maxItemsToShow)
	sb.WriteString(strings.Join(terms[:count], ", "))
	if len(terms) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(terms)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("EXTRACTED FROM %s", strings.ToUpper(source)), sb.String())
}

// PrintSkillGapResult outputs the missing skills as an aligned table.
func (p *Printer) PrintSkillGapResult(result *types.SkillGapResult) {
	if result == nil {
		return
	}

	if len(result.Categories) == 0 {
		p.printBox("SKILL GAPS", "No missing skills found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d missing skills:\n\n", len(result.Categories)))

	counts := map[string]int{}
	for i, c := range result.Categories {
		sb.WriteString(fmt.Sprintf("%2d. %-20s %-11s %s\n", i+1, c.Skill, c.Category, c.Priority))
		counts[c.Priority]++
	}

	sb.WriteString(fmt.Sprintf("\nHigh: %d  Medium: %d  Low: %d",
		counts[types.PriorityHigh], counts[types.PriorityMedium], counts[types.PriorityLow]))

	p.printBox("SKILL GAPS", sb.String())
}
