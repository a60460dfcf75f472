package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/skill-gap-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintAnalysisInput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisInput(&types.SkillGapInput{
		JobText: "We need Python,\n\nSQL and AWS.",
		Skills:  []string{"sql", "excel"},
	})
	output := buf.String()

	assert.Contains(t, output, "ANALYSIS INPUT")
	assert.Contains(t, output, "We need Python, SQL and AWS.")
	assert.Contains(t, output, "Candidate skill entries: 2")
	assert.Contains(t, output, "• excel")
}

func TestPrintAnalysisInput_ManySkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := make([]string, 15)
	for i := range skills {
		skills[i] = fmt.Sprintf("skill%d", i)
	}
	p.PrintAnalysisInput(&types.SkillGapInput{JobText: "Python", Skills: skills})

	assert.Contains(t, buf.String(), "... and 5 more")
	assert.NotContains(t, buf.String(), "skill14")
}

func TestPrintAnalysisInput_LongMultiByteJobText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisInput(&types.SkillGapInput{JobText: strings.Repeat("é", maxPreviewLength*2)})
	output := buf.String()

	assert.True(t, utf8.ValidString(output), "output should be valid UTF-8")
	assert.Contains(t, output, "Job text: 480 chars")
	assert.Contains(t, output, "éé...")
}

func TestPrintAnalysisInput_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisInput(nil)

	assert.Empty(t, buf.String())
}

func TestPrintExtractedTerms(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractedTerms("resume", []string{"python", "aws", "docker"})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED FROM RESUME")
	assert.Contains(t, output, "Extracted 3 terms:")
	assert.Contains(t, output, "python, aws, docker")
}

func TestPrintExtractedTerms_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractedTerms("profile", nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkillGapResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGapResult(&types.SkillGapResult{Categories: []types.SkillCategory{
		{Skill: "python", Category: types.CategoryTechnical, Priority: types.PriorityHigh},
		{Skill: "communication", Category: types.CategorySoftSkill, Priority: types.PriorityLow},
		{Skill: "tableau", Category: types.CategoryToolOther, Priority: types.PriorityLow},
	}})
	output := buf.String()

	assert.Contains(t, output, "SKILL GAPS")
	assert.Contains(t, output, "3 missing skills:")
	assert.Contains(t, output, " 1. python")
	assert.Contains(t, output, "Soft Skill")
	assert.Contains(t, output, "High: 1  Medium: 0  Low: 2")
}

func TestPrintSkillGapResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGapResult(&types.SkillGapResult{Categories: []types.SkillCategory{}})

	assert.Contains(t, buf.String(), "No missing skills found")
}

func TestPrintSkillGapResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGapResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
