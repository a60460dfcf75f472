// Package analysis compares job description terms against a candidate's skills
// and reports the missing ones with a category and priority.
package analysis

import (
	"github.com/jonathan/skill-gap-analyzer/internal/textproc"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

// MaxGapSkills caps the number of missing skills reported
const MaxGapSkills = 20

// Priority thresholds on job description term frequency
const (
	highPriorityFrequency   = 3
	mediumPriorityFrequency = 2
)

// technicalSkills and softSkills drive categorization; anything else is Tool/Other
var (
	technicalSkills = map[string]bool{
		"python": true, "sql": true, "aws": true,
		"docker": true, "react": true, "node": true,
	}
	softSkills = map[string]bool{
		"communication": true, "leadership": true, "collaboration": true,
	}
)

// AnalyzeGap identifies terms present in the job description but missing from
// the candidate's skills. Priorities come from full-document frequencies; the
// MaxGapSkills cap is applied afterwards.
func AnalyzeGap(input *types.SkillGapInput) *types.SkillGapResult {
	result := &types.SkillGapResult{Categories: []types.SkillCategory{}}
	if input == nil {
		return result
	}

	known := NormalizeSkills(input.Skills)
	counts := textproc.Frequencies(input.JobText)

	seen := make(map[string]bool)
	for _, entry := range counts.MostCommon() {
		if known.Contains(entry.Term) {
			continue
		}
		if seen[entry.Term] {
			continue
		}
		seen[entry.Term] = true

		result.Categories = append(result.Categories, types.SkillCategory{
			Skill:    entry.Term,
			Category: Categorize(entry.Term),
			Priority: Prioritize(entry.Count),
		})
		if len(result.Categories) >= MaxGapSkills {
			break
		}
	}

	return result
}

// Categorize returns the category for a term.
// Technical wins over Soft Skill if a term is ever listed in both.
func Categorize(term string) string {
	if technicalSkills[term] {
		return types.CategoryTechnical
	}
	if softSkills[term] {
		return types.CategorySoftSkill
	}
	return types.CategoryToolOther
}

// Prioritize maps a job description term frequency to a gap priority
func Prioritize(frequency int) string {
	switch {
	case frequency >= highPriorityFrequency:
		return types.PriorityHigh
	case frequency == mediumPriorityFrequency:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}
