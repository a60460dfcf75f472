// Package types provides type definitions for structured data used throughout the skill-gap-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Category values for a missing skill
const (
	CategoryTechnical = "Technical"
	CategorySoftSkill = "Soft Skill"
	CategoryToolOther = "Tool/Other"
)

// Priority values derived from job description term frequency
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// SkillGapInput is the input to a skill gap analysis.
// Skills holds raw entries as supplied by the caller; entries may be comma-joined
// and are normalized by the analyzer.
type SkillGapInput struct {
	JobText string   `json:"jd_text"`
	Skills  []string `json:"skills"`
}

// NewSkillGapInput builds an input from job text and any number of skill lists.
// The skill lists are concatenated in argument order.
func NewSkillGapInput(jobText string, skillLists ...[]string) *SkillGapInput {
	var skills []string
	for _, list := range skillLists {
		skills = append(skills, list...)
	}
	return &SkillGapInput{
		JobText: jobText,
		Skills:  skills,
	}
}

// SkillCategory is a single missing skill with its category and gap priority
type SkillCategory struct {
	Skill    string `json:"skill" validate:"required"`
	Category string `json:"category" validate:"required,oneof=Technical 'Soft Skill' Tool/Other"`
	Priority string `json:"priority" validate:"required,oneof=High Medium Low"`
}

// SkillGapResult is the ordered output of a skill gap analysis
type SkillGapResult struct {
	Categories []SkillCategory `json:"categories" validate:"max=20,dive"`
}

// Validate validates the SkillGapResult using the validator.
func (r *SkillGapResult) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Skills returns the skill names in result order.
func (r *SkillGapResult) Skills() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		names[i] = c.Skill
	}
	return names
}
