package analysis

import (
	"sort"
	"strings"
)

// SkillSet is a set of normalized skill names
type SkillSet map[string]struct{}

// NormalizeSkills splits each raw entry on commas, trims whitespace and
// lowercases. Empty pieces are discarded.
func NormalizeSkills(raw []string) SkillSet {
	set := make(SkillSet)
	for _, entry := range raw {
		for _, piece := range strings.Split(entry, ",") {
			cleaned := strings.ToLower(strings.TrimSpace(piece))
			if cleaned == "" {
				continue
			}
			set[cleaned] = struct{}{}
		}
	}
	return set
}

// Contains reports whether skill is in the set. skill must already be normalized.
func (s SkillSet) Contains(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Len returns the number of distinct skills
func (s SkillSet) Len() int {
	return len(s)
}

// Sorted returns the skills in alphabetical order
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// MergeSkills concatenates manual skills with any number of extracted skill
// lists, keeping argument order.
func MergeSkills(manual []string, extracted ...[]string) []string {
	merged := make([]string, 0, len(manual))
	merged = append(merged, manual...)
	for _, list := range extracted {
		merged = append(merged, list...)
	}
	return merged
}
