// Package schemas embeds the JSON Schema documents describing CLI output.
package schemas

import _ "embed"

// SkillGapResult is the schema for analyze command output
//
//go:embed skill_gap_result.schema.json
var SkillGapResult string
