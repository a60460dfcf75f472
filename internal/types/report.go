package types

import (
	"time"

	"github.com/google/uuid"
)

// ReportMetadata describes a single analysis run
type ReportMetadata struct {
	AnalysisID          uuid.UUID `json:"analysis_id"`
	GeneratedAt         string    `json:"generated_at"` // RFC3339 format
	JobHash             string    `json:"job_hash"`     // SHA256 hex digest of the job text
	JobTermCount        int       `json:"job_term_count"`
	CandidateSkillCount int       `json:"candidate_skill_count"`
}

// SkillGapReport wraps a SkillGapResult with run metadata
type SkillGapReport struct {
	ReportMetadata
	SkillGapResult
}

// NewReportMetadata creates metadata with a fresh analysis ID and the current timestamp
func NewReportMetadata(jobHash string, jobTermCount, candidateSkillCount int) ReportMetadata {
	return ReportMetadata{
		AnalysisID:          uuid.New(),
		GeneratedAt:         time.Now().UTC().Format(time.RFC3339),
		JobHash:             jobHash,
		JobTermCount:        jobTermCount,
		CandidateSkillCount: candidateSkillCount,
	}
}
