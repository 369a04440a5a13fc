package api

import "time"

// Report is the stable export representation of an assessment run. Field
// names are part of the export contract; downstream consumers rely on them.
type Report struct {
	ID           string         `json:"id" yaml:"id"`
	Organisation string         `json:"organisation" yaml:"organisation"`
	GeneratedAt  time.Time      `json:"generated_at" yaml:"generated_at"`
	Domains      []DomainResult `json:"domains" yaml:"domains"`
	Overall      OverallResult  `json:"overall" yaml:"overall"`
}

// DomainResult carries both the rounded display score and the full-precision
// raw score so exports round-trip without loss.
type DomainResult struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Score           int      `json:"score" yaml:"score"`
	RawScore        float64  `json:"raw_score" yaml:"raw_score"`
	Rating          string   `json:"rating" yaml:"rating"`
	AnsweredYes     int      `json:"answered_yes" yaml:"answered_yes"`
	Total           int      `json:"total" yaml:"total"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

type OverallResult struct {
	Score    int     `json:"score" yaml:"score"`
	RawScore float64 `json:"raw_score" yaml:"raw_score"`
	Rating   string  `json:"rating" yaml:"rating"`
}
