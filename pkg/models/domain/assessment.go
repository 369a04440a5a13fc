package domain

import (
	"fmt"
	"time"
)

// RiskRating is a qualitative severity label derived from a score band.
// Lower values are better postures.
type RiskRating int

const (
	RatingLow RiskRating = iota
	RatingMediumLow
	RatingMedium
	RatingHigh
	RatingCritical
)

func (r RiskRating) String() string {
	switch r {
	case RatingLow:
		return "LOW"
	case RatingMediumLow:
		return "MEDIUM-LOW"
	case RatingMedium:
		return "MEDIUM"
	case RatingHigh:
		return "HIGH"
	case RatingCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// RatingFromString reconstructs a RiskRating from its display form.
func RatingFromString(s string) (RiskRating, error) {
	switch s {
	case "LOW":
		return RatingLow, nil
	case "MEDIUM-LOW":
		return RatingMediumLow, nil
	case "MEDIUM":
		return RatingMedium, nil
	case "HIGH":
		return RatingHigh, nil
	case "CRITICAL":
		return RatingCritical, nil
	default:
		return 0, fmt.Errorf("unknown risk rating %q: %w", s, ErrInvalidInput)
	}
}

// Question is a single weighted yes/no check. Remediation, when present,
// is surfaced as a recommendation if the question is answered "no".
type Question struct {
	ID          string
	Text        string
	Weight      float64
	Remediation string
}

// Domain groups the questions for one assessment category. Question order
// is display order and recommendation order.
type Domain struct {
	ID        string
	Name      string
	Questions []Question
}

// Answers maps question IDs to the collected yes/no responses for one run.
type Answers map[string]bool

// DomainResult is the computed outcome for a single domain.
type DomainResult struct {
	DomainID        string
	DomainName      string
	Score           float64 // [0,100], full precision
	Rating          RiskRating
	Recommendations []string
	AnsweredYes     int
	Total           int
}

// OverallResult aggregates all domain scores into one posture figure.
type OverallResult struct {
	Score  float64
	Rating RiskRating
}

// Report is the immutable outcome of one assessment run. Domains appear in
// question-bank order.
type Report struct {
	ID          string
	OrgName     string
	GeneratedAt time.Time
	Domains     []DomainResult
	Overall     OverallResult
}
