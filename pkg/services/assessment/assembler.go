// Package assessment assembles a full report from a question bank and the
// collected answers.
package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
	"github.com/de-tools/risk-atlas/pkg/services/bank"
	"github.com/de-tools/risk-atlas/pkg/services/rating"
	"github.com/de-tools/risk-atlas/pkg/services/recommend"
	"github.com/de-tools/risk-atlas/pkg/services/scoring"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Assembler builds reports. Now is injectable so tests get fixed timestamps.
type Assembler struct {
	Now func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{Now: time.Now}
}

// Assemble scores every domain in bank order, classifies the results, picks
// recommendations, and aggregates the overall posture into one immutable
// report.
func (a *Assembler) Assemble(
	ctx context.Context,
	b bank.Bank,
	orgName string,
	answers domain.Answers,
) (*domain.Report, error) {
	log := zerolog.Ctx(ctx)

	orgName = strings.TrimSpace(orgName)
	if orgName == "" {
		return nil, fmt.Errorf("organisation name is empty: %w", domain.ErrInvalidInput)
	}

	results := make([]domain.DomainResult, 0, len(b.Domains))
	for _, d := range b.Domains {
		score, err := scoring.Score(d, answers)
		if err != nil {
			return nil, err
		}
		rate, err := rating.Classify(score)
		if err != nil {
			return nil, err
		}
		recs, err := recommend.Recommend(d, answers)
		if err != nil {
			return nil, err
		}

		yes := 0
		for _, q := range d.Questions {
			if answers[q.ID] {
				yes++
			}
		}

		log.Debug().
			Str("domain", d.ID).
			Float64("score", score).
			Stringer("rating", rate).
			Msg("domain scored")

		results = append(results, domain.DomainResult{
			DomainID:        d.ID,
			DomainName:      d.Name,
			Score:           score,
			Rating:          rate,
			Recommendations: recs,
			AnsweredYes:     yes,
			Total:           len(d.Questions),
		})
	}

	overall, err := scoring.Overall(results)
	if err != nil {
		return nil, err
	}
	overallRating, err := rating.Classify(overall)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Float64("score", overall).
		Stringer("rating", overallRating).
		Msg("overall posture computed")

	return &domain.Report{
		ID:          uuid.NewString(),
		OrgName:     orgName,
		GeneratedAt: a.Now(),
		Domains:     results,
		Overall: domain.OverallResult{
			Score:  overall,
			Rating: overallRating,
		},
	}, nil
}
