// Package scoring converts collected answers into domain and overall
// percentage scores.
package scoring

import (
	"fmt"
	"math"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
)

// Score computes the weighted percentage of positively answered questions
// for one domain: 100 * sum(weights of "yes") / sum(all weights). Every
// question in the domain must have an answer.
func Score(d domain.Domain, answers domain.Answers) (float64, error) {
	var total, positive float64
	for _, q := range d.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			return 0, fmt.Errorf("domain %q question %q: %w", d.ID, q.ID, domain.ErrMissingAnswer)
		}
		total += q.Weight
		if answer {
			positive += q.Weight
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("domain %q has no weighted questions: %w", d.ID, domain.ErrInvalidInput)
	}
	return 100 * positive / total, nil
}

// Overall aggregates domain results into one posture score. Policy: the
// unweighted arithmetic mean of the domain percentages, so every domain
// counts equally regardless of how many questions it holds.
func Overall(results []domain.DomainResult) (float64, error) {
	if len(results) == 0 {
		return 0, fmt.Errorf("no domain results to aggregate: %w", domain.ErrInvalidInput)
	}
	var sum float64
	for _, r := range results {
		sum += r.Score
	}
	return sum / float64(len(results)), nil
}

// Round converts a full-precision score to the nearest whole percent for
// display and export.
func Round(score float64) int {
	return int(math.Round(score))
}
