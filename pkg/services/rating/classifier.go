// Package rating maps percentage scores onto qualitative risk ratings.
package rating

import (
	"fmt"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
)

// Classify derives the risk rating for a score. Bands are inclusive on
// their lower bound: >=90 LOW, >=70 MEDIUM-LOW, >=50 MEDIUM, >=25 HIGH,
// everything else CRITICAL. Scores outside [0,100] are rejected.
func Classify(score float64) (domain.RiskRating, error) {
	if score < 0 || score > 100 {
		return 0, fmt.Errorf("cannot classify score %.2f: %w", score, domain.ErrInvalidScore)
	}

	switch {
	case score >= 90:
		return domain.RatingLow, nil
	case score >= 70:
		return domain.RatingMediumLow, nil
	case score >= 50:
		return domain.RatingMedium, nil
	case score >= 25:
		return domain.RatingHigh, nil
	default:
		return domain.RatingCritical, nil
	}
}
