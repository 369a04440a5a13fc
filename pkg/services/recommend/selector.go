// Package recommend selects remediation text for negatively answered
// questions.
package recommend

import (
	"fmt"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
)

// Recommend returns the remediation texts for every question in the domain
// answered "no", in the domain's declared question order. Questions without
// remediation text are skipped, so the result may be empty.
func Recommend(d domain.Domain, answers domain.Answers) ([]string, error) {
	var recs []string
	for _, q := range d.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			return nil, fmt.Errorf("domain %q question %q: %w", d.ID, q.ID, domain.ErrMissingAnswer)
		}
		if !answer && q.Remediation != "" {
			recs = append(recs, q.Remediation)
		}
	}
	return recs, nil
}
