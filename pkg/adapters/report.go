package adapters

import (
	"math"

	"github.com/de-tools/risk-atlas/pkg/models/api"
	"github.com/de-tools/risk-atlas/pkg/models/domain"
)

func MapDomainResultDomainToApi(r domain.DomainResult) api.DomainResult {
	return api.DomainResult{
		ID:              r.DomainID,
		Name:            r.DomainName,
		Score:           displayScore(r.Score),
		RawScore:        r.Score,
		Rating:          r.Rating.String(),
		AnsweredYes:     r.AnsweredYes,
		Total:           r.Total,
		Recommendations: append([]string{}, r.Recommendations...),
	}
}

func MapReportDomainToApi(r domain.Report) api.Report {
	res := api.Report{
		ID:           r.ID,
		Organisation: r.OrgName,
		GeneratedAt:  r.GeneratedAt,
		Domains:      make([]api.DomainResult, 0, len(r.Domains)),
		Overall: api.OverallResult{
			Score:    displayScore(r.Overall.Score),
			RawScore: r.Overall.Score,
			Rating:   r.Overall.Rating.String(),
		},
	}
	for _, d := range r.Domains {
		res.Domains = append(res.Domains, MapDomainResultDomainToApi(d))
	}
	return res
}

func MapReportApiToDomain(r api.Report) (domain.Report, error) {
	overallRating, err := domain.RatingFromString(r.Overall.Rating)
	if err != nil {
		return domain.Report{}, err
	}

	res := domain.Report{
		ID:          r.ID,
		OrgName:     r.Organisation,
		GeneratedAt: r.GeneratedAt,
		Domains:     make([]domain.DomainResult, 0, len(r.Domains)),
		Overall: domain.OverallResult{
			Score:  r.Overall.RawScore,
			Rating: overallRating,
		},
	}
	for _, d := range r.Domains {
		rating, err := domain.RatingFromString(d.Rating)
		if err != nil {
			return domain.Report{}, err
		}
		res.Domains = append(res.Domains, domain.DomainResult{
			DomainID:        d.ID,
			DomainName:      d.Name,
			Score:           d.RawScore,
			Rating:          rating,
			Recommendations: append([]string{}, d.Recommendations...),
			AnsweredYes:     d.AnsweredYes,
			Total:           d.Total,
		})
	}
	return res, nil
}

// displayScore rounds to the nearest whole percent for presentation; the
// raw score keeps full precision alongside it.
func displayScore(score float64) int {
	return int(math.Round(score))
}
