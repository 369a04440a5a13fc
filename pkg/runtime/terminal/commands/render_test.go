package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/risk-atlas/pkg/models/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Deterministic, style-free output in tests.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestBuildBar(t *testing.T) {
	plain := lipgloss.NewStyle()

	assert.Equal(t, strings.Repeat("█", 20), buildBar(100, plain))
	assert.Equal(t, strings.Repeat("░", 20), buildBar(0, plain))
	assert.Equal(t, strings.Repeat("█", 16)+strings.Repeat("░", 4), buildBar(80, plain))
	assert.Equal(t, strings.Repeat("█", 13)+strings.Repeat("░", 7), buildBar(66.7, plain))
}

func TestRender(t *testing.T) {
	rep := &domain.Report{
		ID:          "run-1",
		OrgName:     "Acme Corp",
		GeneratedAt: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Domains: []domain.DomainResult{
			{
				DomainID:        "access-control",
				DomainName:      "Access Control & Identity Management",
				Score:           40,
				Rating:          domain.RatingHigh,
				Recommendations: []string{"Enforce MFA everywhere."},
			},
			{
				DomainID:   "data-security",
				DomainName: "Data Security & Privacy",
				Score:      100,
				Rating:     domain.RatingLow,
			},
			{
				DomainID:        "network-security",
				DomainName:      "Network & Infrastructure Security",
				Score:           20,
				Rating:          domain.RatingCritical,
				Recommendations: []string{"Implement network micro-segmentation."},
			},
		},
		Overall: domain.OverallResult{Score: 53.333333333333336, Rating: domain.RatingMedium},
	}

	var out bytes.Buffer
	NewRenderer(&out).Render(rep)
	got := out.String()

	assert.Contains(t, got, "RISK ASSESSMENT REPORT")
	assert.Contains(t, got, "Organisation : Acme Corp")
	assert.Contains(t, got, "Date         : 2026-08-26 12:00:00")
	assert.Contains(t, got, "40% — HIGH")
	assert.Contains(t, got, "100% — LOW")
	assert.Contains(t, got, "53% — MEDIUM RISK")

	// Weakest domain leads the recommendations section.
	assert.Contains(t, got, "PRIORITY RECOMMENDATIONS")
	network := strings.Index(got, "▸ Network & Infrastructure Security")
	access := strings.Index(got, "▸ Access Control & Identity Management")
	assert.True(t, network >= 0 && access >= 0 && network < access)

	// Clean domains stay out of the recommendations section.
	assert.NotContains(t, got, "▸ Data Security & Privacy")
}

func TestRender_NoRecommendations(t *testing.T) {
	rep := &domain.Report{
		OrgName:     "Acme Corp",
		GeneratedAt: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Domains: []domain.DomainResult{{
			DomainID:   "access-control",
			DomainName: "Access Control & Identity Management",
			Score:      95,
			Rating:     domain.RatingLow,
		}},
		Overall: domain.OverallResult{Score: 95, Rating: domain.RatingLow},
	}

	var out bytes.Buffer
	NewRenderer(&out).Render(rep)
	got := out.String()

	assert.NotContains(t, got, "PRIORITY RECOMMENDATIONS")
	assert.Contains(t, got, "Strong security posture across all domains.")
}
