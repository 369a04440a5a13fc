package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/de-tools/risk-atlas/pkg/models/domain"
	"github.com/de-tools/risk-atlas/pkg/services/scoring"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	barEmpty    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B3B4F"))

	// Severity palette shared with the usual security tooling.
	ratingColors = map[domain.RiskRating]lipgloss.Color{
		domain.RatingLow:       lipgloss.Color("#6BCB77"),
		domain.RatingMediumLow: lipgloss.Color("#FFD93D"),
		domain.RatingMedium:    lipgloss.Color("#FFB800"),
		domain.RatingHigh:      lipgloss.Color("#FF6B6B"),
		domain.RatingCritical:  lipgloss.Color("#FF0000"),
	}
)

func ratingStyle(r domain.RiskRating) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ratingColors[r]).Bold(true)
}

func separator() string {
	return mutedStyle.Render(strings.Repeat("─", 60))
}

// Renderer prints the finished report. It consumes only the plain scores and
// ratings; every visual encoding lives here.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Render(rep *domain.Report) {
	fmt.Fprintf(r.w, "\n%s\n", headerStyle.Render("RISK ASSESSMENT REPORT"))
	fmt.Fprintf(r.w, "Organisation : %s\n", rep.OrgName)
	fmt.Fprintf(r.w, "Date         : %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.w, "%s\n", separator())

	fmt.Fprintf(r.w, "\n%s\n", headerStyle.Render("DOMAIN SCORES"))
	for _, d := range rep.Domains {
		style := ratingStyle(d.Rating)
		fmt.Fprintf(r.w, "\n%s\n", d.DomainName)
		fmt.Fprintf(r.w, "  [%s] %s\n",
			buildBar(d.Score, style),
			style.Render(fmt.Sprintf("%d%% — %s", scoring.Round(d.Score), d.Rating)))
	}

	overall := rep.Overall
	style := ratingStyle(overall.Rating)
	fmt.Fprintf(r.w, "\n%s\n", separator())
	fmt.Fprintf(r.w, "\n%s\n", headerStyle.Render("OVERALL RISK SCORE"))
	fmt.Fprintf(r.w, "\n  %s\n", style.Render(fmt.Sprintf("%d%% — %s RISK", scoring.Round(overall.Score), overall.Rating)))

	r.renderRecommendations(rep)
	fmt.Fprintf(r.w, "\n%s\n", separator())
}

func (r *Renderer) renderRecommendations(rep *domain.Report) {
	flagged := make([]domain.DomainResult, 0, len(rep.Domains))
	for _, d := range rep.Domains {
		if len(d.Recommendations) > 0 {
			flagged = append(flagged, d)
		}
	}
	if len(flagged) == 0 {
		fmt.Fprintf(r.w, "\n%s\n", headerStyle.Render("Strong security posture across all domains."))
		fmt.Fprintln(r.w, "Continue regular reviews and maintain current controls.")
		return
	}

	// Weakest domains first.
	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].Score < flagged[j].Score
	})

	fmt.Fprintf(r.w, "\n%s\n", headerStyle.Render("PRIORITY RECOMMENDATIONS"))
	for _, d := range flagged {
		fmt.Fprintf(r.w, "\n%s\n", ratingStyle(d.Rating).Render("▸ "+d.DomainName))
		for _, rec := range d.Recommendations {
			fmt.Fprintf(r.w, "  • %s\n", rec)
		}
	}
}

// buildBar renders a fixed-width block bar for a 0-100 score.
func buildBar(score float64, filledStyle lipgloss.Style) string {
	filled := int(score) * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filledStyle.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", barWidth-filled))
}
