package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/risk-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/risk-atlas/pkg/services/assessment"
	"github.com/de-tools/risk-atlas/pkg/services/bank"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AssessCmd struct {
	questionsPath string
	outputPath    string
	format        string
	noColor       bool

	bank bank.Bank
	in   io.Reader
	out  io.Writer
}

// NewAssessCmd builds the interactive assessment command.
func NewAssessCmd(b bank.Bank, in io.Reader, out io.Writer) *cobra.Command {
	ac := &AssessCmd{bank: b, in: in, out: out}
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run an interactive IT risk assessment",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.questionsPath, "questions", "", "Path to a custom question bank file")
	cmd.Flags().StringVar(&ac.outputPath, "output", "", "Export the report to this path after the run")
	cmd.Flags().StringVar(&ac.format, "format", string(export.FormatJSON), "Export format (json or yaml)")
	cmd.Flags().BoolVar(&ac.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (ac *AssessCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	format, err := export.ParseFormat(ac.format)
	if err != nil {
		return err
	}

	if ac.noColor || os.Getenv("RISK_ATLAS_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	b := ac.bank
	if ac.questionsPath != "" {
		b, err = bank.Load(ac.questionsPath)
		if err != nil {
			return err
		}
		log.Info().Str("path", ac.questionsPath).Int("questions", b.QuestionCount()).Msg("loaded custom question bank")
	}

	collector := NewCollector(ac.in, ac.out)

	fmt.Fprintf(ac.out, "%s\n", headerStyle.Render("IT RISK ASSESSMENT"))
	fmt.Fprintf(ac.out, "This tool evaluates IT risk across %d domains.\n", len(b.Domains))
	fmt.Fprintln(ac.out, "Answer each question honestly for an accurate risk score.")

	orgName, err := collector.OrgName()
	if err != nil {
		return err
	}
	answers, err := collector.Collect(b)
	if err != nil {
		return err
	}

	report, err := assessment.NewAssembler().Assemble(ctx, b, orgName, answers)
	if err != nil {
		return err
	}

	NewRenderer(ac.out).Render(report)

	writer := export.NewWriter(format)
	if ac.outputPath != "" {
		if err := writer.Write(*report, ac.outputPath); err != nil {
			return err
		}
		fmt.Fprintf(ac.out, "\nReport saved to: %s\n", ac.outputPath)
		return nil
	}

	confirmed, err := collector.Confirm(fmt.Sprintf("Export report to %s?", format))
	if err != nil {
		// Input closed after the report was already rendered; nothing left
		// to recover.
		log.Warn().Err(err).Msg("export prompt skipped")
		return nil
	}
	if !confirmed {
		return nil
	}

	path := export.DefaultFilename(time.Now(), format)
	if err := writer.Write(*report, path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("export failed")
		fmt.Fprintf(ac.out, "\nExport failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(ac.out, "\nReport saved to: %s\n", path)
	return nil
}
