package commands

import (
	"fmt"

	"github.com/de-tools/risk-atlas/pkg/services/bank"

	"github.com/spf13/cobra"
)

type DomainsCmd struct {
	questionsPath string
	bank          bank.Bank
}

// NewDomainsCmd lists the assessment domains and their question counts.
func NewDomainsCmd(b bank.Bank) *cobra.Command {
	dc := &DomainsCmd{bank: b}
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List assessment domains and their questions",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.questionsPath, "questions", "", "Path to a custom question bank file")

	return cmd
}

func (dc *DomainsCmd) run(cmd *cobra.Command, _ []string) error {
	b := dc.bank
	if dc.questionsPath != "" {
		var err error
		b, err = bank.Load(dc.questionsPath)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, d := range b.Domains {
		fmt.Fprintf(out, "%s (%d questions)\n", d.Name, len(d.Questions))
		for _, q := range d.Questions {
			fmt.Fprintf(out, "  - %s\n", q.Text)
		}
	}
	return nil
}
