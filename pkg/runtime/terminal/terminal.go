package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/risk-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/risk-atlas/pkg/services/bank"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	bank    bank.Bank
	input   io.Reader
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Bank   bank.Bank
	Input  io.Reader
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		bank:   opts.Bank,
		input:  opts.Input,
		output: opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk-atlas",
		Short: "IT risk posture assessment tool",
	}

	cmd.AddCommand(commands.NewAssessCmd(cli.bank, cli.input, cli.output))
	cmd.AddCommand(commands.NewDomainsCmd(cli.bank))

	return cmd
}
