package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/vmgrid/internal/app"
	"github.com/five82/vmgrid/internal/logtail"
)

type logsOptions struct {
	Lines int
	Grep  string
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	lo := &logsOptions{}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the debug log",
		Long: `Show the most recent lines of the log written while the TUI runs.

The log is only written when log_file is set in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(cmd.OutOrStdout(), *opts, lo)
		},
	}

	cmd.Flags().IntVarP(&lo.Lines, "lines", "n", 50, "number of lines (0 for all)")
	cmd.Flags().StringVar(&lo.Grep, "grep", "", "only lines containing this text")

	return cmd
}

func runLogs(w io.Writer, opts app.Options, lo *logsOptions) error {
	cfg, err := app.LoadConfig(opts)
	if err != nil {
		return err
	}
	if cfg.LogFile == "" {
		return errors.New("no log_file configured")
	}

	lines, err := logtail.ReadFile(cfg.LogFile, lo.Lines, lo.Grep)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
