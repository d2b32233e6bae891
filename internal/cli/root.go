// Package cli defines the vmgrid command tree: the TUI root command and the
// headless list command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/five82/vmgrid/internal/app"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// NewRootCmd builds the vmgrid command tree. The root command runs the TUI.
func NewRootCmd(ctx context.Context) *cobra.Command {
	opts := &app.Options{}

	cmd := &cobra.Command{
		Use:   "vmgrid",
		Short: "Filterable terminal grid of virtual machine hosts",
		Long: `vmgrid shows VM hosts in a grid with a sticky filter row.

Hosts come from a JSON or YAML data file, an inventory API, or a generated
demo fleet, in that order of preference. Type in the host cell or the search
box to filter by host name, and pick a status in the status cell.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(ctx, *opts)
		},
	}

	bindSourceFlags(cmd.PersistentFlags(), opts)
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newLogsCmd(opts))
	return cmd
}

func bindSourceFlags(fs *pflag.FlagSet, opts *app.Options) {
	fs.StringVar(&opts.ConfigPath, "config", "", "config path (default ~/.config/vmgrid/config.toml)")
	fs.StringVar(&opts.PrefsPath, "prefs", "", "preferences path (default ~/.config/vmgrid/prefs.toml)")
	fs.StringVar(&opts.DataFile, "data", "", "read hosts from a JSON or YAML file")
	fs.StringVar(&opts.APIBind, "api", "", "inventory API address (host:port or URL)")
	fs.BoolVar(&opts.Demo, "demo", false, "use the generated demo fleet")
	fs.IntVar(&opts.DemoRows, "demo-rows", 0, "number of demo hosts (default 40)")
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCmd(ctx).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "vmgrid: %v\n", err)
		return ExitError
	}
	return ExitOK
}
