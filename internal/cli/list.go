package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/vmgrid/internal/app"
	"github.com/five82/vmgrid/internal/grid"
	"github.com/five82/vmgrid/internal/state"
)

type listOptions struct {
	Search  string
	Status  string
	JSON    bool
	Verbose bool
}

func newListCmd(opts *app.Options) *cobra.Command {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered host rows",
		Long: `Print the hosts that match the given filters without starting the TUI.

The host filter is a case-sensitive substring match on the host id. The
status filter keeps only hosts in that category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), *opts, lo)
		},
	}

	cmd.Flags().StringVar(&lo.Search, "search", "", "host id substring (case-sensitive)")
	cmd.Flags().StringVar(&lo.Status, "status", "", "status category (online|disruption|offline|deactivated)")
	cmd.Flags().BoolVar(&lo.JSON, "json", false, "output in JSON format")
	cmd.Flags().BoolVarP(&lo.Verbose, "verbose", "v", false, "log load progress to stderr")

	return cmd
}

func runList(ctx context.Context, w io.Writer, opts app.Options, lo *listOptions) error {
	status := grid.ParseCategory(lo.Status)
	if status != grid.CategoryNone && !status.Known() {
		return fmt.Errorf("unknown status %q (want online, disruption, offline or deactivated)", lo.Status)
	}

	if !lo.Verbose {
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
	}

	cfg, err := app.LoadConfig(opts)
	if err != nil {
		return err
	}
	provider, err := app.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("init inventory source: %w", err)
	}
	store, err := app.LoadStore(ctx, provider, app.Retry{Every: cfg.RetryEvery, Attempts: cfg.MaxAttempts})
	if err != nil {
		return err
	}

	store.Apply(grid.Intent{Kind: grid.IntentSetSearchText, Text: lo.Search})
	store.Apply(grid.Intent{Kind: grid.IntentSetStatusFilter, Category: status})
	snap := store.Snapshot()

	if lo.JSON {
		return writeJSON(w, snap)
	}
	return writeTable(w, snap)
}

type rowOutput struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	CPU      float64 `json:"cpu"`
	Memory   float64 `json:"memory"`
	Selected bool    `json:"selected"`
}

func writeJSON(w io.Writer, snap state.Snapshot) error {
	output := struct {
		Source     string      `json:"source"`
		Search     string      `json:"search"`
		Status     string      `json:"status"`
		LiveRegion string      `json:"live_region"`
		Total      int         `json:"total"`
		Selected   int         `json:"selected"`
		Rows       []rowOutput `json:"rows"`
	}{
		Source:     snap.Source,
		Search:     snap.Filter.SearchText,
		Status:     string(snap.Filter.StatusFilter),
		LiveRegion: snap.View.LiveRegionText,
		Total:      snap.View.Total,
		Selected:   snap.View.Selected,
		Rows:       make([]rowOutput, 0, len(snap.View.Rows)),
	}
	for _, r := range snap.View.Rows {
		output.Rows = append(output.Rows, rowOutput{
			ID:       r.ID,
			Status:   string(r.Status),
			CPU:      r.CPU,
			Memory:   r.Memory,
			Selected: r.Selected,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func writeTable(w io.Writer, snap state.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOST\tSTATUS\tCPU\tMEM\tSELECTED")
	for _, r := range snap.View.Rows {
		sel := ""
		if r.Selected {
			sel = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.0f%%\t%.0f%%\t%s\n", r.ID, r.Status, r.CPU, r.Memory, sel)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s (%d of %d hosts)\n", snap.View.LiveRegionText, len(snap.View.Rows), snap.View.Total)
	return err
}
