package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcoot/promoclaim-go/internal/api/response"
	"github.com/mcoot/promoclaim-go/internal/model"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a campaign's pool usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireCampaign(); err != nil {
				out.PrintError(err)
				return err
			}

			stats, err := app.PoolService.Stats(cmd.Context(), model.CampaignID(cfg.Campaign))
			if err != nil {
				out.PrintError(err)
				return err
			}

			lines := []string{
				fmt.Sprintf("Campaign %q: %d codes, %d used, %d remaining",
					cfg.Campaign, stats.Total, stats.Used, stats.Remaining),
			}

			types := make([]model.PrizeType, 0, len(stats.ByType))
			for t := range stats.ByType {
				types = append(types, t)
			}
			sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
			for _, t := range types {
				ts := stats.ByType[t]
				label := string(t)
				if label == "" {
					label = "(untyped)"
				}
				lines = append(lines, fmt.Sprintf("  %s: %d codes, %d used, %d remaining",
					label, ts.Total, ts.Used, ts.Remaining))
			}

			out.Result(response.PoolStatsFromService(stats), lines...)
			return nil
		},
	}

	return cmd
}
