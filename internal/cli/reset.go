package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/promoclaim-go/internal/model"
)

func newResetCmd() *cobra.Command {
	var (
		participants bool
		codes        bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete a campaign's records",
		Long: `Reset deletes participant records, codes, or both for a campaign.

At least one of --participants or --codes must be given; there is no
implicit "delete everything" default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireCampaign(); err != nil {
				out.PrintError(err)
				return err
			}
			if !participants && !codes {
				err := fmt.Errorf("nothing to reset: pass --participants, --codes, or both")
				out.PrintError(err)
				return err
			}

			deletedParticipants, deletedCodes, err := app.PoolService.Reset(cmd.Context(), model.CampaignID(cfg.Campaign), participants, codes)
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Result(map[string]any{
				"campaign":             cfg.Campaign,
				"participants_deleted": deletedParticipants,
				"codes_deleted":        deletedCodes,
			},
				fmt.Sprintf("Deleted %d participants from campaign %q", deletedParticipants, cfg.Campaign),
				fmt.Sprintf("Deleted %d codes from campaign %q", deletedCodes, cfg.Campaign),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&participants, "participants", false, "Delete participant records")
	cmd.Flags().BoolVar(&codes, "codes", false, "Delete codes")

	return cmd
}
