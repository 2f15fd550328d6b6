package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/promoclaim-go/internal/api/response"
	"github.com/mcoot/promoclaim-go/internal/model"
)

func newWinnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winner",
		Short: "Draw a random participant",
		Long: `Winner picks one participant uniformly at random from the
campaign. It only reads; drawing twice can return the same entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireCampaign(); err != nil {
				out.PrintError(err)
				return err
			}

			winner, err := app.ReportService.PickWinner(cmd.Context(), model.CampaignID(cfg.Campaign))
			if err != nil {
				if errors.Is(err, model.ErrParticipantNotFound) {
					err = fmt.Errorf("campaign %q has no participants", cfg.Campaign)
				}
				out.PrintError(err)
				return err
			}

			out.Result(response.Winner{Winner: response.ParticipantFromModel(winner)},
				fmt.Sprintf("Winner: %s (code %s, prize %s)", winner.Handle, winner.Code, winner.Prize))
			return nil
		},
	}

	return cmd
}
