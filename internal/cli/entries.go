package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/promoclaim-go/internal/api/response"
	"github.com/mcoot/promoclaim-go/internal/model"
)

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List a campaign's participants",
		Long: `Entries lists every participant in the campaign with their
assigned code and prize, oldest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireCampaign(); err != nil {
				out.PrintError(err)
				return err
			}

			participants, err := app.ReportService.Participants(cmd.Context(), model.CampaignID(cfg.Campaign))
			if err != nil {
				out.PrintError(err)
				return err
			}

			lines := make([]string, 0, len(participants)+1)
			lines = append(lines, fmt.Sprintf("%d entries in campaign %q", len(participants), cfg.Campaign))
			for _, p := range participants {
				lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s",
					p.CreatedAt.Format(time.RFC3339), p.Handle, p.Code, p.Prize))
			}

			out.Result(response.ParticipantListFromModel(participants), lines...)
			return nil
		},
	}

	return cmd
}
