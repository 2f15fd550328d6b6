package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/services/pool"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <prize>:<count> [<prize>:<type>:<count> ...]",
		Short: "Provision a campaign's code pool",
		Long: `Seed generates unused codes for each given prize tier.

Each argument is either "<prize>:<count>" for an untyped tier, or
"<prize>:<type>:<count>" to tag the tier with a prize type so claims
can target its sub-pool. Prize labels containing colons are not
supported.

Example:

  promoctl seed -c spin "Free Coffee:coffee:100" "Gift Card:gift:10"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireCampaign(); err != nil {
				out.PrintError(err)
				return err
			}

			specs := make([]pool.SeedSpec, 0, len(args))
			for _, arg := range args {
				spec, err := parseSeedSpec(arg)
				if err != nil {
					out.PrintError(err)
					return err
				}
				specs = append(specs, spec)
			}

			created, err := app.PoolService.Seed(cmd.Context(), model.CampaignID(cfg.Campaign), specs)
			if err != nil {
				out.PrintError(err)
				return err
			}

			out.Result(map[string]any{
				"campaign": cfg.Campaign,
				"created":  created,
			}, fmt.Sprintf("Created %d codes in campaign %q", created, cfg.Campaign))
			return nil
		},
	}

	return cmd
}

func parseSeedSpec(arg string) (pool.SeedSpec, error) {
	parts := strings.Split(arg, ":")

	var prize, prizeType, countStr string
	switch len(parts) {
	case 2:
		prize, countStr = parts[0], parts[1]
	case 3:
		prize, prizeType, countStr = parts[0], parts[1], parts[2]
	default:
		return pool.SeedSpec{}, fmt.Errorf("invalid tier %q: expected <prize>:<count> or <prize>:<type>:<count>", arg)
	}

	if prize == "" {
		return pool.SeedSpec{}, fmt.Errorf("invalid tier %q: prize label must not be empty", arg)
	}

	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		return pool.SeedSpec{}, fmt.Errorf("invalid tier %q: count must be a positive integer", arg)
	}

	return pool.SeedSpec{
		Prize:     prize,
		PrizeType: model.PrizeType(prizeType),
		Count:     count,
	}, nil
}
