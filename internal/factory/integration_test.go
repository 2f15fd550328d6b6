package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/services/pool"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete campaign flow from seeding to winner pick
func (s *IntegrationSuite) TestCompleteCampaignFlow() {
	campaign := model.CampaignID("spin")

	// Step 1: Seed the pool with two prize tiers
	s.app.MockRandom.QueueString("AAAAAA", "BBBBBB", "CCCCCC")
	created, err := s.app.PoolService.Seed(s.ctx, campaign, []pool.SeedSpec{
		{Prize: "Free Coffee", PrizeType: "coffee", Count: 2},
		{Prize: "Gift Card", PrizeType: "gift", Count: 1},
	})
	s.Require().NoError(err)
	s.Equal(3, created)

	// Step 2: Alice claims from the coffee sub-pool
	s.app.MockRandom.QueueIntn(0)
	claimedAt := s.app.MockClock.Now()
	alice, err := s.app.ClaimService.Claim(s.ctx, campaign, "alice", "coffee")
	s.Require().NoError(err)
	s.Equal("Free Coffee", alice.Prize)
	s.Contains([]string{"coffee-AAAAAA", "coffee-BBBBBB"}, alice.Code)
	s.False(alice.Returning)
	s.Equal(claimedAt, alice.CreatedAt)

	// Step 3: Alice comes back later and gets the same assignment,
	// stamped with the original claim time
	s.app.MockClock.Advance(2 * time.Hour)
	repeat, err := s.app.ClaimService.Claim(s.ctx, campaign, "alice", "coffee")
	s.Require().NoError(err)
	s.True(repeat.Returning)
	s.Equal(alice.Code, repeat.Code)
	s.Equal(claimedAt, repeat.CreatedAt)

	// Step 4: Bob claims the only gift code
	s.app.MockRandom.QueueIntn(0)
	bob, err := s.app.ClaimService.Claim(s.ctx, campaign, "bob", "gift")
	s.Require().NoError(err)
	s.Equal("gift-CCCCCC", bob.Code)
	s.Equal("Gift Card", bob.Prize)

	// Step 5: The report lists both entries, oldest first
	participants, err := s.app.ReportService.Participants(s.ctx, campaign)
	s.Require().NoError(err)
	s.Require().Len(participants, 2)
	s.Equal(model.Handle("alice"), participants[0].Handle)
	s.Equal(model.Handle("bob"), participants[1].Handle)

	// Step 6: A winner can be drawn from the ledger
	s.app.MockRandom.QueueIntn(0)
	winner, err := s.app.ReportService.PickWinner(s.ctx, campaign)
	s.Require().NoError(err)
	s.Contains([]model.Handle{"alice", "bob"}, winner.Handle)

	// Step 7: Stats reflect both allocations
	stats, err := s.app.PoolService.Stats(s.ctx, campaign)
	s.Require().NoError(err)
	s.Equal(3, stats.Total)
	s.Equal(2, stats.Used)
	s.Equal(1, stats.Remaining)
	s.Equal(1, stats.ByType["coffee"].Used)
	s.Equal(0, stats.ByType["gift"].Remaining)

	// Step 8: The test app's shared secret gates the admin surface
	s.NoError(s.app.AdminAuth.Verify(TestAdminPassword))
	s.Error(s.app.AdminAuth.Verify("wrong"))
}

// Test: Exhaustion surfaces once the pool is drained, leaving the
// ledger untouched
func (s *IntegrationSuite) TestExhaustedCampaign() {
	campaign := model.CampaignID("minesweeper")

	s.app.MockRandom.QueueString("AAAAAA")
	_, err := s.app.PoolService.Seed(s.ctx, campaign, []pool.SeedSpec{
		{Prize: "Sticker Pack", Count: 1},
	})
	s.Require().NoError(err)

	s.app.MockRandom.QueueIntn(0)
	_, err = s.app.ClaimService.Claim(s.ctx, campaign, "alice", "")
	s.Require().NoError(err)

	_, err = s.app.ClaimService.Claim(s.ctx, campaign, "bob", "")
	s.Require().ErrorIs(err, model.ErrPoolExhausted)

	participants, err := s.app.ReportService.Participants(s.ctx, campaign)
	s.Require().NoError(err)
	s.Len(participants, 1)

	// Reset clears the way for the next campaign
	deletedParticipants, deletedCodes, err := s.app.PoolService.Reset(s.ctx, campaign, true, true)
	s.Require().NoError(err)
	s.Equal(1, deletedParticipants)
	s.Equal(1, deletedCodes)

	stats, err := s.app.PoolService.Stats(s.ctx, campaign)
	s.Require().NoError(err)
	s.Equal(0, stats.Total)
}
