package pool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/promoclaim-go/internal/dependencies/mocks"
	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/storage/memory"
	"github.com/mcoot/promoclaim-go/internal/testutil"
)

const campaign = model.CampaignID("spin")

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// Seed tests

func (s *ServiceSuite) TestSeedCreatesRequestedCounts() {
	s.random.QueueString("AAAAAA", "BBBBBB", "CCCCCC", "DDDDDD")

	created, err := s.service.Seed(s.ctx, campaign, []SeedSpec{
		{Prize: "買一送一", PrizeType: "buyonegetone", Count: 1},
		{Prize: "九折", PrizeType: "10off", Count: 3},
	})
	s.Require().NoError(err)
	s.Equal(4, created)

	codes, err := s.storage.ListCodes(s.ctx, campaign)
	s.Require().NoError(err)
	s.Len(codes, 4)

	code, err := s.storage.GetCode(s.ctx, campaign, "buyonegetone-AAAAAA")
	s.Require().NoError(err)
	s.Equal("買一送一", code.Prize)
	s.Equal(model.PrizeType("buyonegetone"), code.PrizeType)
	s.False(code.Used)
}

func (s *ServiceSuite) TestSeedRetriesOnSuffixCollision() {
	// The second suffix collides with the first and must be regenerated
	s.random.QueueString("AAAAAA", "AAAAAA", "BBBBBB")

	created, err := s.service.Seed(s.ctx, campaign, []SeedSpec{
		{Prize: "九折", PrizeType: "10off", Count: 2},
	})
	s.Require().NoError(err)
	s.Equal(2, created)

	codes, _ := s.storage.ListCodes(s.ctx, campaign)
	s.Len(codes, 2)
}

func (s *ServiceSuite) TestSeedGivesUpOnPersistentCollision() {
	// MockRandom returns "" once its queue drains, so every attempt
	// after the first produces the same code string
	s.random.QueueString("AAAAAA")
	_, err := s.service.Seed(s.ctx, campaign, []SeedSpec{
		{Prize: "九折", PrizeType: "10off", Count: 3},
	})
	s.ErrorIs(err, model.ErrCodeExists)
}

func (s *ServiceSuite) TestSeedUntypedSpecHasNoPrefix() {
	s.random.QueueString("AAAAAA")

	_, err := s.service.Seed(s.ctx, campaign, []SeedSpec{{Prize: "折扣", Count: 1}})
	s.Require().NoError(err)

	_, err = s.storage.GetCode(s.ctx, campaign, "AAAAAA")
	s.NoError(err)
}

func (s *ServiceSuite) TestSeedSkipsNonPositiveCounts() {
	created, err := s.service.Seed(s.ctx, campaign, []SeedSpec{
		{Prize: "九折", Count: 0},
		{Prize: "八折", Count: -2},
	})
	s.Require().NoError(err)
	s.Equal(0, created)
}

// Reset tests

func (s *ServiceSuite) TestResetSelectively() {
	_ = s.storage.CreateCode(s.ctx, campaign, &model.Code{Code: "A"})
	_ = s.storage.CreateCode(s.ctx, campaign, &model.Code{Code: "B"})
	s.Require().NoError(s.storage.AssignCode(s.ctx, campaign, "A", &model.Participant{Handle: "alice", Code: "A"}))

	deletedP, deletedC, err := s.service.Reset(s.ctx, campaign, true, false)
	s.Require().NoError(err)
	s.Equal(1, deletedP)
	s.Equal(0, deletedC)

	codes, _ := s.storage.ListCodes(s.ctx, campaign)
	s.Len(codes, 2)

	deletedP, deletedC, err = s.service.Reset(s.ctx, campaign, false, true)
	s.Require().NoError(err)
	s.Equal(0, deletedP)
	s.Equal(2, deletedC)
}

// Stats tests

func (s *ServiceSuite) TestStats() {
	_ = s.storage.CreateCode(s.ctx, campaign, &model.Code{Code: "win-A", PrizeType: "win"})
	_ = s.storage.CreateCode(s.ctx, campaign, &model.Code{Code: "lose-B", PrizeType: "lose"})
	_ = s.storage.CreateCode(s.ctx, campaign, &model.Code{Code: "lose-C", PrizeType: "lose"})
	s.Require().NoError(s.storage.AssignCode(s.ctx, campaign, "lose-B", &model.Participant{Handle: "alice", Code: "lose-B"}))

	stats, err := s.service.Stats(s.ctx, campaign)
	s.Require().NoError(err)

	s.Equal(3, stats.Total)
	s.Equal(1, stats.Used)
	s.Equal(2, stats.Remaining)
	s.Equal(TypeStats{Total: 1, Used: 0, Remaining: 1}, stats.ByType["win"])
	s.Equal(TypeStats{Total: 2, Used: 1, Remaining: 1}, stats.ByType["lose"])
}

func (s *ServiceSuite) TestStatsEmptyCampaign() {
	stats, err := s.service.Stats(s.ctx, campaign)
	s.Require().NoError(err)
	s.Equal(0, stats.Total)
	s.Empty(stats.ByType)
}
