package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/promoclaim-go/internal/dependencies/mocks"
	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/storage/memory"
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
	s.service = New(s.storage, s.random)
	s.ctx = context.Background()
}

func (s *ServiceSuite) addParticipant(handle model.Handle, code string, createdAt time.Time) {
	s.Require().NoError(s.storage.CreateCode(s.ctx, campaign, &model.Code{Code: code}))
	s.Require().NoError(s.storage.AssignCode(s.ctx, campaign, code, &model.Participant{
		Handle:    handle,
		Code:      code,
		CreatedAt: createdAt,
	}))
}

func (s *ServiceSuite) TestParticipantsSortedOldestFirst() {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.addParticipant("carol", "C", base.Add(2*time.Hour))
	s.addParticipant("alice", "A", base)
	s.addParticipant("bob", "B", base.Add(time.Hour))

	participants, err := s.service.Participants(s.ctx, campaign)
	s.Require().NoError(err)
	s.Require().Len(participants, 3)
	s.Equal(model.Handle("alice"), participants[0].Handle)
	s.Equal(model.Handle("bob"), participants[1].Handle)
	s.Equal(model.Handle("carol"), participants[2].Handle)
}

func (s *ServiceSuite) TestParticipantsEmptyCampaign() {
	participants, err := s.service.Participants(s.ctx, campaign)
	s.Require().NoError(err)
	s.Empty(participants)
}

func (s *ServiceSuite) TestPickWinner() {
	now := time.Now()
	s.addParticipant("alice", "A", now)

	winner, err := s.service.PickWinner(s.ctx, campaign)
	s.Require().NoError(err)
	s.Equal(model.Handle("alice"), winner.Handle)
}

func (s *ServiceSuite) TestPickWinnerNoParticipants() {
	_, err := s.service.PickWinner(s.ctx, campaign)
	s.ErrorIs(err, model.ErrParticipantNotFound)
}
