package report

import (
	"context"
	"sort"

	"github.com/mcoot/promoclaim-go/internal/dependencies/random"
	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/storage"
)

// Service provides read-only reporting over the participant ledger
type Service struct {
	storage storage.Storage
	random  random.Random
}

// New creates a new report service
func New(storage storage.Storage, random random.Random) *Service {
	return &Service{
		storage: storage,
		random:  random,
	}
}

// Participants lists all participant records for a campaign, oldest first
func (s *Service) Participants(ctx context.Context, campaign model.CampaignID) ([]*model.Participant, error) {
	participants, err := s.storage.ListParticipants(ctx, campaign)
	if err != nil {
		return nil, err
	}

	sort.Slice(participants, func(i, j int) bool {
		if participants[i].CreatedAt.Equal(participants[j].CreatedAt) {
			return participants[i].Handle < participants[j].Handle
		}
		return participants[i].CreatedAt.Before(participants[j].CreatedAt)
	})
	return participants, nil
}

// PickWinner selects one participant uniformly at random for the grand
// prize display. It never mutates the ledger.
func (s *Service) PickWinner(ctx context.Context, campaign model.CampaignID) (*model.Participant, error) {
	participants, err := s.storage.ListParticipants(ctx, campaign)
	if err != nil {
		return nil, err
	}
	if len(participants) == 0 {
		return nil, model.ErrParticipantNotFound
	}
	return participants[s.random.Intn(len(participants))], nil
}
