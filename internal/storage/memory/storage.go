package memory

import (
	"context"
	"sync"

	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	codes        map[codeKey]*model.Code
	participants map[participantKey]*model.Participant
}

type codeKey struct {
	campaign model.CampaignID
	code     string
}

type participantKey struct {
	campaign model.CampaignID
	handle   model.Handle
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		codes:        make(map[codeKey]*model.Code),
		participants: make(map[participantKey]*model.Participant),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Code operations

func (s *Storage) CreateCode(ctx context.Context, campaign model.CampaignID, code *model.Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := codeKey{campaign: campaign, code: code.Code}
	if _, ok := s.codes[key]; ok {
		return model.ErrCodeExists
	}
	c := *code
	s.codes[key] = &c
	return nil
}

func (s *Storage) GetCode(ctx context.Context, campaign model.CampaignID, code string) (*model.Code, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.codes[codeKey{campaign: campaign, code: code}]
	if !ok {
		return nil, model.ErrCodeNotFound
	}
	result := *c
	return &result, nil
}

func (s *Storage) ListCodes(ctx context.Context, campaign model.CampaignID) ([]*model.Code, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]*model.Code, 0)
	for key, c := range s.codes {
		if key.campaign == campaign {
			result := *c
			codes = append(codes, &result)
		}
	}
	return codes, nil
}

// Participant operations

func (s *Storage) GetParticipant(ctx context.Context, campaign model.CampaignID, handle model.Handle) (*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[participantKey{campaign: campaign, handle: handle}]
	if !ok {
		return nil, model.ErrParticipantNotFound
	}
	result := *p
	return &result, nil
}

func (s *Storage) ListParticipants(ctx context.Context, campaign model.CampaignID) ([]*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participants := make([]*model.Participant, 0)
	for key, p := range s.participants {
		if key.campaign == campaign {
			result := *p
			participants = append(participants, &result)
		}
	}
	return participants, nil
}

// AssignCode marks a code used and creates the participant record under
// one lock, so both writes land or neither does
func (s *Storage) AssignCode(ctx context.Context, campaign model.CampaignID, code string, participant *model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pKey := participantKey{campaign: campaign, handle: participant.Handle}
	if _, ok := s.participants[pKey]; ok {
		return model.ErrParticipantExists
	}

	cKey := codeKey{campaign: campaign, code: code}
	c, ok := s.codes[cKey]
	if !ok {
		return model.ErrCodeNotFound
	}
	if c.Used {
		return model.ErrCodeUsed
	}

	c.Used = true
	c.AssignedTo = participant.Handle

	p := *participant
	s.participants[pKey] = &p
	return nil
}

// Campaign reset operations

func (s *Storage) DeleteParticipants(ctx context.Context, campaign model.CampaignID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := 0
	for key := range s.participants {
		if key.campaign == campaign {
			delete(s.participants, key)
			deleted++
		}
	}
	return deleted, nil
}

func (s *Storage) DeleteCodes(ctx context.Context, campaign model.CampaignID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := 0
	for key := range s.codes {
		if key.campaign == campaign {
			delete(s.codes, key)
			deleted++
		}
	}
	return deleted, nil
}
