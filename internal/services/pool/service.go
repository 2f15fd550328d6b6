package pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/promoclaim-go/internal/dependencies/random"
	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/storage"
)

const (
	// codeSuffixLength is the length of the random part of a code string
	codeSuffixLength = 6
	// codeAlphabet is the characters used in code suffixes
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// maxCollisionRetries bounds regeneration attempts when a random
	// suffix collides with an existing code
	maxCollisionRetries = 10
)

// SeedSpec describes one batch of codes to provision
type SeedSpec struct {
	Prize     string
	PrizeType model.PrizeType
	Count     int
}

// Stats summarizes a campaign's pool state per prize type
type Stats struct {
	Total     int
	Used      int
	Remaining int
	ByType    map[model.PrizeType]TypeStats
}

// TypeStats holds per-prize-type counts
type TypeStats struct {
	Total     int
	Used      int
	Remaining int
}

// Service provisions and resets campaign code pools
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new pool service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// Seed populates the campaign's pool with unique unused codes, one batch
// per spec. Code strings are "<prizeType>-<random suffix>"; a suffix
// collision is detected by the store's conditional insert and retried
// with a fresh suffix. Returns the number of codes created.
func (s *Service) Seed(ctx context.Context, campaign model.CampaignID, specs []SeedSpec) (int, error) {
	created := 0
	for _, spec := range specs {
		if spec.Count <= 0 {
			continue
		}
		for i := 0; i < spec.Count; i++ {
			if err := s.createUnique(ctx, campaign, spec); err != nil {
				return created, err
			}
			created++
		}
	}

	s.logger.Info("pool seeded",
		slog.String("campaign", string(campaign)),
		slog.Int("created", created),
	)
	return created, nil
}

func (s *Service) createUnique(ctx context.Context, campaign model.CampaignID, spec SeedSpec) error {
	for i := 0; i < maxCollisionRetries; i++ {
		code := &model.Code{
			Code:      s.codeString(spec.PrizeType),
			Prize:     spec.Prize,
			PrizeType: spec.PrizeType,
		}

		err := s.storage.CreateCode(ctx, campaign, code)
		if errors.Is(err, model.ErrCodeExists) {
			continue
		}
		return err
	}
	return fmt.Errorf("seed %q: could not generate a unique code after %d attempts: %w",
		campaign, maxCollisionRetries, model.ErrCodeExists)
}

func (s *Service) codeString(prizeType model.PrizeType) string {
	suffix := s.random.String(codeSuffixLength, codeAlphabet)
	if prizeType == "" {
		return suffix
	}
	return fmt.Sprintf("%s-%s", prizeType, suffix)
}

// Reset deletes the campaign's participant ledger and/or code pool,
// returning the respective deletion counts
func (s *Service) Reset(ctx context.Context, campaign model.CampaignID, participants, codes bool) (int, int, error) {
	deletedParticipants := 0
	deletedCodes := 0

	if participants {
		n, err := s.storage.DeleteParticipants(ctx, campaign)
		if err != nil {
			return deletedParticipants, deletedCodes, err
		}
		deletedParticipants = n
	}

	if codes {
		n, err := s.storage.DeleteCodes(ctx, campaign)
		if err != nil {
			return deletedParticipants, deletedCodes, err
		}
		deletedCodes = n
	}

	s.logger.Info("campaign reset",
		slog.String("campaign", string(campaign)),
		slog.Int("participants_deleted", deletedParticipants),
		slog.Int("codes_deleted", deletedCodes),
	)
	return deletedParticipants, deletedCodes, nil
}

// Stats reports the pool's exhaustion state, overall and per prize type
func (s *Service) Stats(ctx context.Context, campaign model.CampaignID) (*Stats, error) {
	codes, err := s.storage.ListCodes(ctx, campaign)
	if err != nil {
		return nil, err
	}

	stats := &Stats{ByType: make(map[model.PrizeType]TypeStats)}
	for _, c := range codes {
		stats.Total++
		ts := stats.ByType[c.PrizeType]
		ts.Total++
		if c.Used {
			stats.Used++
			ts.Used++
		} else {
			stats.Remaining++
			ts.Remaining++
		}
		stats.ByType[c.PrizeType] = ts
	}
	return stats, nil
}
