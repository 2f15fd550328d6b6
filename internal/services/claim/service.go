package claim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/promoclaim-go/internal/dependencies/clock"
	"github.com/mcoot/promoclaim-go/internal/dependencies/random"
	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/storage"
)

// maxAssignAttempts bounds re-picks when another claim consumes the
// selected code between the pool read and the atomic write
const maxAssignAttempts = 5

// Assignment is the result of a claim: either a freshly allocated code
// or the participant's previously stored one
type Assignment struct {
	Code      string
	Prize     string
	Returning bool
	CreatedAt time.Time
}

// Service allocates promo codes to participant identities.
// Each identity receives exactly one code; repeat claims return the
// stored assignment without touching the pool.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new claim service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Claim returns the code assigned to the given identity, allocating one
// from the campaign's unused pool if the identity has none yet. A
// non-empty selector restricts allocation to codes of that prize type.
func (s *Service) Claim(ctx context.Context, campaign model.CampaignID, rawHandle string, selector model.PrizeType) (*Assignment, error) {
	handle, err := model.ParseHandle(rawHandle)
	if err != nil {
		return nil, err
	}

	existing, err := s.storage.GetParticipant(ctx, campaign, handle)
	if err == nil {
		return returningAssignment(existing), nil
	}
	if !errors.Is(err, model.ErrParticipantNotFound) {
		return nil, err
	}

	for attempt := 0; attempt < maxAssignAttempts; attempt++ {
		pick, err := s.pickUnused(ctx, campaign, selector)
		if err != nil {
			return nil, err
		}

		participant := &model.Participant{
			Handle:    handle,
			Code:      pick.Code,
			Prize:     pick.Prize,
			CreatedAt: s.clock.Now(),
		}

		err = s.storage.AssignCode(ctx, campaign, pick.Code, participant)
		switch {
		case err == nil:
			s.logger.Info("code assigned",
				slog.String("campaign", string(campaign)),
				slog.String("handle", string(handle)),
				slog.String("code", pick.Code),
			)
			return &Assignment{
				Code:      participant.Code,
				Prize:     participant.Prize,
				Returning: false,
				CreatedAt: participant.CreatedAt,
			}, nil

		case errors.Is(err, model.ErrParticipantExists):
			// Lost the per-identity race; resolve to the first writer's record
			winner, err := s.storage.GetParticipant(ctx, campaign, handle)
			if err != nil {
				return nil, err
			}
			return returningAssignment(winner), nil

		case errors.Is(err, model.ErrCodeUsed):
			// Lost the pool race; re-read the pool and pick again
			continue

		default:
			return nil, err
		}
	}

	return nil, fmt.Errorf("claim for %q: gave up after %d attempts: %w", handle, maxAssignAttempts, model.ErrCodeUsed)
}

// pickUnused re-reads the pool and picks uniformly at random from the
// current unused subset matching the selector. The pool is never
// pre-shuffled: concurrent claims shrink the subset between reads, so
// the filter runs immediately before each atomic write attempt.
func (s *Service) pickUnused(ctx context.Context, campaign model.CampaignID, selector model.PrizeType) (*model.Code, error) {
	codes, err := s.storage.ListCodes(ctx, campaign)
	if err != nil {
		return nil, err
	}

	unused := make([]*model.Code, 0, len(codes))
	for _, c := range codes {
		if !c.Used && c.Matches(selector) {
			unused = append(unused, c)
		}
	}

	if len(unused) == 0 {
		return nil, model.ErrPoolExhausted
	}

	return unused[s.random.Intn(len(unused))], nil
}

func returningAssignment(p *model.Participant) *Assignment {
	return &Assignment{
		Code:      p.Code,
		Prize:     p.Prize,
		Returning: true,
		CreatedAt: p.CreatedAt,
	}
}
