package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Code operations

func (s *Storage) CreateCode(ctx context.Context, campaign model.CampaignID, code *model.Code) error {
	data, err := json.Marshal(code)
	if err != nil {
		return err
	}

	key := codeKey(campaign, code.Code)

	// SETNX is the uniqueness check: a colliding code string loses here.
	// The index SAdd rides in the same MULTI/EXEC so a code is never
	// stored without being listable; on a collision it re-adds a member
	// the index already holds.
	var created *redis.BoolCmd
	if _, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, key, data, 0)
		pipe.SAdd(ctx, codesIndexKey(campaign), key)
		return nil
	}); err != nil {
		return err
	}

	if !created.Val() {
		return model.ErrCodeExists
	}
	return nil
}

func (s *Storage) GetCode(ctx context.Context, campaign model.CampaignID, code string) (*model.Code, error) {
	data, err := s.client.Get(ctx, codeKey(campaign, code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCodeNotFound
		}
		return nil, err
	}

	var c model.Code
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListCodes(ctx context.Context, campaign model.CampaignID) ([]*model.Code, error) {
	keys, err := s.client.SMembers(ctx, codesIndexKey(campaign)).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Code{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	codes := make([]*model.Code, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index entry without a value; treat as deleted
		}
		var c model.Code
		if err := json.Unmarshal([]byte(val.(string)), &c); err != nil {
			continue // Skip invalid data
		}
		codes = append(codes, &c)
	}

	return codes, nil
}

// Participant operations

func (s *Storage) GetParticipant(ctx context.Context, campaign model.CampaignID, handle model.Handle) (*model.Participant, error) {
	data, err := s.client.Get(ctx, participantKey(campaign, handle)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrParticipantNotFound
		}
		return nil, err
	}

	var p model.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) ListParticipants(ctx context.Context, campaign model.CampaignID) ([]*model.Participant, error) {
	keys, err := s.client.SMembers(ctx, participantsIndexKey(campaign)).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Participant{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	participants := make([]*model.Participant, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var p model.Participant
		if err := json.Unmarshal([]byte(val.(string)), &p); err != nil {
			continue
		}
		participants = append(participants, &p)
	}

	return participants, nil
}

// AssignCode runs the claim write as a WATCH/MULTI/EXEC transaction over
// the code key and the participant key. If either key changes between the
// read and EXEC, the transaction aborts and is retried; the existence
// check on the participant key serializes concurrent claims for the same
// identity.
func (s *Storage) AssignCode(ctx context.Context, campaign model.CampaignID, code string, participant *model.Participant) error {
	cKey := codeKey(campaign, code)
	pKey := participantKey(campaign, participant.Handle)

	txf := func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, pKey).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return model.ErrParticipantExists
		}

		data, err := tx.Get(ctx, cKey).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrCodeNotFound
			}
			return err
		}

		var c model.Code
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		if c.Used {
			return model.ErrCodeUsed
		}

		c.Used = true
		c.AssignedTo = participant.Handle

		cData, err := json.Marshal(&c)
		if err != nil {
			return err
		}
		pData, err := json.Marshal(participant)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cKey, cData, 0)
			pipe.Set(ctx, pKey, pData, 0)
			pipe.SAdd(ctx, participantsIndexKey(campaign), pKey)
			return nil
		})
		return err
	}

	for i := 0; i < s.cfg.MaxAssignRetries; i++ {
		err := s.client.Watch(ctx, txf, cKey, pKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue // Watched key changed; retry against fresh state
		}
		return err
	}

	return fmt.Errorf("assign %q: optimistic lock retries exhausted: %w", code, redis.TxFailedErr)
}

// Campaign reset operations

func (s *Storage) DeleteParticipants(ctx context.Context, campaign model.CampaignID) (int, error) {
	return s.deleteIndexed(ctx, participantsIndexKey(campaign))
}

func (s *Storage) DeleteCodes(ctx context.Context, campaign model.CampaignID) (int, error) {
	return s.deleteIndexed(ctx, codesIndexKey(campaign))
}

// deleteIndexed removes every key listed in an index set, then the index itself
func (s *Storage) deleteIndexed(ctx context.Context, indexKey string) (int, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return 0, err
	}

	if len(keys) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return len(keys), nil
}
