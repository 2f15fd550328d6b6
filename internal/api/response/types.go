package response

import (
	"time"

	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/services/claim"
	"github.com/mcoot/promoclaim-go/internal/services/pool"
)

// Claim is the response for the claim endpoint
type Claim struct {
	Code      string    `json:"code"`
	Prize     string    `json:"prize,omitempty"`
	Returning bool      `json:"returning"`
	CreatedAt time.Time `json:"created_at"`
}

// ClaimFromAssignment converts a claim.Assignment to a response Claim
func ClaimFromAssignment(a *claim.Assignment) Claim {
	return Claim{
		Code:      a.Code,
		Prize:     a.Prize,
		Returning: a.Returning,
		CreatedAt: a.CreatedAt,
	}
}

// Participant represents a participant in admin responses
type Participant struct {
	Identity  string    `json:"identity"`
	Code      string    `json:"code"`
	Prize     string    `json:"prize,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ParticipantFromModel converts a model.Participant to a response Participant
func ParticipantFromModel(p *model.Participant) Participant {
	return Participant{
		Identity:  string(p.Handle),
		Code:      p.Code,
		Prize:     p.Prize,
		CreatedAt: p.CreatedAt,
	}
}

// ParticipantList is the response for the admin participant listing
type ParticipantList struct {
	Participants []Participant `json:"participants"`
}

// ParticipantListFromModel converts a slice of participants
func ParticipantListFromModel(participants []*model.Participant) ParticipantList {
	out := make([]Participant, len(participants))
	for i, p := range participants {
		out[i] = ParticipantFromModel(p)
	}
	return ParticipantList{Participants: out}
}

// Winner is the response for the admin winner pick
type Winner struct {
	Winner Participant `json:"winner"`
}

// TypeStats holds per-prize-type pool counts
type TypeStats struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// PoolStats is the response for the admin pool statistics endpoint
type PoolStats struct {
	Total     int                  `json:"total"`
	Used      int                  `json:"used"`
	Remaining int                  `json:"remaining"`
	ByType    map[string]TypeStats `json:"by_type"`
}

// PoolStatsFromService converts pool.Stats to a response PoolStats
func PoolStatsFromService(s *pool.Stats) PoolStats {
	byType := make(map[string]TypeStats, len(s.ByType))
	for t, ts := range s.ByType {
		byType[string(t)] = TypeStats{Total: ts.Total, Used: ts.Used, Remaining: ts.Remaining}
	}
	return PoolStats{
		Total:     s.Total,
		Used:      s.Used,
		Remaining: s.Remaining,
		ByType:    byType,
	}
}
