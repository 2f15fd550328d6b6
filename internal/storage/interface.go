package storage

import (
	"context"

	"github.com/mcoot/promoclaim-go/internal/model"
)

// Storage defines the interface for data persistence.
// All operations are namespaced by campaign so that separate mini-games
// keep independent participant ledgers and code pools.
type Storage interface {
	// Code operations
	//
	// CreateCode is a conditional insert: it fails with
	// model.ErrCodeExists if the code string is already present,
	// which is how provisioning detects random-suffix collisions.
	CreateCode(ctx context.Context, campaign model.CampaignID, code *model.Code) error
	GetCode(ctx context.Context, campaign model.CampaignID, code string) (*model.Code, error)
	ListCodes(ctx context.Context, campaign model.CampaignID) ([]*model.Code, error)

	// Participant operations
	GetParticipant(ctx context.Context, campaign model.CampaignID, handle model.Handle) (*model.Participant, error)
	ListParticipants(ctx context.Context, campaign model.CampaignID) ([]*model.Participant, error)

	// AssignCode performs the claim write as a single atomic unit:
	// mark the code used and stamped with the claiming handle, and
	// create the participant record pointing at it. It fails with
	// model.ErrParticipantExists if the handle already has a record
	// (the conditional create serializes concurrent claims for one
	// identity), and with model.ErrCodeUsed if another claim took the
	// code between the caller's pool read and this write. On any
	// failure neither record is touched.
	AssignCode(ctx context.Context, campaign model.CampaignID, code string, participant *model.Participant) error

	// Campaign reset operations, used between campaigns.
	// Both return the number of records removed.
	DeleteParticipants(ctx context.Context, campaign model.CampaignID) (int, error)
	DeleteCodes(ctx context.Context, campaign model.CampaignID) (int, error)
}
