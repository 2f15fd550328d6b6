package redis

import (
	"fmt"

	"github.com/mcoot/promoclaim-go/internal/model"
)

// Key prefix for all promo allocation data
const keyPrefix = "promoclaim"

// codeKey returns the Redis key for a Code within a campaign
func codeKey(campaign model.CampaignID, code string) string {
	return fmt.Sprintf("%s:%s:code:%s", keyPrefix, campaign, code)
}

// participantKey returns the Redis key for a Participant within a campaign
func participantKey(campaign model.CampaignID, handle model.Handle) string {
	return fmt.Sprintf("%s:%s:participant:%s", keyPrefix, campaign, handle)
}

// codesIndexKey returns the Redis key for the SET of code keys in a campaign
func codesIndexKey(campaign model.CampaignID) string {
	return fmt.Sprintf("%s:%s:idx:codes", keyPrefix, campaign)
}

// participantsIndexKey returns the Redis key for the SET of participant keys in a campaign
func participantsIndexKey(campaign model.CampaignID) string {
	return fmt.Sprintf("%s:%s:idx:participants", keyPrefix, campaign)
}
