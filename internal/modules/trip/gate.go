package trip

import (
	"github.com/globetrotter-app/core/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The sharing gate is a two-attribute state machine over (is_public,
// share_token):
//
//	{private, no token} --publish--> {public, token}
//
// Every other transition leaves the token untouched once it exists.
// Un-publishing keeps the token but the public lookup also filters on
// is_public, so access is revoked without invalidating the token value.

// EnsureShareToken mints the trip's share token if it has none, updating the
// in-memory model to match. The conditional UPDATE makes the mint atomic:
// two concurrent first-publishes race on `share_token IS NULL` and exactly
// one wins; the loser reloads the winner's token.
func EnsureShareToken(tx *gorm.DB, t *models.TripModel) error {
	if t.ShareToken != nil {
		return nil
	}

	token := uuid.New().String()
	res := tx.Model(&models.TripModel{}).
		Where("id = ? AND share_token IS NULL", t.ID).
		Update("share_token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		t.ShareToken = &token
		return nil
	}

	var current models.TripModel
	if err := tx.Select("share_token").First(&current, "id = ?", t.ID).Error; err != nil {
		return err
	}
	t.ShareToken = current.ShareToken
	return nil
}
