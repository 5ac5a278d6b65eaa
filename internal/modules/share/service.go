package share

import (
	"errors"

	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Resolve loads the trip behind a share token for unauthenticated reads.
// The token only opens the trip while it is currently public; a trip that
// was unpublished keeps its token but resolves to NotFound until it is
// published again.
func (s *Service) Resolve(token string) (*models.TripModel, error) {
	var t models.TripModel
	err := s.db.
		Preload("User").
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.StopDefaultOrder)
		}).
		Preload("Stops.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.ActivityDefaultOrder)
		}).
		Where("share_token = ? AND is_public = ?", token, true).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
