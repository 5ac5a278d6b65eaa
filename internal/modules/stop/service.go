package stop

import (
	"errors"
	"strings"

	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"github.com/globetrotter-app/core/internal/pkg/ownership"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create validates and persists a new stop under the user's trip.
// A trip that is absent or owned by someone else yields apperr.ErrNotFound.
// Departure before arrival is accepted as-is; only presence is enforced.
func (s *Service) Create(userID, tripID string, dto *CreateStopDTO) (*models.StopModel, error) {
	owned, err := ownership.Trip(s.db, userID, tripID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.ErrNotFound
	}

	city := strings.TrimSpace(dto.City)
	if city == "" {
		return nil, apperr.Validation("city", "city is required")
	}
	country := strings.TrimSpace(dto.Country)
	if country == "" {
		return nil, apperr.Validation("country", "country is required")
	}
	if dto.ArrivalDate == nil {
		return nil, apperr.Validation("arrival_date", "arrival_date is required")
	}
	if dto.DepartureDate == nil {
		return nil, apperr.Validation("departure_date", "departure_date is required")
	}

	order := 0
	if dto.Order != nil {
		if *dto.Order < 0 {
			return nil, apperr.Validation("order", "order must not be negative")
		}
		order = *dto.Order
	}

	st := models.StopModel{
		TripID:        tripID,
		City:          city,
		Country:       country,
		ArrivalDate:   *dto.ArrivalDate,
		DepartureDate: *dto.DepartureDate,
		SortOrder:     order,
		Notes:         dto.Notes,
	}
	if err := s.db.Create(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// Update applies a partial field set to an owned stop. All supplied fields
// are validated before anything is written.
func (s *Service) Update(userID, stopID string, dto *UpdateStopDTO) (*models.StopModel, error) {
	owned, err := ownership.Stop(s.db, userID, stopID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.ErrNotFound
	}

	updates := map[string]interface{}{}
	if dto.City != nil {
		city := strings.TrimSpace(*dto.City)
		if city == "" {
			return nil, apperr.Validation("city", "city must not be empty")
		}
		updates["city"] = city
	}
	if dto.Country != nil {
		country := strings.TrimSpace(*dto.Country)
		if country == "" {
			return nil, apperr.Validation("country", "country must not be empty")
		}
		updates["country"] = country
	}
	if dto.ArrivalDate != nil {
		updates["arrival_date"] = *dto.ArrivalDate
	}
	if dto.DepartureDate != nil {
		updates["departure_date"] = *dto.DepartureDate
	}
	if dto.Order != nil {
		if *dto.Order < 0 {
			return nil, apperr.Validation("order", "order must not be negative")
		}
		updates["sort_order"] = *dto.Order
	}
	if dto.Notes != nil {
		updates["notes"] = *dto.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.StopModel{}).Where("id = ?", stopID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.get(stopID)
}

// Delete removes a stop and its activities in one transaction.
func (s *Service) Delete(userID, stopID string) error {
	owned, err := ownership.Stop(s.db, userID, stopID)
	if err != nil {
		return err
	}
	if !owned {
		return apperr.ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stop_id = ?", stopID).Delete(&models.ActivityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.StopModel{}, "id = ?", stopID).Error
	})
}

func (s *Service) get(stopID string) (*models.StopModel, error) {
	var st models.StopModel
	err := s.db.
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.ActivityDefaultOrder)
		}).
		First(&st, "id = ?", stopID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}
