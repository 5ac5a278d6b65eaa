package trip

import (
	"errors"
	"strings"

	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// withTree preloads stops and activities in their default listing order so
// derived costs and counts come out right.
func withTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.StopDefaultOrder)
		}).
		Preload("Stops.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.ActivityDefaultOrder)
		})
}

// List returns the user's trips, most recently created first.
func (s *Service) List(userID string) ([]models.TripModel, error) {
	var trips []models.TripModel
	err := withTree(s.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	return trips, err
}

// Get loads a single owned trip with its full stop/activity tree.
// Absent and foreign-owned trips both yield apperr.ErrNotFound.
func (s *Service) Get(userID, tripID string) (*models.TripModel, error) {
	var t models.TripModel
	err := withTree(s.db).
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create validates and persists a new trip. A trip created public gets its
// share token minted immediately.
func (s *Service) Create(userID string, dto *CreateTripDTO) (*models.TripModel, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if dto.StartDate == nil {
		return nil, apperr.Validation("start_date", "start_date is required")
	}
	if dto.EndDate == nil {
		return nil, apperr.Validation("end_date", "end_date is required")
	}
	if dto.EndDate.Before(*dto.StartDate) {
		return nil, apperr.Validation("end_date", "end_date must not be before start_date")
	}

	t := models.TripModel{
		UserID:      userID,
		Name:        name,
		Description: dto.Description,
		StartDate:   *dto.StartDate,
		EndDate:     *dto.EndDate,
		IsPublic:    dto.IsPublic,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	if t.IsPublic {
		if err := EnsureShareToken(s.db, &t); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// Update applies a partial field set. All supplied fields are validated
// before anything is written, so an invalid field never applies a partial
// mutation. A visibility change routes through the sharing gate.
func (s *Service) Update(userID, tripID string, dto *UpdateTripDTO) (*models.TripModel, error) {
	t, err := s.Get(userID, tripID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, apperr.Validation("name", "name must not be empty")
		}
		updates["name"] = name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}

	start, end := t.StartDate, t.EndDate
	if dto.StartDate != nil {
		start = *dto.StartDate
		updates["start_date"] = *dto.StartDate
	}
	if dto.EndDate != nil {
		end = *dto.EndDate
		updates["end_date"] = *dto.EndDate
	}
	if end.Before(start) {
		return nil, apperr.Validation("end_date", "end_date must not be before start_date")
	}

	becomingPublic := dto.IsPublic != nil && *dto.IsPublic
	if dto.IsPublic != nil {
		updates["is_public"] = *dto.IsPublic
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(t).Updates(updates).Error; err != nil {
				return err
			}
		}
		if becomingPublic {
			return EnsureShareToken(tx, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, tripID)
}

// Delete removes a trip and cascades over its whole subtree. The cascade is
// all-or-nothing: activities, stops, and the trip go in one transaction.
func (s *Service) Delete(userID, tripID string) error {
	t, err := s.Get(userID, tripID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stop_id IN (?)",
			tx.Model(&models.StopModel{}).Select("id").Where("trip_id = ?", t.ID),
		).Delete(&models.ActivityModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", t.ID).Delete(&models.StopModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TripModel{}, "id = ?", t.ID).Error
	})
}
