package activity

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

// Create validates and persists a new activity under the user's stop.
// An absent or foreign-owned stop yields apperr.ErrNotFound. An omitted
// category defaults to OTHER; an omitted cost defaults to zero.
func (s *Service) Create(userID, stopID string, dto *CreateActivityDTO) (*models.ActivityModel, error) {
	owned, err := ownership.Stop(s.db, userID, stopID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.ErrNotFound
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	category := dto.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !models.ValidCategory(category) {
		return nil, apperr.Validation("category", "category must be one of the known category codes")
	}

	cost := models.Money{}
	if dto.EstimatedCost != nil {
		if dto.EstimatedCost.IsNegative() {
			return nil, apperr.Validation("estimated_cost", "estimated_cost must not be negative")
		}
		cost = *dto.EstimatedCost
	}

	a := models.ActivityModel{
		StopID:        stopID,
		Name:          name,
		Category:      category,
		EstimatedCost: cost,
		Date:          dto.Date,
		Time:          dto.Time,
		Notes:         dto.Notes,
	}
	if err := s.db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Update applies a partial field set to an owned activity. All supplied
// fields are validated before anything is written.
func (s *Service) Update(userID, activityID string, dto *UpdateActivityDTO) (*models.ActivityModel, error) {
	owned, err := ownership.Activity(s.db, userID, activityID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.ErrNotFound
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, apperr.Validation("name", "name must not be empty")
		}
		updates["name"] = name
	}
	if dto.Category != nil {
		if !models.ValidCategory(*dto.Category) {
			return nil, apperr.Validation("category", "category must be one of the known category codes")
		}
		updates["category"] = *dto.Category
	}
	if dto.EstimatedCost != nil {
		if dto.EstimatedCost.IsNegative() {
			return nil, apperr.Validation("estimated_cost", "estimated_cost must not be negative")
		}
		updates["estimated_cost"] = *dto.EstimatedCost
	}
	if dto.Date != nil {
		updates["date"] = *dto.Date
	}
	if dto.Time != nil {
		updates["time"] = *dto.Time
	}
	if dto.Notes != nil {
		updates["notes"] = *dto.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.ActivityModel{}).Where("id = ?", activityID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.get(activityID)
}

// Delete removes an owned activity.
func (s *Service) Delete(userID, activityID string) error {
	owned, err := ownership.Activity(s.db, userID, activityID)
	if err != nil {
		return err
	}
	if !owned {
		return apperr.ErrNotFound
	}
	return s.db.Delete(&models.ActivityModel{}, "id = ?", activityID).Error
}

func (s *Service) get(activityID string) (*models.ActivityModel, error) {
	var a models.ActivityModel
	err := s.db.First(&a, "id = ?", activityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
