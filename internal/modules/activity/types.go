package activity

import "github.com/globetrotter-app/core/internal/models"

type CreateActivityDTO struct {
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	EstimatedCost *models.Money     `json:"estimated_cost"`
	Date          *models.Date      `json:"date"`
	Time          *models.TimeOfDay `json:"time"`
	Notes         string            `json:"notes"`
}

// UpdateActivityDTO carries a partial field set; nil pointers leave the prior
// value untouched. An explicit JSON null also reads as absent, so a set
// optional field (date, time) can be replaced but never cleared back to null.
type UpdateActivityDTO struct {
	Name          *string           `json:"name"`
	Category      *string           `json:"category"`
	EstimatedCost *models.Money     `json:"estimated_cost"`
	Date          *models.Date      `json:"date"`
	Time          *models.TimeOfDay `json:"time"`
	Notes         *string           `json:"notes"`
}
