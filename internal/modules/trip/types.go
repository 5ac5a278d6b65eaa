package trip

import "github.com/globetrotter-app/core/internal/models"

type CreateTripDTO struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
	IsPublic    bool         `json:"is_public"`
}

// UpdateTripDTO carries a partial field set; nil pointers leave the prior
// value untouched. An explicit JSON null also reads as absent; text fields
// clear by sending an empty string, not null.
type UpdateTripDTO struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
	IsPublic    *bool        `json:"is_public"`
}
