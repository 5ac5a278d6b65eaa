package stop

import "github.com/globetrotter-app/core/internal/models"

type CreateStopDTO struct {
	City          string       `json:"city"`
	Country       string       `json:"country"`
	ArrivalDate   *models.Date `json:"arrival_date"`
	DepartureDate *models.Date `json:"departure_date"`
	Order         *int         `json:"order"`
	Notes         string       `json:"notes"`
}

// UpdateStopDTO carries a partial field set; nil pointers leave the prior
// value untouched. An explicit JSON null also reads as absent; notes clear by
// sending an empty string, not null.
type UpdateStopDTO struct {
	City          *string      `json:"city"`
	Country       *string      `json:"country"`
	ArrivalDate   *models.Date `json:"arrival_date"`
	DepartureDate *models.Date `json:"departure_date"`
	Order         *int         `json:"order"`
	Notes         *string      `json:"notes"`
}
