package trip

import (
	"time"

	"github.com/globetrotter-app/core/internal/models"
)

// TripView is the serialized trip shape shared by the trip, share, and list
// endpoints. Derived fields (duration, total cost, stop count) are computed
// here, never stored.
type TripView struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	StartDate    models.Date  `json:"start_date"`
	EndDate      models.Date  `json:"end_date"`
	DurationDays int          `json:"duration_days"`
	TotalCost    models.Money `json:"total_cost"`
	IsPublic     bool         `json:"is_public"`
	ShareToken   *string      `json:"share_token"`
	StopsCount   int          `json:"stops_count"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Stops []StopView `json:"stops,omitempty"`
	User  *OwnerView `json:"user,omitempty"`
}

type StopView struct {
	ID              string       `json:"id"`
	TripID          string       `json:"trip_id"`
	City            string       `json:"city"`
	Country         string       `json:"country"`
	ArrivalDate     models.Date  `json:"arrival_date"`
	DepartureDate   models.Date  `json:"departure_date"`
	DurationDays    int          `json:"duration_days"`
	Order           int          `json:"order"`
	Notes           string       `json:"notes"`
	TotalCost       models.Money `json:"total_cost"`
	ActivitiesCount int          `json:"activities_count"`
	CreatedAt       time.Time    `json:"created_at"`

	Activities []ActivityView `json:"activities,omitempty"`
}

type ActivityView struct {
	ID              string             `json:"id"`
	StopID          string             `json:"stop_id"`
	Name            string             `json:"name"`
	Category        string             `json:"category"`
	CategoryDisplay string             `json:"category_display"`
	EstimatedCost   models.Money       `json:"estimated_cost"`
	Date            *models.Date       `json:"date"`
	Time            *models.TimeOfDay  `json:"time"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OwnerView exposes only the owner's public handle on shared trips.
type OwnerView struct {
	Username string `json:"username"`
}

// NewTripView builds the flat trip shape used by list responses. Stops and
// their activities must be loaded so derived costs are correct.
func NewTripView(t *models.TripModel) TripView {
	return TripView{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		DurationDays: t.DurationDays(),
		TotalCost:    t.TotalCost(),
		IsPublic:     t.IsPublic,
		ShareToken:   t.ShareToken,
		StopsCount:   len(t.Stops),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// NewTripDetailView builds the nested trip shape with stops and activities.
func NewTripDetailView(t *models.TripModel) TripView {
	view := NewTripView(t)
	view.Stops = make([]StopView, len(t.Stops))
	for i, s := range t.Stops {
		view.Stops[i] = NewStopDetailView(&s)
	}
	return view
}

// NewStopView builds the flat stop shape. Activities must be loaded.
func NewStopView(s *models.StopModel) StopView {
	return StopView{
		ID:              s.ID,
		TripID:          s.TripID,
		City:            s.City,
		Country:         s.Country,
		ArrivalDate:     s.ArrivalDate,
		DepartureDate:   s.DepartureDate,
		DurationDays:    s.DurationDays(),
		Order:           s.SortOrder,
		Notes:           s.Notes,
		TotalCost:       s.TotalCost(),
		ActivitiesCount: len(s.Activities),
		CreatedAt:       s.CreatedAt,
	}
}

// NewStopDetailView builds the stop shape with nested activities.
func NewStopDetailView(s *models.StopModel) StopView {
	view := NewStopView(s)
	view.Activities = make([]ActivityView, len(s.Activities))
	for i, a := range s.Activities {
		view.Activities[i] = NewActivityView(&a)
	}
	return view
}

func NewActivityView(a *models.ActivityModel) ActivityView {
	return ActivityView{
		ID:              a.ID,
		StopID:          a.StopID,
		Name:            a.Name,
		Category:        a.Category,
		CategoryDisplay: models.CategoryLabel(a.Category),
		EstimatedCost:   a.EstimatedCost,
		Date:            a.Date,
		Time:            a.Time,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}
