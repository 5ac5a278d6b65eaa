package models

// StopModel is a city/date-range segment of a trip. Stops list in
// sort_order ascending, ties broken by arrival date.
type StopModel struct {
	Base
	TripID        string `json:"trip_id"        gorm:"type:char(36);index;not null"`
	City          string `json:"city"           gorm:"size:100;not null"`
	Country       string `json:"country"        gorm:"size:100;not null"`
	ArrivalDate   Date   `json:"arrival_date"   gorm:"type:date;not null"`
	DepartureDate Date   `json:"departure_date" gorm:"type:date;not null"`
	SortOrder     int    `json:"order"          gorm:"column:sort_order;default:0"`
	Notes         string `json:"notes"          gorm:"type:text"`

	Activities []ActivityModel `json:"activities,omitempty" gorm:"foreignKey:StopID"`
}

func (StopModel) TableName() string { return "stops" }

// StopDefaultOrder is the SQL ordering for listing a trip's stops.
const StopDefaultOrder = "sort_order ASC, arrival_date ASC"

// DurationDays is the inclusive stay length in days.
func (s StopModel) DurationDays() int {
	return s.ArrivalDate.DaysUntil(s.DepartureDate)
}

// TotalCost sums estimated costs of the stop's activities (must be loaded).
func (s StopModel) TotalCost() Money {
	var total Money
	for _, a := range s.Activities {
		total = total.Add(a.EstimatedCost)
	}
	return total
}
