package models

// TripModel is a travel plan owned by one user and composed of ordered stops.
//
// ShareToken is minted lazily the first time the trip becomes public and is
// never regenerated or cleared afterwards, even when IsPublic toggles off.
// Public lookups filter on both the token and the current visibility flag, so
// un-publishing revokes access without invalidating the token value.
type TripModel struct {
	Base
	UserID      string  `json:"user_id"     gorm:"type:char(36);index;not null"`
	Name        string  `json:"name"        gorm:"size:200;not null"`
	Description string  `json:"description" gorm:"type:text"`
	StartDate   Date    `json:"start_date"  gorm:"type:date;not null"`
	EndDate     Date    `json:"end_date"    gorm:"type:date;not null"`
	IsPublic    bool    `json:"is_public"   gorm:"default:false"`
	ShareToken  *string `json:"share_token" gorm:"uniqueIndex;size:100"`

	User  *UserModel  `json:"user,omitempty"  gorm:"foreignKey:UserID"`
	Stops []StopModel `json:"stops,omitempty" gorm:"foreignKey:TripID"`
}

func (TripModel) TableName() string { return "trips" }

// DurationDays is the inclusive trip length in days.
func (t TripModel) DurationDays() int {
	return t.StartDate.DaysUntil(t.EndDate)
}

// TotalCost sums estimated costs of all activities across all stops.
// Stops and their activities must be loaded.
func (t TripModel) TotalCost() Money {
	var total Money
	for _, stop := range t.Stops {
		total = total.Add(stop.TotalCost())
	}
	return total
}
