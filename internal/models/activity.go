package models

// Activity categories. The uppercase codes are canonical; the display labels
// appear in serialized activities and in budget category breakdowns.
const (
	CategoryAccommodation = "ACCOMMODATION"
	CategoryTransport     = "TRANSPORT"
	CategoryFood          = "FOOD"
	CategoryActivity      = "ACTIVITY"
	CategoryShopping      = "SHOPPING"
	CategoryOther         = "OTHER"
)

var categoryLabels = map[string]string{
	CategoryAccommodation: "Accommodation",
	CategoryTransport:     "Transport",
	CategoryFood:          "Food & Dining",
	CategoryActivity:      "Activity & Entertainment",
	CategoryShopping:      "Shopping",
	CategoryOther:         "Other",
}

// ValidCategory reports whether c is one of the canonical category codes.
// Unknown values are rejected, never silently accepted.
func ValidCategory(c string) bool {
	_, ok := categoryLabels[c]
	return ok
}

// CategoryLabel returns the display label for a category code.
func CategoryLabel(c string) string {
	return categoryLabels[c]
}

// ActivityModel is a single costed, categorized line item within a stop.
// Activities list by date, then time, then creation order.
type ActivityModel struct {
	Base
	StopID        string     `json:"stop_id"        gorm:"type:char(36);index;not null"`
	Name          string     `json:"name"           gorm:"size:200;not null"`
	Category      string     `json:"category"       gorm:"size:20;not null"`
	EstimatedCost Money      `json:"estimated_cost" gorm:"type:decimal(10,2);default:0"`
	Date          *Date      `json:"date"           gorm:"type:date"`
	Time          *TimeOfDay `json:"time"           gorm:"type:time"`
	Notes         string     `json:"notes"          gorm:"type:text"`
}

func (ActivityModel) TableName() string { return "activities" }

// ActivityDefaultOrder is the SQL ordering for listing a stop's activities.
const ActivityDefaultOrder = "date ASC, time ASC, created_at ASC"
