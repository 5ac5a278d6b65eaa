package budget

import (
	"bytes"
	"encoding/json"

	"github.com/globetrotter-app/core/internal/models"
)

// BudgetView is the aggregated cost report for one trip.
type BudgetView struct {
	TripID            string            `json:"trip_id"`
	TripName          string            `json:"trip_name"`
	TotalCost         models.Money      `json:"total_cost"`
	StopsBreakdown    []StopBreakdown   `json:"stops_breakdown"`
	CategoryBreakdown CategoryBreakdown `json:"category_breakdown"`
}

// StopBreakdown is one per-stop summary line, in the stop's listing order.
type StopBreakdown struct {
	StopID          string       `json:"stop_id"`
	City            string       `json:"city"`
	Country         string       `json:"country"`
	TotalCost       models.Money `json:"total_cost"`
	ActivitiesCount int          `json:"activities_count"`
}

type categoryTotal struct {
	label string
	total models.Money
}

// CategoryBreakdown maps category display labels to summed cost. Only
// categories with at least one activity appear, and keys keep the order in
// which their category was first encountered while walking the trip, which a
// plain Go map would lose.
type CategoryBreakdown struct {
	entries []categoryTotal
	index   map[string]int
}

func NewCategoryBreakdown() CategoryBreakdown {
	return CategoryBreakdown{index: map[string]int{}}
}

// Add folds cost into the label's running total, registering the label on
// first encounter.
func (b *CategoryBreakdown) Add(label string, cost models.Money) {
	if i, ok := b.index[label]; ok {
		b.entries[i].total = b.entries[i].total.Add(cost)
		return
	}
	b.index[label] = len(b.entries)
	b.entries = append(b.entries, categoryTotal{label: label, total: cost})
}

// Get returns the accumulated total for a label.
func (b *CategoryBreakdown) Get(label string) (models.Money, bool) {
	i, ok := b.index[label]
	if !ok {
		return models.Money{}, false
	}
	return b.entries[i].total, true
}

// Labels returns the labels in first-encounter order.
func (b *CategoryBreakdown) Labels() []string {
	labels := make([]string, len(b.entries))
	for i, e := range b.entries {
		labels[i] = e.label
	}
	return labels
}

// MarshalJSON emits a JSON object whose keys follow first-encounter order.
func (b CategoryBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range b.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.total)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
