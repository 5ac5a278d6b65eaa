package budget

import (
	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/modules/trip"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	trips *trip.Service
}

func NewService(db *gorm.DB, trips *trip.Service) *Service {
	return &Service{db: db, trips: trips}
}

// Report recomputes the trip's cost breakdowns from current data on every
// call; nothing is cached. Stops are walked in their listing order, and
// within each stop activities in theirs, so the category key order is
// stable across identical reads.
func (s *Service) Report(userID, tripID string) (*BudgetView, error) {
	t, err := s.trips.Get(userID, tripID)
	if err != nil {
		return nil, err
	}
	return buildReport(t), nil
}

func buildReport(t *models.TripModel) *BudgetView {
	view := BudgetView{
		TripID:            t.ID,
		TripName:          t.Name,
		StopsBreakdown:    make([]StopBreakdown, len(t.Stops)),
		CategoryBreakdown: NewCategoryBreakdown(),
	}

	total := models.Money{}
	for i, st := range t.Stops {
		stopTotal := models.Money{}
		for _, a := range st.Activities {
			stopTotal = stopTotal.Add(a.EstimatedCost)
			view.CategoryBreakdown.Add(models.CategoryLabel(a.Category), a.EstimatedCost)
		}
		total = total.Add(stopTotal)
		view.StopsBreakdown[i] = StopBreakdown{
			StopID:          st.ID,
			City:            st.City,
			Country:         st.Country,
			TotalCost:       stopTotal,
			ActivitiesCount: len(st.Activities),
		}
	}
	view.TotalCost = total
	return &view
}
