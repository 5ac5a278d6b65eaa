package stop

import (
	"testing"

	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"github.com/globetrotter-app/core/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUser(t *testing.T, db *gorm.DB, name string) *models.UserModel {
	t.Helper()
	u := models.UserModel{Username: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func newTrip(t *testing.T, db *gorm.DB, userID, name string) *models.TripModel {
	t.Helper()
	tr := models.TripModel{
		UserID:    userID,
		Name:      name,
		StartDate: mustDate(t, "2025-01-01"),
		EndDate:   mustDate(t, "2025-01-10"),
	}
	require.NoError(t, db.Create(&tr).Error)
	return &tr
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func datePtr(t *testing.T, s string) *models.Date {
	d := mustDate(t, s)
	return &d
}

func TestCreateStop(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u := newUser(t, db, "alice")
	tr := newTrip(t, db, u.ID, "Japan")

	t.Run("Valid", func(t *testing.T) {
		st, err := svc.Create(u.ID, tr.ID, &CreateStopDTO{
			City:          "Kyoto",
			Country:       "Japan",
			ArrivalDate:   datePtr(t, "2025-01-01"),
			DepartureDate: datePtr(t, "2025-01-03"),
		})
		require.NoError(t, err)
		require.Equal(t, 0, st.SortOrder)
		require.Equal(t, 3, st.DurationDays())
	})

	t.Run("MissingCity", func(t *testing.T) {
		_, err := svc.Create(u.ID, tr.ID, &CreateStopDTO{
			Country:       "Japan",
			ArrivalDate:   datePtr(t, "2025-01-01"),
			DepartureDate: datePtr(t, "2025-01-03"),
		})
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "city", verr.Field)
	})

	t.Run("NegativeOrder", func(t *testing.T) {
		order := -1
		_, err := svc.Create(u.ID, tr.ID, &CreateStopDTO{
			City:          "Osaka",
			Country:       "Japan",
			ArrivalDate:   datePtr(t, "2025-01-04"),
			DepartureDate: datePtr(t, "2025-01-05"),
			Order:         &order,
		})
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "order", verr.Field)
	})

	t.Run("DepartureBeforeArrivalAccepted", func(t *testing.T) {
		// The date pair is expected to be ordered but deliberately not
		// enforced; an overnight data-entry mistake is the user's to fix.
		_, err := svc.Create(u.ID, tr.ID, &CreateStopDTO{
			City:          "Nara",
			Country:       "Japan",
			ArrivalDate:   datePtr(t, "2025-01-06"),
			DepartureDate: datePtr(t, "2025-01-05"),
		})
		require.NoError(t, err)
	})

	t.Run("ForeignTrip", func(t *testing.T) {
		mallory := newUser(t, db, "mallory")
		_, err := svc.Create(mallory.ID, tr.ID, &CreateStopDTO{
			City:          "Sneaky",
			Country:       "Nowhere",
			ArrivalDate:   datePtr(t, "2025-01-01"),
			DepartureDate: datePtr(t, "2025-01-02"),
		})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestUpdateStop(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u := newUser(t, db, "alice")
	tr := newTrip(t, db, u.ID, "Japan")

	st, err := svc.Create(u.ID, tr.ID, &CreateStopDTO{
		City:          "Kyoto",
		Country:       "Japan",
		ArrivalDate:   datePtr(t, "2025-01-01"),
		DepartureDate: datePtr(t, "2025-01-03"),
		Notes:         "temples",
	})
	require.NoError(t, err)

	t.Run("PartialKeepsUnspecified", func(t *testing.T) {
		city := "Tokyo"
		got, err := svc.Update(u.ID, st.ID, &UpdateStopDTO{City: &city})
		require.NoError(t, err)
		require.Equal(t, "Tokyo", got.City)
		require.Equal(t, "Japan", got.Country)
		require.Equal(t, "temples", got.Notes)
	})

	t.Run("InvalidFieldAppliesNothing", func(t *testing.T) {
		empty := ""
		order := 5
		_, err := svc.Update(u.ID, st.ID, &UpdateStopDTO{Country: &empty, Order: &order})
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)

		var got models.StopModel
		require.NoError(t, db.First(&got, "id = ?", st.ID).Error)
		require.Equal(t, 0, got.SortOrder)
	})

	t.Run("ForeignStop", func(t *testing.T) {
		mallory := newUser(t, db, "mallory")
		city := "stolen"
		_, err := svc.Update(mallory.ID, st.ID, &UpdateStopDTO{City: &city})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestDeleteStopCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u := newUser(t, db, "alice")
	tr := newTrip(t, db, u.ID, "Japan")

	st, err := svc.Create(u.ID, tr.ID, &CreateStopDTO{
		City:          "Kyoto",
		Country:       "Japan",
		ArrivalDate:   datePtr(t, "2025-01-01"),
		DepartureDate: datePtr(t, "2025-01-03"),
	})
	require.NoError(t, err)

	a := models.ActivityModel{StopID: st.ID, Name: "Temple", Category: models.CategoryActivity}
	require.NoError(t, db.Create(&a).Error)

	require.NoError(t, svc.Delete(u.ID, st.ID))

	var activities int64
	require.NoError(t, db.Model(&models.ActivityModel{}).Where("stop_id = ?", st.ID).Count(&activities).Error)
	require.Zero(t, activities)

	require.ErrorIs(t, svc.Delete(u.ID, st.ID), apperr.ErrNotFound)
}
