package activity

import (
	"testing"

	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"github.com/globetrotter-app/core/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStop(t *testing.T, db *gorm.DB, username string) (*models.UserModel, *models.StopModel) {
	t.Helper()
	u := models.UserModel{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	start, err := models.ParseDate("2025-01-01")
	require.NoError(t, err)
	end, err := models.ParseDate("2025-01-10")
	require.NoError(t, err)

	tr := models.TripModel{UserID: u.ID, Name: "Japan", StartDate: start, EndDate: end}
	require.NoError(t, db.Create(&tr).Error)

	st := models.StopModel{
		TripID:        tr.ID,
		City:          "Kyoto",
		Country:       "Japan",
		ArrivalDate:   start,
		DepartureDate: end,
	}
	require.NoError(t, db.Create(&st).Error)
	return &u, &st
}

func money(t *testing.T, s string) *models.Money {
	t.Helper()
	m, err := models.MoneyFromString(s)
	require.NoError(t, err)
	return &m
}

func TestCreateActivity(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u, st := seedStop(t, db, "alice")

	t.Run("Valid", func(t *testing.T) {
		a, err := svc.Create(u.ID, st.ID, &CreateActivityDTO{
			Name:          "Fushimi Inari",
			Category:      models.CategoryActivity,
			EstimatedCost: money(t, "12.50"),
		})
		require.NoError(t, err)
		require.Equal(t, models.CategoryActivity, a.Category)
		require.Equal(t, "12.50", a.EstimatedCost.StringFixed(2))
	})

	t.Run("DefaultsCategoryAndCost", func(t *testing.T) {
		a, err := svc.Create(u.ID, st.ID, &CreateActivityDTO{Name: "Wander"})
		require.NoError(t, err)
		require.Equal(t, models.CategoryOther, a.Category)
		require.Equal(t, "0.00", a.EstimatedCost.StringFixed(2))
		require.Nil(t, a.Date)
		require.Nil(t, a.Time)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		_, err := svc.Create(u.ID, st.ID, &CreateActivityDTO{
			Name:     "Mystery",
			Category: "LUXURY",
		})
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "category", verr.Field)
	})

	t.Run("NegativeCost", func(t *testing.T) {
		_, err := svc.Create(u.ID, st.ID, &CreateActivityDTO{
			Name:          "Refund",
			EstimatedCost: money(t, "-1.00"),
		})
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "estimated_cost", verr.Field)
	})

	t.Run("ForeignStop", func(t *testing.T) {
		mallory := models.UserModel{Username: "mallory", Email: "mallory@example.com", Password: "x"}
		require.NoError(t, db.Create(&mallory).Error)

		_, err := svc.Create(mallory.ID, st.ID, &CreateActivityDTO{Name: "Sneak"})
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestUpdateActivity(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u, st := seedStop(t, db, "alice")

	a, err := svc.Create(u.ID, st.ID, &CreateActivityDTO{
		Name:          "Ramen",
		Category:      models.CategoryFood,
		EstimatedCost: money(t, "8.00"),
		Notes:         "lunch",
	})
	require.NoError(t, err)

	t.Run("PartialKeepsUnspecified", func(t *testing.T) {
		cost := money(t, "9.50")
		got, err := svc.Update(u.ID, a.ID, &UpdateActivityDTO{EstimatedCost: cost})
		require.NoError(t, err)
		require.Equal(t, "9.50", got.EstimatedCost.StringFixed(2))
		require.Equal(t, "Ramen", got.Name)
		require.Equal(t, "lunch", got.Notes)
	})

	t.Run("InvalidCategoryAppliesNothing", func(t *testing.T) {
		bad := "FANCY"
		name := "should not land"
		_, err := svc.Update(u.ID, a.ID, &UpdateActivityDTO{Category: &bad, Name: &name})
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)

		var got models.ActivityModel
		require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
		require.Equal(t, "Ramen", got.Name)
		require.Equal(t, models.CategoryFood, got.Category)
	})

	t.Run("ForeignActivityUnchanged", func(t *testing.T) {
		mallory := models.UserModel{Username: "mallory2", Email: "mallory2@example.com", Password: "x"}
		require.NoError(t, db.Create(&mallory).Error)

		name := "stolen"
		_, err := svc.Update(mallory.ID, a.ID, &UpdateActivityDTO{Name: &name})
		require.ErrorIs(t, err, apperr.ErrNotFound)

		var got models.ActivityModel
		require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
		require.Equal(t, "Ramen", got.Name)
	})
}

func TestDeleteActivity(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u, st := seedStop(t, db, "alice")

	a, err := svc.Create(u.ID, st.ID, &CreateActivityDTO{Name: "Temple"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(u.ID, a.ID))
	require.ErrorIs(t, svc.Delete(u.ID, a.ID), apperr.ErrNotFound)
}
