package share

import (
	"testing"

	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/modules/trip"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"github.com/globetrotter-app/core/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPublicTrip(t *testing.T, db *gorm.DB) (*models.UserModel, *models.TripModel, *trip.Service) {
	t.Helper()
	u := models.UserModel{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	start, err := models.ParseDate("2025-01-01")
	require.NoError(t, err)
	end, err := models.ParseDate("2025-01-10")
	require.NoError(t, err)

	trips := trip.NewService(db)
	tr, err := trips.Create(u.ID, &trip.CreateTripDTO{
		Name:      "Japan",
		StartDate: &start,
		EndDate:   &end,
		IsPublic:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, tr.ShareToken)
	return &u, tr, trips
}

func TestResolvePublicTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u, tr, _ := seedPublicTrip(t, db)

	got, err := svc.Resolve(*tr.ShareToken)
	require.NoError(t, err)
	require.Equal(t, tr.ID, got.ID)
	require.Equal(t, u.Username, got.User.Username)
}

func TestResolveGatesOnVisibility(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u, tr, trips := seedPublicTrip(t, db)
	token := *tr.ShareToken

	// A correct token stops working the moment the trip goes private.
	private := false
	_, err := trips.Update(u.ID, tr.ID, &trip.UpdateTripDTO{IsPublic: &private})
	require.NoError(t, err)

	_, err = svc.Resolve(token)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// Re-publishing restores access under the same token.
	public := true
	_, err = trips.Update(u.ID, tr.ID, &trip.UpdateTripDTO{IsPublic: &public})
	require.NoError(t, err)

	got, err := svc.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, tr.ID, got.ID)
}

func TestResolveUnknownToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	seedPublicTrip(t, db)

	_, err := svc.Resolve("not-a-real-token")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
