// Package ownership implements the authorization predicate for the
// Activity→Stop→Trip→User ownership chain. Services evaluate these checks
// explicitly before any read or mutation instead of burying the invariant in
// query filters, which keeps it auditable and testable in isolation.
package ownership

import (
	"github.com/globetrotter-app/core/internal/models"
	"gorm.io/gorm"
)

// Trip reports whether the trip exists and is owned by the user.
func Trip(db *gorm.DB, userID, tripID string) (bool, error) {
	var count int64
	err := db.Model(&models.TripModel{}).
		Where("id = ? AND user_id = ?", tripID, userID).
		Count(&count).Error
	return count > 0, err
}

// Stop reports whether the stop exists and its parent trip is owned by the user.
func Stop(db *gorm.DB, userID, stopID string) (bool, error) {
	var count int64
	err := db.Model(&models.StopModel{}).
		Joins("JOIN trips ON trips.id = stops.trip_id").
		Where("stops.id = ? AND trips.user_id = ?", stopID, userID).
		Count(&count).Error
	return count > 0, err
}

// Activity reports whether the activity exists and is owned by the user via
// its stop's parent trip.
func Activity(db *gorm.DB, userID, activityID string) (bool, error) {
	var count int64
	err := db.Model(&models.ActivityModel{}).
		Joins("JOIN stops ON stops.id = activities.stop_id").
		Joins("JOIN trips ON trips.id = stops.trip_id").
		Where("activities.id = ? AND trips.user_id = ?", activityID, userID).
		Count(&count).Error
	return count > 0, err
}
