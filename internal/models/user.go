package models

import "time"

// UserModel represents a registered traveller. Users exclusively own their
// trips; every mutating lookup is scoped through this ownership.
type UserModel struct {
	Base
	Username      string     `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email         string     `json:"email"    gorm:"uniqueIndex;size:254;not null"`
	Password      string     `json:"-"        gorm:"not null"`
	LastLoginTime *time.Time `json:"last_login_time,omitempty"`

	Trips []TripModel `json:"trips,omitempty" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }
