package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/globetrotter-app/core/internal/models"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	sessionpkg "github.com/globetrotter-app/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Register creates a new user and logs them in, returning the user and a
// session token.
func (s *Service) Register(dto *RegisterDTO, ip, ua string) (*models.UserModel, string, error) {
	username := strings.TrimSpace(dto.Username)
	email := strings.TrimSpace(dto.Email)
	if username == "" {
		return nil, "", apperr.Validation("username", "username is required")
	}
	if email == "" {
		return nil, "", apperr.Validation("email", "email is required")
	}
	if dto.Password == "" {
		return nil, "", apperr.Validation("password", "password is required")
	}

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", apperr.Conflictf("username already exists")
	}
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", apperr.Conflictf("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := models.UserModel{Username: username, Email: email, Password: string(hash)}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, "", err
	}

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(username, password, ip, ua string) (*models.UserModel, string, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", apperr.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&u).Update("last_login_time", &now).Error; err != nil {
		return nil, "", err
	}

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Logout revokes the session behind the given user/session pair. Revoking an
// already-revoked or unknown session is not an error.
func (s *Service) Logout(userID, sessionID string) error {
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// GetUser loads a user by ID.
func (s *Service) GetUser(userID string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
