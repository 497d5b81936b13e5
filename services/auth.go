package services

import (
	"errors"
	"strings"

	"restaurant-directory-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenIssuer mints a signed bearer token for a user. The JWT mechanics live
// in the middleware package; the service only needs this one capability.
type TokenIssuer func(user *models.User) (string, error)

// AuthService is the account directory plus credential service: it creates
// and looks up user identities and exchanges credentials for bearer tokens.
type AuthService struct {
	DB         *gorm.DB
	IssueToken TokenIssuer
}

func NewAuthService(db *gorm.DB, issue TokenIssuer) *AuthService {
	return &AuthService{DB: db, IssueToken: issue}
}

// Register creates a new user account and returns a usable token.
// Emails are stored lowercased so uniqueness is case-insensitive.
func (s *AuthService) Register(name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// Two concurrent registrations can pass the lookup above; the unique
		// index on email is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrConflict
		}
		return "", err
	}

	return s.IssueToken(&user)
}

// Authenticate verifies email/password and returns a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	return s.IssueToken(&user)
}

// ListAll returns every user. Password hashes are excluded by serialization,
// never by this method.
func (s *AuthService) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Profile returns a single user by id.
func (s *AuthService) Profile(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
