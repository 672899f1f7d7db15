package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wdpl/corporate-site-api/internal/constants"
	"github.com/wdpl/corporate-site-api/internal/mailer"
	"github.com/wdpl/corporate-site-api/internal/models"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAdmin means the credentials were valid but the email has no
	// admins row. The caller must revoke the session it just created.
	ErrNotAdmin          = errors.New("not authorized for the admin panel")
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

const resetTokenTTL = 15 * time.Minute

// AuthService verifies credentials, authorizes admin access against the
// admins allowlist, and runs the password-reset flow.
type AuthService struct {
	accounts    repository.AccountRepository
	mailer      mailer.Mailer
	tokenSecret string
	siteBaseURL string
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts repository.AccountRepository, m mailer.Mailer, tokenSecret, siteBaseURL string) *AuthService {
	return &AuthService{
		accounts:    accounts,
		mailer:      m,
		tokenSecret: tokenSecret,
		siteBaseURL: siteBaseURL,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and then requires an admins row for the email.
// A valid login without an admins row returns ErrNotAdmin; the session the
// handler created must not survive it.
func (s *AuthService) Login(input LoginInput) (*models.User, *models.AdminAccount, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.accounts.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	admin, err := s.accounts.FindAdminByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotAdmin
		}
		// Fail closed: an unreadable allowlist is not authorization.
		return nil, nil, fmt.Errorf("failed to check admin account: %w", err)
	}

	return user, admin, nil
}

// IsAdmin reports whether the email has an admins row.
func (s *AuthService) IsAdmin(email string) (bool, error) {
	_, err := s.accounts.FindAdminByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check admin account: %w", err)
	}
	return true, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.accounts.FindUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// RequestPasswordReset mails a signed reset link to the address if it has
// an account. Unknown addresses are ignored without error so the endpoint
// does not reveal which emails exist.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.accounts.FindUserByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	token, err := s.generateResetToken(email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.siteBaseURL, token)
	if err := s.mailer.SendPasswordReset(email, resetURL); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}

// ResetPassword verifies the token and replaces the account password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	email, err := s.verifyResetToken(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.accounts.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accounts.UpdatePassword(user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *AuthService) generateResetToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     email,
		"purpose": "password_reset",
		"exp":     time.Now().Add(resetTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokenSecret))
}

func (s *AuthService) verifyResetToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.tokenSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidResetToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidResetToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != "password_reset" {
		return "", ErrInvalidResetToken
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", ErrInvalidResetToken
	}
	return email, nil
}
