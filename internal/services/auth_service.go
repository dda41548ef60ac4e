package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"khanamart/internal/models"
	"khanamart/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 10 * time.Minute

// Reset-flow errors handlers need to distinguish.
var (
	ErrInvalidResetCode = errors.New("invalid or expired reset code")
	ErrCodeNotVerified  = errors.New("reset code has not been verified")
)

// AuthService handles registration, login, JWT issuance, and the
// OTP-based password reset flow.
type AuthService struct {
	userRepo   repositories.UserRepository
	resetRepo  repositories.ResetCodeRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, resetRepo repositories.ResetCodeRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		resetRepo:  resetRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser registers a new user, hashes their password, and saves
// them to the database.
func (s *AuthService) RegisterUser(user *models.User, password string) error {
	if existingUser, err := s.userRepo.GetByEmail(user.Email); err == nil && existingUser != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user by email and returns a JWT token if
// successful. Every failure mode collapses to the same generic error so
// the response never reveals whether the account exists.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// RequestPasswordReset issues a 6-digit one-time code for the email. The
// code is logged in place of a real mail integration. An unknown email is
// still reported as success so the endpoint cannot be used to enumerate
// accounts.
func (s *AuthService) RequestPasswordReset(email string) error {
	if _, err := s.userRepo.GetByEmail(email); err != nil {
		log.Printf("Password reset requested for unknown email %s", email)
		return nil
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	err := s.resetRepo.Put(repositories.ResetCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	})
	if err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	// Stand-in for real mail delivery.
	log.Printf("Password reset code for %s: %s", email, code)
	return nil
}

// VerifyResetCode checks the submitted code against the outstanding one
// for the email and marks it verified.
func (s *AuthService) VerifyResetCode(email, code string) error {
	stored, err := s.resetRepo.Get(email)
	if err != nil {
		return ErrInvalidResetCode
	}
	if stored.Code != code || time.Now().After(stored.ExpiresAt) {
		return ErrInvalidResetCode
	}

	stored.Verified = true
	return s.resetRepo.Put(*stored)
}

// ResetPassword replaces the user's password. The flow is linear: the
// code must have been verified first, and the code is consumed on
// success.
func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	stored, err := s.resetRepo.Get(email)
	if err != nil {
		return ErrInvalidResetCode
	}
	if stored.Code != code || time.Now().After(stored.ExpiresAt) {
		return ErrInvalidResetCode
	}
	if !stored.Verified {
		return ErrCodeNotVerified
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return ErrInvalidResetCode
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return s.resetRepo.Delete(email)
}
