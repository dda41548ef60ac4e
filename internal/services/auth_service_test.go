package services_test

import (
	"fmt"
	"testing"
	"time"

	"khanamart/internal/models"
	"khanamart/internal/repositories"
	"khanamart/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func newAuthServiceForTest(mockRepo *MockUserRepository) (*services.AuthService, *repositories.MemoryResetCodeRepository) {
	resetRepo := repositories.NewMemoryResetCodeRepository()
	return services.NewAuthService(mockRepo, resetRepo, "test_jwt_secret"), resetRepo
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthServiceForTest(mockRepo)

	user := &models.User{
		Name:  "Test User",
		Email: "test@example.com",
		Phone: "9876543210",
	}

	// Test successful registration
	mockRepo.On("GetByEmail", user.Email).Return(nil, fmt.Errorf("user with email test@example.com not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user, "password123")
	assert.NoError(t, err)
	// The stored password is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user, "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email 'test@example.com' already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthServiceForTest(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Test successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.LoginUser("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate the token structure
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte("test_jwt_secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, user.Name, claims["name"])
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.LoginUser("test@example.com", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (user not found) — same generic message
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com not found")).Once()
	_, err = authService.LoginUser("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthServiceForTest(mockRepo)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"email":   "test@example.com",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte("test_jwt_secret"))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "test@example.com", claims["email"])

	// Test invalid token (garbage)
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte("test_jwt_secret"))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, resetRepo := newAuthServiceForTest(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Unknown emails still report success, and no code is issued.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com not found")).Once()
	assert.NoError(t, authService.RequestPasswordReset("nobody@example.com"))
	_, err := resetRepo.Get("nobody@example.com")
	assert.Error(t, err)

	// A known email gets a 6-digit code.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	assert.NoError(t, authService.RequestPasswordReset(user.Email))
	code, err := resetRepo.Get(user.Email)
	assert.NoError(t, err)
	assert.Len(t, code.Code, 6)
	assert.False(t, code.Verified)

	// The wrong code does not verify.
	wrong := "000000"
	if code.Code == wrong {
		wrong = "000001"
	}
	assert.ErrorIs(t, authService.VerifyResetCode(user.Email, wrong), services.ErrInvalidResetCode)

	// Resetting before verification is rejected.
	assert.ErrorIs(t, authService.ResetPassword(user.Email, code.Code, "newpassword1"), services.ErrCodeNotVerified)

	assert.NoError(t, authService.VerifyResetCode(user.Email, code.Code))

	var updated *models.User
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		updated = args.Get(0).(*models.User)
	}).Return(nil).Once()

	assert.NoError(t, authService.ResetPassword(user.Email, code.Code, "newpassword1"))
	assert.NotNil(t, updated)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword1")))

	// The code is consumed; the flow cannot be replayed.
	_, err = resetRepo.Get(user.Email)
	assert.Error(t, err)
	assert.ErrorIs(t, authService.ResetPassword(user.Email, code.Code, "anotherpass1"), services.ErrInvalidResetCode)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyResetCode_Expired(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, resetRepo := newAuthServiceForTest(mockRepo)

	assert.NoError(t, resetRepo.Put(repositories.ResetCode{
		Email:     "test@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	assert.ErrorIs(t, authService.VerifyResetCode("test@example.com", "123456"), services.ErrInvalidResetCode)
}
