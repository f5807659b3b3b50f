package services_test

import (
	"testing"

	"minicrm/internal/models"
	"minicrm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByUsername", user.Username).Return(nil, &models.NotFoundError{Entity: "User", ID: user.Username}).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, &models.NotFoundError{Entity: "User", ID: user.Email}).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)

	assert.NoError(t, err)
	// The stored password must be a bcrypt hash of the original.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: "user-1", Username: "admin"}
	mockRepo.On("GetByUsername", "admin").Return(existing, nil).Once()

	err := authService.RegisterUser(&models.User{
		Username: "admin",
		Email:    "other@example.com",
		Password: "password123",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "admin", Password: string(hashed)}

	// Successful login returns a token carrying the user's claims.
	mockRepo.On("GetByUsername", "admin").Return(user, nil)
	token, err := authService.LoginUser("admin", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "user-1", claims["user_id"])

	// Wrong password is rejected without revealing which check failed.
	_, err = authService.LoginUser("admin", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_LoginUser_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByUsername", "ghost").Return(nil, &models.NotFoundError{Entity: "User", ID: "ghost"}).Once()

	_, err := authService.LoginUser("ghost", "password123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	_, err := authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret must be rejected.
	other := services.NewAuthService(mockRepo, "other_secret")
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockRepo.On("GetByUsername", "admin").Return(&models.User{ID: "user-1", Username: "admin", Password: string(hashed)}, nil)
	token, err := other.LoginUser("admin", "password123")
	assert.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.Error(t, err)
}
