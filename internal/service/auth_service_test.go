package service_test

import (
	"context"
	"testing"

	"careerconnect/internal/model"
	"careerconnect/internal/repository/mocks"
	"careerconnect/internal/service"
	"careerconnect/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(userRepo *mocks.UserRepository) service.AuthService {
	return service.NewAuthService(userRepo, utils.NewSessionUtil("test-secret", 1))
}

func TestAuthService_Register_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := newAuthService(mockUserRepo)
	ctx := context.Background()

	req := model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "StrongPass123",
		Confirm:  "StrongPass123",
		Role:     model.RoleJobseeker,
	}

	mockUserRepo.On("FindByEmail", ctx, req.Email).Return(nil, nil).Once()
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(user *model.User) bool {
		assert.Equal(t, req.Username, user.Username)
		assert.Equal(t, req.Email, user.Email)
		assert.Equal(t, model.RoleJobseeker, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
		return true
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 5
	}).Return(nil).Once()

	user, err := authService.Register(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 5, user.ID)
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := newAuthService(mockUserRepo)
	ctx := context.Background()

	existing := &model.User{ID: 3, Email: "taken@example.com"}
	mockUserRepo.On("FindByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

	_, err := authService.Register(ctx, model.RegisterRequest{
		Username: "bob",
		Email:    "taken@example.com",
		Password: "pw",
		Confirm:  "pw",
		Role:     model.RoleEmployer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
	mockUserRepo.AssertExpectations(t)
	// A duplicate email never creates a second row
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := newAuthService(mockUserRepo)
	ctx := context.Background()

	mockUserRepo.On("FindByEmail", ctx, "carol@example.com").Return(nil, nil).Once()

	_, err := authService.Register(ctx, model.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "one",
		Confirm:  "two",
		Role:     model.RoleJobseeker,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPasswordMismatch)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := newAuthService(mockUserRepo)
	ctx := context.Background()

	mockUserRepo.On("FindByEmail", ctx, "dave@example.com").Return(nil, nil).Once()

	_, err := authService.Register(ctx, model.RegisterRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "pw",
		Confirm:  "pw",
		Role:     "admin",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidRole)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := newAuthService(mockUserRepo)
	ctx := context.Background()

	password := "password123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userInDb := &model.User{ID: 1, Email: "alice@example.com", PasswordHash: string(hash), Role: model.RoleEmployer}

	mockUserRepo.On("FindByEmail", ctx, "alice@example.com").Return(userInDb, nil).Once()

	user, token, err := authService.Login(ctx, "alice@example.com", password)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, user.ID)
	mockUserRepo.AssertExpectations(t)
}

// An unknown email and a wrong password yield the identical error, so login
// responses carry no user-enumeration signal.
func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := newAuthService(mockUserRepo)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	userInDb := &model.User{ID: 1, Email: "known@example.com", PasswordHash: string(hash)}

	mockUserRepo.On("FindByEmail", ctx, "unknown@example.com").Return(nil, nil).Once()
	mockUserRepo.On("FindByEmail", ctx, "known@example.com").Return(userInDb, nil).Once()

	_, _, errUnknown := authService.Login(ctx, "unknown@example.com", "whatever")
	_, _, errWrongPw := authService.Login(ctx, "known@example.com", "incorrect")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, service.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	mockUserRepo.AssertExpectations(t)
}
