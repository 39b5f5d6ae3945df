// Package mocks provides testify mock implementations of the repository
// interfaces for service-level tests.
package mocks

import (
	"context"

	"careerconnect/internal/model"

	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock of repository.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	if u := args.Get(0); u != nil {
		return u.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, id int, profile string) error {
	args := m.Called(ctx, id, profile)
	return args.Error(0)
}

func (m *UserRepository) UpdateResume(ctx context.Context, id int, filename string) error {
	args := m.Called(ctx, id, filename)
	return args.Error(0)
}
