package mocks

import (
	"context"

	"careerconnect/internal/model"

	"github.com/stretchr/testify/mock"
)

// JobRepository is a mock of repository.JobRepository
type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *JobRepository) FindByID(ctx context.Context, id int64) (*model.Job, error) {
	args := m.Called(ctx, id)
	if j := args.Get(0); j != nil {
		return j.(*model.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobRepository) FindAll(ctx context.Context) ([]model.Job, error) {
	args := m.Called(ctx)
	if j := args.Get(0); j != nil {
		return j.([]model.Job), args.Error(1)
	}
	return nil, args.Error(1)
}
