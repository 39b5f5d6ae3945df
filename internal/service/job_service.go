package service

import (
	"context"
	"fmt"
	"time"

	"careerconnect/internal/model"
	"careerconnect/internal/repository"
	"careerconnect/internal/tasks"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// TaskEnqueuer is the slice of asynq.Client the job service uses, kept as an
// interface so tests can capture enqueued tasks.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// JobService provides job listing operations
type JobService interface {
	ListJobs(ctx context.Context) ([]model.Job, error)
	CreateJob(ctx context.Context, req model.CreateJobRequest) (*model.Job, error)
	GetJob(ctx context.Context, id int64) (*model.Job, error)
}

type jobService struct {
	jobRepo  repository.JobRepository
	enqueuer TaskEnqueuer
	log      *logrus.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository, enqueuer TaskEnqueuer, log *logrus.Logger) JobService {
	return &jobService{jobRepo: jobRepo, enqueuer: enqueuer, log: log}
}

// ListJobs returns every listing in default storage order
func (s *jobService) ListJobs(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob persists a new listing and enqueues a job-posted task for the
// notification worker. The listing is committed before the enqueue, so a queue
// outage can delay notifications but never lose the job; an enqueue failure is
// logged and the creation still succeeds.
func (s *jobService) CreateJob(ctx context.Context, req model.CreateJobRequest) (*model.Job, error) {
	job := &model.Job{
		Title:       req.Title,
		Location:    req.Location,
		Role:        req.Role,
		Salary:      req.Salary, // stored as text, not validated as numeric
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job in repository: %w", err)
	}

	task, err := tasks.NewJobPostedTask(*job)
	if err != nil {
		s.log.WithField("job_id", job.ID).Errorf("Failed to build job posted task: %v", err)
		return job, nil
	}
	if _, err := s.enqueuer.Enqueue(task); err != nil {
		s.log.WithField("job_id", job.ID).Errorf("Failed to enqueue job posted task: %v", err)
	}

	return job, nil
}

// GetJob returns the listing with the given id, or nil when it does not exist
func (s *jobService) GetJob(ctx context.Context, id int64) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}
