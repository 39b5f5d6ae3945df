package repository

import (
	"context"
	"errors"
	"fmt"

	"careerconnect/internal/model"

	"github.com/jackc/pgx/v5"
)

// JobRepository defines operations for job listings. Listings are never
// updated or deleted, so the interface is insert and read only.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id int64) (*model.Job, error)
	FindAll(ctx context.Context) ([]model.Job, error)
}

type jobRepository struct {
	db DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db DB) JobRepository {
	return &jobRepository{db: db}
}

// Create inserts a new job listing into the database
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	sql := `INSERT INTO jobs (title, location, role, salary, description, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, job.Title, job.Location, job.Role, job.Salary, job.Description, job.CreatedAt).Scan(&job.ID)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindByID retrieves a job by its ID
func (r *jobRepository) FindByID(ctx context.Context, id int64) (*model.Job, error) {
	job := &model.Job{}
	sql := `SELECT id, title, location, role, salary, description, created_at FROM jobs WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&job.ID, &job.Title, &job.Location, &job.Role, &job.Salary, &job.Description, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found; the apply page renders with an absent job
		}
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	return job, nil
}

// FindAll retrieves every job listing in default storage order
func (r *jobRepository) FindAll(ctx context.Context) ([]model.Job, error) {
	sql := `SELECT id, title, location, role, salary, description, created_at FROM jobs ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Location, &j.Role, &j.Salary, &j.Description, &j.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}
