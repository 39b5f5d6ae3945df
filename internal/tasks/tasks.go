// Package tasks defines the asynq task types exchanged between the web
// process and the notification worker.
package tasks

import (
	"encoding/json"
	"fmt"

	"careerconnect/internal/model"

	"github.com/hibiken/asynq"
)

// TypeJobPosted is emitted once per successfully created job listing.
const TypeJobPosted = "job:posted"

// JobPostedPayload carries the full job so the worker does not have to read
// it back from the database.
type JobPostedPayload struct {
	Job model.Job `json:"job"`
}

// NewJobPostedTask creates a job-posted task for the given listing
func NewJobPostedTask(job model.Job) (*asynq.Task, error) {
	payload, err := json.Marshal(JobPostedPayload{Job: job})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job posted payload: %w", err)
	}
	return asynq.NewTask(TypeJobPosted, payload), nil
}

// ParseJobPostedPayload decodes a job-posted task payload
func ParseJobPostedPayload(data []byte) (*JobPostedPayload, error) {
	var p JobPostedPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job posted payload: %w", err)
	}
	return &p, nil
}
