package worker

import (
	"context"
	"fmt"

	"careerconnect/internal/notify"
	"careerconnect/internal/tasks"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// JobPostedHandler processes job:posted tasks by running the match scan and
// sending notification mail.
type JobPostedHandler struct {
	notifier *notify.Notifier
	log      *logrus.Logger
}

// NewJobPostedHandler creates a new JobPostedHandler
func NewJobPostedHandler(notifier *notify.Notifier, log *logrus.Logger) *JobPostedHandler {
	return &JobPostedHandler{notifier: notifier, log: log}
}

// ProcessTask implements asynq.Handler. A payload that cannot be decoded is
// never going to succeed, so it is marked SkipRetry. Per-recipient delivery
// failures are handled inside the notifier and do not fail the task; only a
// failure to read the jobseeker set returns an error, which asynq retries.
func (h *JobPostedHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	payload, err := tasks.ParseJobPostedPayload(t.Payload())
	if err != nil {
		return fmt.Errorf("invalid job posted payload: %v: %w", err, asynq.SkipRetry)
	}

	sent, err := h.notifier.NotifyMatches(ctx, payload.Job)
	if err != nil {
		return fmt.Errorf("job posted notification failed: %w", err)
	}

	h.log.WithFields(logrus.Fields{
		"job_id": payload.Job.ID,
		"sent":   sent,
	}).Debug("Job posted task processed")
	return nil
}
