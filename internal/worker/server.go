// Package worker runs the asynq server that delivers job-match notifications
// off the request path.
package worker

import (
	"context"

	"careerconnect/internal/notify"
	"careerconnect/internal/tasks"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// Server wraps the asynq worker server and its handler registrations
type Server struct {
	srv *asynq.Server
	mux *asynq.ServeMux
	log *logrus.Logger
}

// NewServer creates the notification worker server
func NewServer(redisOpt asynq.RedisClientOpt, notifier *notify.Notifier, log *logrus.Logger) *Server {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.WithFields(logrus.Fields{
					"task_type": task.Type(),
					"retries":   retried,
					"max_retry": maxRetry,
				}).Errorf("Task failed: %v", err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeJobPosted, NewJobPostedHandler(notifier, log))

	return &Server{srv: srv, mux: mux, log: log}
}

// Start runs the worker server until Shutdown is called
func (s *Server) Start() error {
	s.log.Info("Notification worker starting")
	return s.srv.Start(s.mux)
}

// Shutdown stops the worker server, waiting for in-flight tasks
func (s *Server) Shutdown() {
	s.log.Info("Shutting down notification worker...")
	s.srv.Shutdown()
	s.log.Info("Notification worker stopped")
}
