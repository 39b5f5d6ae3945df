package notify

import (
	"context"
	"fmt"

	"careerconnect/internal/model"
	"careerconnect/internal/repository"

	"github.com/sirupsen/logrus"
)

const matchSubject = "New Job Match Found"

func matchBody(username string, job model.Job) string {
	return fmt.Sprintf(
		"Hi %s,\n\nA new job matching your profile has been posted: %s in %s.\n\nCheck it out at CareerConnect.",
		username, job.Title, job.Location,
	)
}

// Notifier fans a newly posted job out to every matching jobseeker.
type Notifier struct {
	users  repository.UserRepository
	mailer Mailer
	log    *logrus.Logger
}

// NewNotifier creates a new Notifier
func NewNotifier(users repository.UserRepository, mailer Mailer, log *logrus.Logger) *Notifier {
	return &Notifier{users: users, mailer: mailer, log: log}
}

// NotifyMatches scans all jobseekers and sends one email per user whose
// profile matches the job's role. A delivery failure for one recipient is
// logged and the scan continues; it never fails the whole task. The returned
// count is the number of emails actually sent.
func (n *Notifier) NotifyMatches(ctx context.Context, job model.Job) (int, error) {
	seekers, err := n.users.FindByRole(ctx, model.RoleJobseeker)
	if err != nil {
		return 0, fmt.Errorf("failed to load jobseekers: %w", err)
	}

	sent := 0
	for _, seeker := range seekers {
		if seeker.Profile == nil || !Matches(*seeker.Profile, job.Role) {
			continue
		}
		if err := n.mailer.Send(seeker.Email, matchSubject, matchBody(seeker.Username, job)); err != nil {
			n.log.WithFields(logrus.Fields{
				"job_id":  job.ID,
				"user_id": seeker.ID,
			}).Warnf("Failed to send match notification: %v", err)
			continue
		}
		sent++
	}

	n.log.WithFields(logrus.Fields{
		"job_id":   job.ID,
		"scanned":  len(seekers),
		"notified": sent,
	}).Info("Job match scan complete")

	return sent, nil
}
