package notify_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"careerconnect/internal/model"
	"careerconnect/internal/notify"
	"careerconnect/internal/repository/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// captureMailer records sent mail and can fail selected recipients
type captureMailer struct {
	sent   []sentMail
	failTo map[string]error
}

func (m *captureMailer) Send(to, subject, body string) error {
	if err := m.failTo[to]; err != nil {
		return err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func strPtr(s string) *string { return &s }

func TestNotifier_NotifyMatches_OneMailPerMatchingSeeker(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mailer := &captureMailer{}
	notifier := notify.NewNotifier(mockUserRepo, mailer, quietLogger())
	ctx := context.Background()

	seekers := []model.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", Profile: strPtr("experienced engineer")},
		{ID: 2, Username: "bob", Email: "bob@example.com", Profile: strPtr("SENIOR ENGINEER, ten years")},
		{ID: 3, Username: "carol", Email: "carol@example.com", Profile: strPtr("pastry chef")},
		{ID: 4, Username: "dave", Email: "dave@example.com", Profile: nil},
		{ID: 5, Username: "erin", Email: "erin@example.com", Profile: strPtr("")},
	}
	mockUserRepo.On("FindByRole", ctx, model.RoleJobseeker).Return(seekers, nil).Once()

	job := model.Job{ID: 12, Title: "Backend Dev", Location: "Remote", Role: "Engineer"}
	sent, err := notifier.NotifyMatches(ctx, job)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, mailer.sent, 2)

	assert.Equal(t, "alice@example.com", mailer.sent[0].To)
	assert.Equal(t, "New Job Match Found", mailer.sent[0].Subject)
	assert.Equal(t,
		"Hi alice,\n\nA new job matching your profile has been posted: Backend Dev in Remote.\n\nCheck it out at CareerConnect.",
		mailer.sent[0].Body)

	assert.Equal(t, "bob@example.com", mailer.sent[1].To)
	mockUserRepo.AssertExpectations(t)
}

// One failing recipient never stops delivery to the rest.
func TestNotifier_NotifyMatches_DeliveryFailureIsIsolated(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mailer := &captureMailer{failTo: map[string]error{
		"alice@example.com": fmt.Errorf("mailbox unavailable"),
	}}
	notifier := notify.NewNotifier(mockUserRepo, mailer, quietLogger())
	ctx := context.Background()

	seekers := []model.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", Profile: strPtr("engineer")},
		{ID: 2, Username: "bob", Email: "bob@example.com", Profile: strPtr("engineer")},
	}
	mockUserRepo.On("FindByRole", ctx, model.RoleJobseeker).Return(seekers, nil).Once()

	sent, err := notifier.NotifyMatches(ctx, model.Job{ID: 1, Role: "Engineer"})

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "bob@example.com", mailer.sent[0].To)
}

func TestNotifier_NotifyMatches_NoSeekers(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mailer := &captureMailer{}
	notifier := notify.NewNotifier(mockUserRepo, mailer, quietLogger())
	ctx := context.Background()

	mockUserRepo.On("FindByRole", ctx, model.RoleJobseeker).Return([]model.User{}, nil).Once()

	sent, err := notifier.NotifyMatches(ctx, model.Job{ID: 1, Role: "Engineer"})

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.sent)
}

func TestNotifier_NotifyMatches_RepoError(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mailer := &captureMailer{}
	notifier := notify.NewNotifier(mockUserRepo, mailer, quietLogger())
	ctx := context.Background()

	mockUserRepo.On("FindByRole", ctx, model.RoleJobseeker).Return(nil, errors.New("db down")).Once()

	_, err := notifier.NotifyMatches(ctx, model.Job{ID: 1, Role: "Engineer"})

	require.Error(t, err)
	assert.Empty(t, mailer.sent)
}
