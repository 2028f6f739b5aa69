package email

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/email/templates"
)

// fakeQueue is an in-memory EmailQueueRepository for worker tests.
type fakeQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *fakeQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	pending := make([]*entity.EmailJob, 0)
	for _, job := range q.jobs {
		if job.IsReadyToProcess() {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return job, nil
}

func (q *fakeQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender *MockEmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func queueResetJob(queue *fakeQueue) *entity.EmailJob {
	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		"user@example.com",
		"Test User",
		"Reset your password - BudgetWise",
		map[string]interface{}{
			"user_name":  "Test User",
			"reset_url":  "http://localhost:5173/reset-password?token=abc",
			"expires_in": "1 hour",
		},
	)
	queue.jobs[job.ID] = job
	return job
}

func TestWorkerProcessesPendingJob(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := queueResetJob(queue)

	worker.ProcessNow(context.Background())

	require.Len(t, sender.SentEmails, 1)
	sent := sender.SentEmails[0]
	assert.Equal(t, "user@example.com", sent.To)
	assert.Equal(t, "Reset your password - BudgetWise", sent.Subject)
	assert.Contains(t, sent.HTML, "http://localhost:5173/reset-password?token=abc")
	assert.Contains(t, sent.Text, "http://localhost:5173/reset-password?token=abc")

	assert.Equal(t, entity.EmailStatusSent, job.Status)
	assert.Equal(t, "mock-1", job.ProviderID)
	assert.NotNil(t, job.ProcessedAt)
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := queueResetJob(queue)
	sender.SetFailure(errors.New("connection refused"), false)

	worker.ProcessNow(context.Background())

	assert.Empty(t, sender.SentEmails)
	assert.Equal(t, entity.EmailStatusPending, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.NotEmpty(t, job.LastError)

	// The retry is delayed, so an immediate poll skips the job.
	worker.ProcessNow(context.Background())
	assert.Equal(t, 1, job.Attempts)
}

func TestWorkerFailsPermanentlyOnProviderRejection(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := queueResetJob(queue)
	sender.SetFailure(domainerror.NewEmailError(
		domainerror.ErrCodePermanentEmailFailure,
		"invalid recipient",
		errors.New("422 unprocessable entity"),
	), true)

	worker.ProcessNow(context.Background())

	assert.Empty(t, sender.SentEmails)
	assert.Equal(t, entity.EmailStatusFailed, job.Status)
}

func TestWorkerFailsUnknownTemplatePermanently(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := entity.NewEmailJob(
		entity.EmailTemplateType("unknown_template"),
		"user@example.com",
		"Test User",
		"Subject",
		map[string]interface{}{},
	)
	queue.jobs[job.ID] = job

	worker.ProcessNow(context.Background())

	assert.Empty(t, sender.SentEmails)
	assert.Equal(t, entity.EmailStatusFailed, job.Status)
}

func TestWorkerRendersGoalCompletedTemplate(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := entity.NewEmailJob(
		entity.TemplateGoalCompleted,
		"saver@example.com",
		"Saver",
		"You reached your goal Vacation - BudgetWise",
		map[string]interface{}{
			"user_name":     "Saver",
			"goal_name":     "Vacation",
			"target_amount": "2000",
		},
	)
	queue.jobs[job.ID] = job

	worker.ProcessNow(context.Background())

	require.Len(t, sender.SentEmails, 1)
	assert.Contains(t, sender.SentEmails[0].HTML, "Vacation")
	assert.Equal(t, entity.EmailStatusSent, job.Status)
}
