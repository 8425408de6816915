package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/autoshop-backend/internal/logging"
	"github.com/unclebandit/autoshop-backend/internal/queue"
)

type recordingNotifier struct {
	mu   sync.Mutex
	jobs []queue.NotificationJob
	err  error
}

func (r *recordingNotifier) NotifyBoth(_ context.Context, customerPhone, adminPhone, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, queue.NotificationJob{CustomerPhone: customerPhone, AdminPhone: adminPhone, Body: body})
	return r.err
}

func drain(t *testing.T, q *queue.InMemoryQueue) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, q.Drain(ctx))
}

func TestPublishWithoutSubscribers(t *testing.T) {
	q := queue.NewInMemoryQueue(logging.Discard())
	err := q.Publish("nobody", 1)
	assert.ErrorContains(t, err, "no subscribers for topic nobody")
}

func TestNotificationSubscriber(t *testing.T) {
	q := queue.NewInMemoryQueue(logging.Discard())
	n := &recordingNotifier{}
	require.NoError(t, queue.StartNotificationSubscriber(q, n))

	job := queue.NotificationJob{CustomerPhone: "9876543210", AdminPhone: "+14155552671", Body: "hi"}
	require.NoError(t, q.Publish(queue.TopicNotifications, job))
	drain(t, q)

	require.Len(t, n.jobs, 1)
	assert.Equal(t, job, n.jobs[0])
}

func TestFailingAndPanickingJobsAreAbsorbed(t *testing.T) {
	q := queue.NewInMemoryQueue(logging.Discard())
	n := &recordingNotifier{err: errors.New("twilio down")}
	require.NoError(t, queue.StartNotificationSubscriber(q, n))
	require.NoError(t, q.Subscribe("boom", func(any) error { panic("unexpected") }))

	require.NoError(t, q.Publish(queue.TopicNotifications, queue.NotificationJob{Body: "x"}))
	require.NoError(t, q.Publish("boom", nil))
	drain(t, q)

	assert.Len(t, n.jobs, 1)
}

func TestWrongPayloadType(t *testing.T) {
	q := queue.NewInMemoryQueue(logging.Discard())
	n := &recordingNotifier{}
	require.NoError(t, queue.StartNotificationSubscriber(q, n))

	require.NoError(t, q.Publish(queue.TopicNotifications, "not a job"))
	drain(t, q)

	assert.Empty(t, n.jobs)
}
