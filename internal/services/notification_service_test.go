package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medical-appointment-service/internal/adapters"
)

func waitForNotification(t *testing.T, sent <-chan Notification) Notification {
	t.Helper()
	select {
	case n := <-sent:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
		return Notification{}
	}
}

func TestNewNotificationService_MinimumOneWorker(t *testing.T) {
	svc := NewNotificationService(&MockQueueAdapter{}, NewLogSender(discardLogger()), 0, discardLogger())
	assert.Equal(t, 1, svc.(*NotificationServiceImpl).numWorkers)
}

func TestNotificationService_ConsumesQueue(t *testing.T) {
	queue := adapters.NewInMemoryQueueAdapter(discardLogger())
	defer queue.Close(context.Background())
	sender := NewMockNotificationSender(10)
	svc := NewNotificationService(queue, sender, 3, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Start(ctx))

	publishNotification(ctx, queue, discardLogger(), Notification{
		Kind:      NotificationAppointmentBooked,
		Recipient: "jane@x.com",
		Message:   "booked",
	})

	n := waitForNotification(t, sender.Sent)
	assert.Equal(t, NotificationAppointmentBooked, n.Kind)
	assert.Equal(t, "jane@x.com", n.Recipient)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.CreatedAt.IsZero())

	require.NoError(t, svc.Stop(context.Background()))
}

func TestNotificationService_BadPayloadIsSkipped(t *testing.T) {
	queue := adapters.NewInMemoryQueueAdapter(discardLogger())
	defer queue.Close(context.Background())
	sender := NewMockNotificationSender(10)
	svc := NewNotificationService(queue, sender, 1, discardLogger())
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop(context.Background())

	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, NotificationQueue, []byte("{not json")))
	good, err := json.Marshal(Notification{ID: "n-2", Kind: NotificationOTPIssued})
	require.NoError(t, err)
	require.NoError(t, queue.Publish(ctx, NotificationQueue, good))

	n := waitForNotification(t, sender.Sent)
	assert.Equal(t, "n-2", n.ID)
}

func TestNotificationService_StopDrainsDispatched(t *testing.T) {
	queue := adapters.NewInMemoryQueueAdapter(discardLogger())
	defer queue.Close(context.Background())
	sender := NewMockNotificationSender(50)
	svc := NewNotificationService(queue, sender, 2, discardLogger())
	require.NoError(t, svc.Start(context.Background()))

	for i := 0; i < 20; i++ {
		require.NoError(t, svc.Dispatch(context.Background(), Notification{Kind: NotificationOTPIssued}))
	}
	require.NoError(t, svc.Stop(context.Background()))
	assert.Equal(t, int32(20), sender.SendFuncCallCount)

	err := svc.Dispatch(context.Background(), Notification{})
	assert.ErrorIs(t, err, ErrNotificationServiceStopped)
	assert.NoError(t, svc.Stop(context.Background()))
}

func TestNotificationService_SenderErrorKeepsWorking(t *testing.T) {
	queue := adapters.NewInMemoryQueueAdapter(discardLogger())
	defer queue.Close(context.Background())
	sender := NewMockNotificationSender(10)
	sender.SendFunc = func(_ context.Context, n Notification) error {
		if n.ID == "fail" {
			return errors.New("smtp down")
		}
		return nil
	}
	svc := NewNotificationService(queue, sender, 1, discardLogger())
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop(context.Background())

	require.NoError(t, svc.Dispatch(context.Background(), Notification{ID: "fail"}))
	require.NoError(t, svc.Dispatch(context.Background(), Notification{ID: "ok"}))
	assert.Equal(t, "ok", waitForNotification(t, sender.Sent).ID)
}

func TestNotificationService_StartFailsWhenConsumerCannotStart(t *testing.T) {
	svc := NewNotificationService(&MockQueueAdapter{}, NewLogSender(discardLogger()), 2, discardLogger())
	err := svc.Start(context.Background())
	assert.Error(t, err)
	assert.ErrorIs(t, svc.Dispatch(context.Background(), Notification{}), ErrNotificationServiceStopped)
}

func TestNotificationService_ContextCancelStops(t *testing.T) {
	queue := adapters.NewInMemoryQueueAdapter(discardLogger())
	defer queue.Close(context.Background())
	svc := NewNotificationService(queue, NewMockNotificationSender(100), 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool {
		return errors.Is(svc.Dispatch(context.Background(), Notification{}), ErrNotificationServiceStopped)
	}, 2*time.Second, 10*time.Millisecond)
}
