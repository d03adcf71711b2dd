package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"medical-appointment-service/internal/adapters"

	"github.com/google/uuid"
)

// ErrNotificationServiceStopped is returned by Dispatch once Stop was called.
var ErrNotificationServiceStopped = errors.New("notification service stopped")

// LogSender "delivers" notifications by logging them.
type LogSender struct {
	logger *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, n Notification) error {
	s.logger.Printf("[%s] to=%s phone=%s: %s", n.Kind, n.Recipient, n.Phone, n.Message)
	return nil
}

// NotificationServiceImpl implements NotificationServiceContract.
type NotificationServiceImpl struct {
	queueAdapter adapters.QueueAdapter
	sender       NotificationSenderContract
	logger       *log.Logger
	jobChan      chan Notification
	numWorkers   int
	wg           sync.WaitGroup
	stopOnce     sync.Once
	done         chan struct{}
}

// NewNotificationService builds the pool. numWorkers below 1 means one worker.
func NewNotificationService(
	queueAdapter adapters.QueueAdapter,
	sender NotificationSenderContract,
	numWorkers int,
	logger *log.Logger,
) NotificationServiceContract {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &NotificationServiceImpl{
		queueAdapter: queueAdapter,
		sender:       sender,
		logger:       logger,
		jobChan:      make(chan Notification, 100),
		numWorkers:   numWorkers,
		done:         make(chan struct{}),
	}
}

func (s *NotificationServiceImpl) worker(id int) {
	defer s.wg.Done()
	for {
		select {
		case n := <-s.jobChan:
			s.deliver(id, n)
		case <-s.done:
			// drain what is already buffered before exiting
			for {
				select {
				case n := <-s.jobChan:
					s.deliver(id, n)
				default:
					return
				}
			}
		}
	}
}

func (s *NotificationServiceImpl) deliver(workerID int, n Notification) {
	if err := s.sender.Send(context.Background(), n); err != nil {
		s.logger.Printf("Notification worker %d failed to deliver %s (%s): %v", workerID, n.ID, n.Kind, err)
		return
	}
	s.logger.Printf("Notification worker %d delivered %s (%s)", workerID, n.ID, n.Kind)
}

// Start launches the workers and subscribes to NotificationQueue. Cancelling
// ctx has the same effect as Stop.
func (s *NotificationServiceImpl) Start(ctx context.Context) error {
	s.wg.Add(s.numWorkers)
	for i := 1; i <= s.numWorkers; i++ {
		go s.worker(i)
	}
	s.logger.Printf("%d notification workers started", s.numWorkers)

	if err := s.queueAdapter.StartConsuming(ctx, NotificationQueue, s.handleNotificationJob); err != nil {
		s.shutdown()
		return fmt.Errorf("start consumer for %s: %w", NotificationQueue, err)
	}

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Println("Notification service context cancelled, shutting down")
			s.shutdown()
		case <-s.done:
		}
	}()
	return nil
}

func (s *NotificationServiceImpl) shutdown() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.logger.Println("All notification workers have finished")
	})
}

// Stop unsubscribes from the queue and waits for the workers to drain.
func (s *NotificationServiceImpl) Stop(ctx context.Context) error {
	if err := s.queueAdapter.StopConsuming(ctx, NotificationQueue); err != nil {
		s.logger.Printf("Error stopping consumer for %s: %v", NotificationQueue, err)
	}
	s.shutdown()
	return nil
}

func (s *NotificationServiceImpl) Dispatch(ctx context.Context, n Notification) error {
	select {
	case <-s.done:
		return ErrNotificationServiceStopped
	default:
	}
	select {
	case s.jobChan <- n:
		return nil
	case <-s.done:
		return ErrNotificationServiceStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *NotificationServiceImpl) handleNotificationJob(ctx context.Context, data []byte) error {
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode notification job: %w", err)
	}
	return s.Dispatch(ctx, n)
}

// publishNotification fills in the id and timestamp and enqueues n. A nil
// queue disables notifications. Failures are only logged.
func publishNotification(ctx context.Context, queue adapters.QueueAdapter, logger *log.Logger, n Notification) {
	if queue == nil {
		return
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		logger.Printf("Error encoding %s notification: %v", n.Kind, err)
		return
	}
	if err := queue.Publish(ctx, NotificationQueue, payload); err != nil {
		logger.Printf("Error publishing %s notification for %s: %v", n.Kind, n.Recipient, err)
	}
}
