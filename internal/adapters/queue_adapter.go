package adapters

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrQueueClosed is returned by Publish and StartConsuming after Close.
var ErrQueueClosed = errors.New("queue adapter closed")

// JobHandler processes one message taken off a queue.
type JobHandler func(ctx context.Context, data []byte) error

// QueueAdapter is the contract for the job queues the services publish
// notifications to.
type QueueAdapter interface {
	// Publish enqueues jobData on queueName, creating the queue on first use.
	Publish(ctx context.Context, queueName string, jobData []byte) error
	// StartConsuming runs handler for every message of queueName in a
	// background goroutine. It returns immediately.
	StartConsuming(ctx context.Context, queueName string, handler JobHandler) error
	// StopConsuming stops the consumer of queueName. Queued messages stay put.
	StopConsuming(ctx context.Context, queueName string) error
	// Close stops every consumer and waits for in-flight handlers.
	Close(ctx context.Context) error
}

const (
	defaultQueueBuffer    = 100
	defaultPublishTimeout = 2 * time.Second
)

// InMemoryQueueAdapter is a QueueAdapter backed by buffered channels.
type InMemoryQueueAdapter struct {
	queues         map[string]chan []byte
	stopChan       map[string]chan struct{}
	mu             sync.Mutex
	logger         *log.Logger
	wg             sync.WaitGroup
	consumerCtx    context.Context
	cancelFunc     context.CancelFunc
	closed         bool
	publishTimeout time.Duration
}

func NewInMemoryQueueAdapter(logger *log.Logger) QueueAdapter {
	consumerCtx, cancelFunc := context.WithCancel(context.Background())
	return &InMemoryQueueAdapter{
		queues:         make(map[string]chan []byte),
		stopChan:       make(map[string]chan struct{}),
		logger:         logger,
		consumerCtx:    consumerCtx,
		cancelFunc:     cancelFunc,
		publishTimeout: defaultPublishTimeout,
	}
}

func (q *InMemoryQueueAdapter) getOrCreateQueue(queueName string) (chan []byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, ErrQueueClosed
	}
	queue, ok := q.queues[queueName]
	if !ok {
		queue = make(chan []byte, defaultQueueBuffer)
		q.queues[queueName] = queue
		q.logger.Printf("In-memory queue '%s' created", queueName)
	}
	return queue, nil
}

func (q *InMemoryQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	queue, err := q.getOrCreateQueue(queueName)
	if err != nil {
		return err
	}
	timer := time.NewTimer(q.publishTimeout)
	defer timer.Stop()

	select {
	case queue <- jobData:
		q.logger.Printf("Message published to queue '%s' (depth %d)", queueName, len(queue))
		return nil
	case <-ctx.Done():
		q.logger.Printf("Context cancelled while publishing to queue '%s': %v", queueName, ctx.Err())
		return ctx.Err()
	case <-timer.C:
		q.logger.Printf("Timed out publishing to queue '%s', queue is full", queueName)
		return fmt.Errorf("timeout publishing to queue %s", queueName)
	}
}

// StartConsuming starts one consumer goroutine for queueName. Handler errors
// are logged and the message is dropped.
func (q *InMemoryQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler JobHandler) error {
	queue, err := q.getOrCreateQueue(queueName)
	if err != nil {
		return err
	}

	q.mu.Lock()
	if _, running := q.stopChan[queueName]; running {
		q.mu.Unlock()
		return fmt.Errorf("queue %s already has a consumer", queueName)
	}
	stop := make(chan struct{})
	q.stopChan[queueName] = stop
	q.wg.Add(1)
	q.mu.Unlock()

	go func() {
		defer q.wg.Done()
		q.logger.Printf("Consumer for queue '%s' started", queueName)
		for {
			select {
			case data := <-queue:
				if err := handler(q.consumerCtx, data); err != nil {
					q.logger.Printf("Error handling message from queue '%s': %v", queueName, err)
				}
			case <-stop:
				q.logger.Printf("Consumer for queue '%s' stopped", queueName)
				return
			case <-ctx.Done():
				q.logger.Printf("Consumer for queue '%s' stopping: %v", queueName, ctx.Err())
				return
			case <-q.consumerCtx.Done():
				q.logger.Printf("Queue adapter closed, consumer for '%s' exiting", queueName)
				return
			}
		}
	}()
	return nil
}

func (q *InMemoryQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if stop, ok := q.stopChan[queueName]; ok {
		close(stop)
		delete(q.stopChan, queueName)
		q.logger.Printf("Stopping consumer for queue '%s'", queueName)
	}
	return nil
}

func (q *InMemoryQueueAdapter) Close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	q.cancelFunc()
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.logger.Println("All queue consumers stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
