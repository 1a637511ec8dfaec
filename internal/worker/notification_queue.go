package worker

import (
	"context"
	"sync"
	"time"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/service"
	"github.com/elegance/restaurant-backend/pkg/logger"
)

const dispatchTimeout = 30 * time.Second

// Dispatcher sends the reservation emails
type Dispatcher interface {
	DispatchReservation(ctx context.Context, notice service.ReservationNotice) service.DispatchResult
}

// NotificationQueue sends reservation emails off the request path
type NotificationQueue struct {
	dispatcher Dispatcher
	jobs       chan service.ReservationNotice
	workers    int

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	started bool
}

func NewNotificationQueue(dispatcher Dispatcher, workers, size int) *NotificationQueue {
	if workers < 1 {
		workers = 1
	}
	if size < 1 {
		size = 1
	}
	return &NotificationQueue{
		dispatcher: dispatcher,
		jobs:       make(chan service.ReservationNotice, size),
		workers:    workers,
	}
}

// Start launches the workers. They exit once Stop has drained the queue.
func (q *NotificationQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.run(i)
	}
	logger.Info("Notification queue started", map[string]interface{}{
		"workers":  q.workers,
		"capacity": cap(q.jobs),
	})
}

func (q *NotificationQueue) run(worker int) {
	defer q.wg.Done()
	for notice := range q.jobs {
		q.dispatch(worker, notice)
	}
}

func (q *NotificationQueue) dispatch(worker int, notice service.ReservationNotice) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Notification worker recovered from panic", map[string]interface{}{
				"worker":         worker,
				"reservation_id": notice.ID,
				"panic":          r,
			})
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	result := q.dispatcher.DispatchReservation(ctx, notice)
	logger.Debug("Reservation notification processed", map[string]interface{}{
		"worker":         worker,
		"reservation_id": notice.ID,
		"outcome":        result.Outcome,
	})
}

// NotifyReservation enqueues the reservation's emails without waiting. A full or stopped queue drops the job.
func (q *NotificationQueue) NotifyReservation(reservation model.Reservation) {
	notice := service.NoticeFromReservation(reservation)

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		logger.Warn("Notification queue stopped, reservation emails dropped", map[string]interface{}{
			"reservation_id": notice.ID,
		})
		return
	}

	select {
	case q.jobs <- notice:
	default:
		logger.Warn("Notification queue full, reservation emails dropped", map[string]interface{}{
			"reservation_id": notice.ID,
		})
	}
}

// Stop closes the queue and waits for queued jobs to finish or ctx to expire
func (q *NotificationQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("Notification queue drained")
		return nil
	case <-ctx.Done():
		logger.Warn("Notification queue stop timed out", map[string]interface{}{
			"pending": len(q.jobs),
		})
		return ctx.Err()
	}
}
