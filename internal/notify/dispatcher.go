// Package notify асинхронно передает бэкенду изменения расписания,
// чтобы тот нашел и уведомил затронутые бронирования.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	DefaultQueueSize   = 100
	DefaultCallTimeout = 10 * time.Second
)

// Request запрос detect-affected
type Request struct {
	TenantID string
	Dates    []types.Date
}

// Dispatcher очередь с одним воркером. Dispatch никогда не блокирует:
// при полной очереди запрос отбрасывается.
type Dispatcher struct {
	client  BackendClient
	logger  Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Request
	done   chan struct{}
}

// NewDispatcher создает диспетчер и запускает воркер
func NewDispatcher(client BackendClient, queueSize int, timeout time.Duration, logger Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	d := &Dispatcher{
		client:  client,
		logger:  logger,
		timeout: timeout,
		queue:   make(chan Request, queueSize),
		done:    make(chan struct{}),
	}

	go d.worker()
	return d
}

// Dispatch ставит запрос в очередь. Возвращает false, если очередь полна или закрыта.
func (d *Dispatcher) Dispatch(tenantID string, dates []types.Date) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Dispatch: notifier is closed, dropping tenant=%s dates=%v", tenantID, dates)
		return false
	}

	req := Request{TenantID: tenantID, Dates: append([]types.Date(nil), dates...)}
	select {
	case d.queue <- req:
		return true
	default:
		d.logger.Warn("Dispatch: queue full, dropping tenant=%s dates=%v", tenantID, dates)
		return false
	}
}

// Close прекращает прием запросов и ждет, пока воркер обработает очередь
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for req := range d.queue {
		d.handle(req)
	}
}

func (d *Dispatcher) handle(req Request) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	affected, err := d.client.DetectAffectedBookings(ctx, req.TenantID, req.Dates)
	if err != nil {
		d.logger.Error("DetectAffected: tenant=%s dates=%v failed: %v", req.TenantID, req.Dates, err)
		return
	}
	d.logger.Info("DetectAffected: tenant=%s dates=%v affected=%d", req.TenantID, req.Dates, affected)
}
