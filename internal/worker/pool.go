package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/usecase/checkout"
)

// Watcher drives a pending external payment until it settles or the poll
// budget runs out.
type Watcher interface {
	Watch(ctx context.Context, txID uuid.UUID) (*checkout.View, error)
}

// Pool runs confirmation watches in the background. A transaction is watched
// by at most one worker at a time.
type Pool struct {
	jobs    chan uuid.UUID
	watcher Watcher
	logger  *slog.Logger
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
	closed   bool
}

func NewPool(bufferSize int, watcher Watcher, logger *slog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		jobs:     make(chan uuid.UUID, bufferSize),
		watcher:  watcher,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		inflight: make(map[uuid.UUID]struct{}),
	}
}

func (p *Pool) Start(workerCount int) {
	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for txID := range p.jobs {
		view, err := p.watcher.Watch(p.ctx, txID)
		switch {
		case err != nil:
			p.logger.Error("confirmation watch failed", "transaction_id", txID, "error", err)
		case view.Status.IsTerminal():
			p.logger.Info("confirmation watch settled", "transaction_id", txID, "status", view.Status)
		default:
			p.logger.Info("confirmation watch gave up, left for expiry sweep", "transaction_id", txID)
		}

		p.mu.Lock()
		delete(p.inflight, txID)
		p.mu.Unlock()
	}
}

// Submit queues a watch. It returns false when the queue is full or the pool
// is shut down; a transaction already queued or running counts as accepted.
func (p *Pool) Submit(txID uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	if _, ok := p.inflight[txID]; ok {
		return true
	}
	select {
	case p.jobs <- txID:
		p.inflight[txID] = struct{}{}
		return true
	default:
		return false
	}
}

// Shutdown stops accepting jobs, cancels running watches and waits for the
// workers to exit.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
}
