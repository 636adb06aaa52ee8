package bgjobs

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lootkit/internal/log"
)

// Register is a registry of all background jobs.
// Has a wait group to wait for all jobs to finish.
type Register struct {
	all     sync.WaitGroup
	running atomic.Int64
}

func NewRegister() *Register {
	return &Register{}
}

// Go a new background task.
func (r *Register) Go(f func()) {
	r.all.Add(1)
	r.running.Add(1)

	go func() {
		defer r.all.Done()
		defer r.running.Add(-1)
		f()
	}()
}

// Running returns the number of unfinished jobs.
func (r *Register) Running() int64 {
	return r.running.Load()
}

// WaitAll blocks until all jobs finish or ctx is done.
func (r *Register) WaitAll(ctx context.Context) error {
	log.Info(ctx, "waiting for all background jobs to finish", zap.Int64("running", r.Running()))

	done := make(chan struct{})
	go func() {
		r.all.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
