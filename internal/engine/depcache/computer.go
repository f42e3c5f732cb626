package depcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// errStopped is the cancellation cause set by Shutdown.
var errStopped = errors.New("agent is stopping")

// Computer runs checksum computations off the caller's goroutine.
// At most poolSize computations run at a time.
type Computer struct {
	builder *ChecksumBuilder
	sem     *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewComputer creates a Computer with poolSize worker slots.
func NewComputer(builder *ChecksumBuilder, poolSize int) *Computer {
	if poolSize < 1 {
		poolSize = domain.DefaultThreadPoolSize
	}
	ctx, cancel := context.WithCancelCause(context.Background())
	return &Computer{
		builder: builder,
		sem:     semaphore.NewWeighted(int64(poolSize)),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start schedules the checksum computation for workDir and returns immediately.
func (c *Computer) Start(workDir string, depthLimit int, warn ports.WarnFunc) *Pending {
	p := &Pending{
		done:    make(chan struct{}),
		stopped: c.ctx.Done(),
	}

	go func() {
		defer close(p.done)

		if err := c.sem.Acquire(c.ctx, 1); err != nil {
			p.err = domain.ErrComputerStopped
			return
		}
		defer c.sem.Release(1)

		p.checksum, p.err = c.compute(workDir, depthLimit, warn)
	}()

	return p
}

func (c *Computer) compute(workDir string, depthLimit int, warn ports.WarnFunc) (checksum string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(domain.ErrChecksumComputationFailed, "panic", fmt.Sprint(r))
		}
	}()

	if c.ctx.Err() != nil {
		return "", domain.ErrComputerStopped
	}
	return c.builder.Build(workDir, depthLimit, warn)
}

// Shutdown cancels the worker scope. Queued and running computations are abandoned
// and their Pending handles report ErrComputerStopped.
func (c *Computer) Shutdown() {
	c.cancel(errStopped)
}

// Pending is the handle of an in-flight checksum computation.
type Pending struct {
	done    chan struct{}
	stopped <-chan struct{}

	checksum string
	err      error
}

// Await waits at most timeout for the checksum.
// It never blocks longer than timeout, even when ctx has no deadline.
func (p *Pending) Await(ctx context.Context, timeout time.Duration) (string, error) {
	select {
	case <-p.done:
		return p.checksum, p.err
	default:
	}

	timer := time.NewTimer(max(timeout, 0))
	defer timer.Stop()

	select {
	case <-p.done:
		return p.checksum, p.err
	case <-p.stopped:
		return "", domain.ErrComputerStopped
	case <-timer.C:
		return "", zerr.With(domain.ErrChecksumAwaitTimeout, "timeout", timeout.String())
	case <-ctx.Done():
		return "", zerr.Wrap(ctx.Err(), domain.ErrChecksumAwaitTimeout.Error())
	}
}
