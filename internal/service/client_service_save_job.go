package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

type clientSaveJob struct {
	save  func(ctx context.Context) error
	delay time.Duration
	clock utils.Clock

	mu      sync.Mutex
	timer   utils.Timer
	gen     uint64
	stopped bool
	// running is closed when the save started by fire returns.
	running chan struct{}

	logger *logger.Logger
}

// NewClientSaveJob creates a debouncer calling save after delay of quiet.
// A non-positive delay falls back to [config.DefaultSaveDebounce]. A nil
// clock means the wall clock.
func NewClientSaveJob(save func(ctx context.Context) error, delay time.Duration, clock utils.Clock, logger *logger.Logger) ClientSaveJob {
	if delay <= 0 {
		delay = config.DefaultSaveDebounce
	}
	if clock == nil {
		clock = utils.RealClock{}
	}

	return &clientSaveJob{
		save:   save,
		delay:  delay,
		clock:  clock,
		logger: logger,
	}
}

func (j *clientSaveJob) Notify() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.stopped {
		return
	}

	if j.timer != nil {
		j.timer.Stop()
	}

	j.gen++
	gen := j.gen
	j.timer = j.clock.AfterFunc(j.delay, func() { j.fire(gen) })
}

// fire runs the save unless the timer was superseded after the callback
// had already been scheduled.
func (j *clientSaveJob) fire(gen uint64) {
	j.mu.Lock()
	if j.timer == nil || j.gen != gen {
		j.mu.Unlock()
		return
	}
	j.timer = nil
	done := make(chan struct{})
	j.running = done
	j.mu.Unlock()

	defer func() {
		j.mu.Lock()
		if j.running == done {
			j.running = nil
		}
		j.mu.Unlock()
		close(done)
	}()

	if err := j.save(context.Background()); err != nil {
		j.logger.Err(err).Str("func", "clientSaveJob.fire").Msg("debounced save failed")
	}
}

// Flush waits for a debounced save that is already running, then saves at
// once if a timer was still armed.
func (j *clientSaveJob) Flush(ctx context.Context) error {
	j.mu.Lock()
	pending := j.timer != nil
	if pending {
		j.timer.Stop()
		j.timer = nil
		j.gen++
	}
	running := j.running
	j.mu.Unlock()

	if running != nil {
		select {
		case <-running:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if !pending {
		return nil
	}

	j.logger.Debug().Str("func", "clientSaveJob.Flush").Msg("flushing pending save")
	return j.save(ctx)
}

func (j *clientSaveJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopped = true
	if j.timer != nil {
		j.timer.Stop()
		j.timer = nil
		j.gen++
	}
}
