package otp

import (
	"time"

	"github.com/loginapp/authserver/internal/logger"
)

// Sweeper periodically reclaims expired challenges from a [Store]. Without
// it, a steady stream of logins that never complete verification grows the
// store without bound. The sweep changes nothing observable in the
// verification flow: a verify racing the sweep sees the same not-found
// result as one arriving after an explicit purge.
type Sweeper struct {
	store    Store
	interval time.Duration
	logger   *logger.Logger
	done     chan struct{}
}

// NewSweeper constructs a Sweeper that runs every interval.
func NewSweeper(store Store, interval time.Duration, logger *logger.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately,
// satisfying the workers.Worker contract.
func (s *Sweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := s.store.DeleteExpired(time.Now()); removed > 0 {
					s.logger.Debug().Int("removed", removed).Msg("swept expired otp challenges")
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Stop terminates the sweep loop. Safe to call once.
func (s *Sweeper) Stop() {
	close(s.done)
}
