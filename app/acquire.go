package app

import (
	"context"
	"time"

	"github.com/theoremus-urban-solutions/departure-display/board"
	"github.com/theoremus-urban-solutions/departure-display/monitor"
)

// acquireOnce runs one fetch/parse/assign pass and installs the result.
// It reports success; on failure the previous buckets stay untouched and
// no render state is reset.
func (a *App) acquireOnce() bool {
	s := a.settings

	main := monitor.Parse(a.cache.Fetch(s.StopID, false))
	var alt []*monitor.DepartureGroup
	if s.UsesAltStop() {
		alt = monitor.Parse(a.cache.Fetch(s.Line3StopID, false))
	}
	if len(main) == 0 && len(alt) == 0 {
		return false
	}

	buckets := board.Assign(main, alt, s)

	a.mu.Lock()
	a.buckets = buckets
	a.version++
	a.haveData = true
	a.mu.Unlock()
	return true
}

// nextDelay computes the sleep before the next acquisition attempt.
// Successful cycles keep the planned interval net of time already spent;
// failures walk the retry schedule until it is exhausted, after which the
// normal interval resumes regardless.
func nextDelay(ok bool, attempt int, elapsed time.Duration) time.Duration {
	if !ok && attempt < len(retrySchedule) {
		return retrySchedule[attempt]
	}
	d := fetchInterval - elapsed
	if d < 0 {
		d = 0
	}
	return d
}

func (a *App) acquireLoop(ctx context.Context) {
	attempt := 0
	for {
		start := time.Now()
		ok := a.acquireOnce()
		delay := nextDelay(ok, attempt, time.Since(start))
		if ok {
			if attempt > 0 {
				a.log.Info().Int("attempts", attempt).Msg("Acquisition recovered")
			}
			attempt = 0
		} else {
			if attempt < len(retrySchedule) {
				attempt++
			}
			a.log.Warn().Dur("retryIn", delay).Msg("Acquisition failed, keeping previous departures")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
