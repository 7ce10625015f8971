package ipapi

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// rateWindow tracks the rate-limit state of one endpoint class: the live
// X-Rl / X-Ttl pair from the most recent response, plus a local token bucket
// sized to the documented per-minute quota so a keyless burst cannot drain
// the whole window in one go. The json and batch classes are tracked
// independently, each with its own window.
type rateWindow struct {
	mu        sync.Mutex
	remaining int
	reset     time.Duration

	limiter *rate.Limiter
}

// newRateWindow starts a window at the documented quota, the state a fresh
// client would observe from the service.
func newRateWindow(perMinute int) *rateWindow {
	return &rateWindow{
		remaining: perMinute,
		limiter:   rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}

// wait suspends until the next request may be issued. Keyed clients never
// wait: the paid tier publishes no quota. When the server reported an empty
// window, the caller sleeps out the reported reset plus a safety hold before
// taking a token.
func (w *rateWindow) wait(ctx context.Context, keyed bool, hold time.Duration, log logrus.FieldLogger) error {
	if keyed {
		return nil
	}

	w.mu.Lock()
	remaining, reset := w.remaining, w.reset
	w.mu.Unlock()

	if remaining == 0 {
		log.WithField("reset", reset+hold).Warn("rate limit reached, waiting for window reset")
		if err := sleepContext(ctx, reset+hold); err != nil {
			return err
		}
	}

	return w.limiter.Wait(ctx)
}

// update overwrites the tracked pair when the response carries both headers.
// Responses without them, such as auth failures, leave the last observation
// in place.
func (w *rateWindow) update(h http.Header) {
	remaining, err := strconv.Atoi(h.Get(headerRemaining))
	if err != nil || remaining < 0 {
		return
	}
	reset, err := strconv.Atoi(h.Get(headerReset))
	if err != nil || reset < 0 {
		return
	}

	w.mu.Lock()
	w.remaining = remaining
	w.reset = time.Duration(reset) * time.Second
	w.mu.Unlock()
}

// state returns the tracked pair for inspection.
func (w *rateWindow) state() (remaining int, reset time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.remaining, w.reset
}

// sleepContext sleeps for d unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
