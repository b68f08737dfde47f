package discord

import (
	"errors"
	"log/slog"
	"time"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

// defaultRetryAfter is used when Discord responds 429 without a usable
// retry_after value.
const defaultRetryAfter = 5 * time.Second

// rateLimitWaiter applies the rate-limit wait protocol to a remote call:
// wait out the server-suggested duration, then reissue the identical call.
// There is no retry cap and no additional backoff; the server's stated
// duration is trusted on every occurrence. A misbehaving server can
// therefore stall the caller indefinitely.
type rateLimitWaiter struct {
	fallback time.Duration
	sleep    func(time.Duration)

	// Diagnostics, written on every occurrence and never read back.
	hits      int
	lastWait  time.Duration
	lastHitAt time.Time
}

func newRateLimitWaiter(fallback time.Duration) *rateLimitWaiter {
	if fallback <= 0 {
		fallback = defaultRetryAfter
	}
	return &rateLimitWaiter{
		fallback: fallback,
		sleep:    time.Sleep,
	}
}

// do runs call, retrying for as long as Discord keeps answering with a rate
// limit. Any other outcome, success or failure, is returned as is.
func (w *rateLimitWaiter) do(op string, call func() error) error {
	for {
		err := call()
		if err == nil {
			metrics.APIRequests.WithLabelValues(op, "success").Inc()
			return nil
		}

		var rl *discordgo.RateLimitError
		if !errors.As(err, &rl) {
			metrics.APIRequests.WithLabelValues(op, "error").Inc()
			return err
		}

		wait := rl.RetryAfter
		if wait <= 0 {
			wait = w.fallback
		}

		w.hits++
		w.lastWait = wait
		w.lastHitAt = time.Now()

		metrics.APIRequests.WithLabelValues(op, "rate_limited").Inc()
		metrics.RateLimitHits.WithLabelValues(op).Inc()
		metrics.RateLimitWaitSeconds.Add(wait.Seconds())

		slog.Warn("Rate limited by Discord", "operation", op, "retry_after", wait, "occurrences", w.hits)
		w.sleep(wait)
	}
}
