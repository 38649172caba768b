package telemetry

import (
	"log/slog"
	"time"
)

// FPSCounter counts frames and reports the rate once per elapsed second.
type FPSCounter struct {
	logger *slog.Logger
	last   time.Time
	frames int
	rate   float64

	now func() time.Time
}

// NewFPSCounter returns a counter logging to logger. A nil logger disables
// logging but the rate is still tracked.
func NewFPSCounter(logger *slog.Logger) *FPSCounter {
	return &FPSCounter{logger: logger, now: time.Now}
}

// Frame records one frame. It reports true when a new one-second window
// closed on this call.
func (c *FPSCounter) Frame() bool {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	c.frames++

	delta := now.Sub(c.last)
	if delta < time.Second {
		return false
	}
	c.rate = float64(c.frames) / delta.Seconds()
	if c.logger != nil {
		c.logger.Info("frames per second", "frames", c.frames, "fps", c.rate)
	}
	c.last = now
	c.frames = 0
	return true
}

// Rate returns the rate measured over the last completed window.
func (c *FPSCounter) Rate() float64 { return c.rate }
