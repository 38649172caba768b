package telemetry

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFPSCounterWindow(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	clock := time.Unix(100, 0)
	c := NewFPSCounter(logger)
	c.now = func() time.Time { return clock }

	for i := 0; i < 20; i++ {
		if c.Frame() {
			t.Fatalf("window closed early at frame %d", i)
		}
		clock = clock.Add(50 * time.Millisecond)
	}
	if !c.Frame() {
		t.Fatal("expected the window to close after one second")
	}
	if rate := c.Rate(); rate != 21 {
		t.Errorf("rate = %v, want 21 frames over one second", rate)
	}
	if !strings.Contains(buf.String(), "frames per second") {
		t.Errorf("log output missing fps record: %q", buf.String())
	}
}
