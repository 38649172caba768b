package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeConfig struct{ body string }

func (f fakeConfig) WriteYAML(path string) error {
	return os.WriteFile(path, []byte(f.body), 0644)
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteStats(Stats{}); err != nil {
		t.Errorf("nil WriteStats: %v", err)
	}
	if err := om.WriteConfig(fakeConfig{}); err != nil {
		t.Errorf("nil WriteConfig: %v", err)
	}
	if om.Dir() != "" || om.Close() != nil {
		t.Error("nil manager must be inert")
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(fakeConfig{body: "world: {}\n"}); err != nil {
		t.Fatal(err)
	}
	for tick := uint64(1); tick <= 3; tick++ {
		if err := om.WriteStats(Stats{Tick: tick, Mean: 0.5}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("stats.csv has %d lines, want header + 3 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "tick,mean,std_dev,min,max,live_fraction,step_us") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "3,0.5,") {
		t.Errorf("last row = %q", lines[3])
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}
