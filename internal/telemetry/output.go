package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// YAMLWriter is implemented by configurations that can snapshot themselves.
type YAMLWriter interface {
	WriteYAML(path string) error
}

// OutputManager writes per-generation stats as CSV. A nil manager discards
// everything, so callers need not check whether output is enabled.
type OutputManager struct {
	dir       string
	statsFile *os.File

	statsHeaderWritten bool
}

// NewOutputManager creates dir and opens stats.csv inside it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	return &OutputManager{dir: dir, statsFile: f}, nil
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg YAMLWriter) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a stats record to stats.csv.
func (om *OutputManager) WriteStats(s Stats) error {
	if om == nil {
		return nil
	}

	records := []Stats{s}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.statsFile == nil {
		return nil
	}
	return om.statsFile.Close()
}
