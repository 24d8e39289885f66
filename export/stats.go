package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/wrap"
)

// StatsExporter writes wrap.Stats snapshots to JSON. No ecosystem library
// improves on a one-shot flat struct dump (see DESIGN.md), so this is the
// one deliberate stdlib-only corner of the export package.
type StatsExporter struct{}

// NewStatsExporter returns a StatsExporter; it carries no state.
func NewStatsExporter() *StatsExporter {
	return &StatsExporter{}
}

// WriteJSON marshals stats as indented JSON to path.
func (s *StatsExporter) WriteJSON(path string, stats wrap.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
