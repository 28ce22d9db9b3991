package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment output as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>/ and returns a writer
// rooted there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory the writer stores files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteAgentConfigs stores the agent configuration table.
func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "kind", "trials", "depth", "seed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Trials),
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}
	return nil
}

// WriteGameRecords stores one row per completed game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "winner", "turns", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Turns),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}
