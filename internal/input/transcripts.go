// internal/input/transcripts.go
package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"protdom/internal/config"
)

// Load reads the transcript ID list named by the configuration. Version
// suffixes (ENST….5) are stripped so downstream lookups get bare IDs.
func Load(cfg config.Config) ([]string, error) {
	switch strings.ToLower(filepath.Ext(cfg.Transcript.File)) {
	case ".txt":
		return loadText(cfg.Transcript.File)
	case ".csv":
		return loadCSV(cfg.Transcript.File, cfg.Transcript.CSVColumn, rune(cfg.Transcript.CSVSep[0]))
	default:
		return nil, fmt.Errorf("input: transcript file %s not supported", cfg.Transcript.File)
	}
}

// loadText keeps lines that carry an Ensembl transcript ID, one per line.
func loadText(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer func() { _ = f.Close() }()

	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.Contains(line, "ENST") {
			ids = append(ids, stripVersion(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}
	return ids, nil
}

// loadCSV pulls the named column, de-duplicating while preserving first
// occurrence order.
func loadCSV(path, column string, sep rune) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = sep
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("input: parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input: %s is empty", path)
	}

	col := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("input: column %q not found in %s", column, path)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		id := stripVersion(strings.TrimSpace(row[col]))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func stripVersion(id string) string {
	base, _, _ := strings.Cut(id, ".")
	return base
}
