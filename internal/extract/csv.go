package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gyeh/connstats/internal/model"
	"github.com/gyeh/connstats/internal/normalize"
)

// Column headers emitted by the tabular connectors.
const (
	colOperationName = "Operation Name"
	colEvents        = "#Events"
	colElapsedMillis = "Operation Time in Milliseconds"
)

func extractCSV(path string) (*FileData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	opIdx, eventsIdx, millisIdx := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case colOperationName:
			opIdx = i
		case colEvents:
			eventsIdx = i
		case colElapsedMillis:
			millisIdx = i
		}
	}
	if opIdx < 0 {
		return nil, fmt.Errorf("missing %q column", colOperationName)
	}

	data := &FileData{
		Path:      path,
		ModelName: normalize.ModelName(filepath.Base(path), ""),
		DocPhase:  model.PhaseNone,
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		opID := strings.TrimSpace(field(rec, opIdx))
		if opID == "" {
			continue
		}
		data.Samples = append(data.Samples, model.OperationSample{
			OperationID:   opID,
			Events:        parseCount(field(rec, eventsIdx)),
			ElapsedMillis: parseCount(field(rec, millisIdx)),
		})
	}

	return data, nil
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

// parseCount parses a numeric cell, trusting the input: blanks and garbage
// count as zero, fractions truncate, negatives clamp to zero.
func parseCount(s string) int64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return normalize.ClampCount(v)
}
