// Package extract normalizes raw connector metric files, whatever their
// shape, into a uniform sequence of operation samples plus any document-level
// signals the aggregator needs.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gyeh/connstats/internal/connector"
	"github.com/gyeh/connstats/internal/model"
)

// FileData is the normalized content of one input file.
type FileData struct {
	Path      string
	ModelName string
	Samples   []model.OperationSample

	// Failure is set when the source document reported its own failure;
	// Samples are empty in that case.
	Failure *model.FailureSignal

	// DocPhase is the document-declared phase for tree-shaped sources.
	// Tabular sources leave it PhaseNone and resolve phase from timing rows.
	DocPhase model.Phase

	// Skip marks a file the connector deliberately ignores (unrecognized
	// document operation type, or no metric entries at all). Not an error.
	Skip bool

	// Counts carries authoritative element counts from tree documents.
	Counts *model.ElementCounts
}

// Extract reads one file and normalizes it for the given connector profile.
// Extraction failures never escape past the batch boundary: callers treat a
// returned error as that file's terminal state and continue.
func Extract(path string, p *connector.Profile) (*FileData, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case p.Tree && ext == ".json":
		return extractTree(path)
	case !p.Tree && ext == ".csv":
		return extractCSV(path)
	case !p.Tree && ext == ".parquet":
		return extractParquet(path)
	}
	return nil, fmt.Errorf("unsupported file type %q for connector %s", ext, p.Name)
}
