package model

import "time"

// TableKind distinguishes the output tables a batch can produce. Single-phase
// connectors emit one "single" table; dual-tracking and document connectors
// emit separate "create" and "read" tables.
type TableKind string

const (
	TableSingle TableKind = "single"
	TableCreate TableKind = "create"
	TableRead   TableKind = "read"
)

// SummaryTable is one output table: a fixed category column order plus the
// accumulated rows, in file-processing order.
type SummaryTable struct {
	Kind    TableKind
	Columns []string
	Rows    []*ModelSummary
}

// Append adds a row to the table.
func (t *SummaryTable) Append(row *ModelSummary) {
	t.Rows = append(t.Rows, row)
}

// HasErrors reports whether any row in the table is an error row.
func (t *SummaryTable) HasErrors() bool {
	for _, r := range t.Rows {
		if r.IsError() {
			return true
		}
	}
	return false
}

// BatchSummary captures metrics from a single batch run.
type BatchSummary struct {
	RunID          string
	FilesSeen      int
	FilesMatched   int
	FilesProcessed int
	FilesSkipped   int
	FilesFailed    int
	RowsEmitted    int
	DurationTotal  time.Duration
}
