// Package export writes summary tables out as CSV. It is the thin I/O shell
// around the engine; nothing here feeds back into aggregation.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gyeh/connstats/internal/batch"
	"github.com/gyeh/connstats/internal/model"
)

// Fixed trailing columns after the per-category columns.
var numericColumns = []string{"total_elements", "milliseconds", "minutes", "element_per_min"}

// Columns returns the header row for a table: model name, one column per
// category, the numeric columns, and the error columns when any row needs them.
func Columns(t *model.SummaryTable) []string {
	cols := append([]string{"Data/Model"}, t.Columns...)
	cols = append(cols, numericColumns...)
	if t.HasErrors() {
		cols = append(cols, "Status", "Error_Details")
	}
	return cols
}

// WriteCSV writes one summary table with its header to w.
func WriteCSV(w io.Writer, t *model.SummaryTable) error {
	cw := csv.NewWriter(w)
	withErrors := t.HasErrors()

	if err := cw.Write(Columns(t)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		rec := make([]string, 0, len(t.Columns)+7)
		rec = append(rec, row.ModelName)
		for _, c := range t.Columns {
			rec = append(rec, strconv.FormatInt(row.Categories[c], 10))
		}
		rec = append(rec,
			strconv.FormatInt(row.TotalElements, 10),
			strconv.FormatInt(row.ElapsedMillis, 10),
			strconv.FormatFloat(row.ElapsedMinutes, 'f', 2, 64),
			strconv.FormatFloat(row.ElementsPerMinute, 'f', 2, 64),
		)
		if withErrors {
			rec = append(rec, row.Status, row.ErrorDetails)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTables writes every table of a batch result into dir as
// operation_summary_<kind>.csv and returns the paths written.
func WriteTables(dir string, res *batch.Result) ([]string, error) {
	var written []string
	for _, kind := range []model.TableKind{model.TableSingle, model.TableCreate, model.TableRead} {
		t, ok := res.Tables[kind]
		if !ok || len(t.Rows) == 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("operation_summary_%s.csv", kind))
		f, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("create %s: %w", path, err)
		}
		if err := WriteCSV(f, t); err != nil {
			f.Close()
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
