// Package batch orchestrates a run over a set of metric files: per-file
// extraction and aggregation with isolated failure handling, merged into the
// final per-model summary tables.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/connstats/internal/aggregate"
	"github.com/gyeh/connstats/internal/connector"
	"github.com/gyeh/connstats/internal/extract"
	"github.com/gyeh/connstats/internal/model"
)

// FileError wraps an error with the file where it occurred. A failed file is
// final for the run; the batch continues past it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", filepath.Base(e.Path), e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Options carries the optional progress hooks. Both are invoked synchronously
// in file-processing order; leaving them nil changes nothing about results.
type Options struct {
	OnProgress func(string)
	OnStatus   func(string)
}

// Result is the outcome of one batch run. The batch always completes: the
// worst case for any single bad input is a FileError entry or an error row.
type Result struct {
	RunID  uuid.UUID
	Tables map[model.TableKind]*model.SummaryTable
	Errors []*FileError

	Summary model.BatchSummary

	// NoData is the empty-result sentinel: the run completed but produced no
	// rows. Message describes the minimum schema the inputs should carry.
	NoData  bool
	Message string
}

// Run processes the given files with the connector profile, one at a time in
// input order. Files that are not readable regular files with an accepted
// extension are skipped silently. ctx is consulted once per file boundary;
// cancellation returns whatever accumulated so far along with ctx.Err().
func Run(ctx context.Context, log zerolog.Logger, p *connector.Profile, paths []string, opts Options) (*Result, error) {
	start := time.Now()

	res := &Result{
		RunID:  uuid.New(),
		Tables: make(map[model.TableKind]*model.SummaryTable),
	}
	res.Summary.RunID = res.RunID.String()
	res.Summary.FilesSeen = len(paths)

	progress := func(msg string) {
		if opts.OnProgress != nil {
			opts.OnProgress(msg)
		}
	}
	status := func(msg string) {
		if opts.OnStatus != nil {
			opts.OnStatus(msg)
		}
	}

	status("Processing...")

	files := FilterFiles(paths, p)
	res.Summary.FilesMatched = len(files)

	log.Info().
		Str("run_id", res.Summary.RunID).
		Str("connector", p.Name).
		Int("files_seen", len(paths)).
		Int("files_matched", len(files)).
		Msg("starting batch")

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			res.finish(start, p)
			status("Cancelled")
			return res, err
		}

		progress("Processing: " + filepath.Base(file))

		data, err := extract.Extract(file, p)
		if err != nil {
			fe := &FileError{Path: file, Err: err}
			res.Errors = append(res.Errors, fe)
			res.Summary.FilesFailed++
			log.Error().Err(err).Str("file", filepath.Base(file)).Msg("file excluded from summary")
			progress("Error processing " + filepath.Base(file) + ": " + err.Error())
			continue
		}

		rows := aggregate.File(data, p)
		if data.Skip {
			res.Summary.FilesSkipped++
			log.Debug().Str("file", filepath.Base(file)).Msg("file skipped by connector gate")
			continue
		}

		for _, row := range rows {
			res.table(rowKind(row, p), p).Append(row)
			res.Summary.RowsEmitted++
		}
		res.Summary.FilesProcessed++
	}

	res.finish(start, p)

	log.Info().
		Str("run_id", res.Summary.RunID).
		Int("files_processed", res.Summary.FilesProcessed).
		Int("files_failed", res.Summary.FilesFailed).
		Int("rows", res.Summary.RowsEmitted).
		Str("duration", res.Summary.DurationTotal.String()).
		Msg("batch complete")

	if res.NoData {
		status("No relevant data found")
	} else {
		status("Processing complete")
	}
	return res, nil
}

func (r *Result) finish(start time.Time, p *connector.Profile) {
	r.Summary.DurationTotal = time.Since(start)
	if r.Summary.RowsEmitted == 0 {
		r.NoData = true
		r.Message = noDataMessage(p)
	}
}

// table returns (creating on demand) the output table of the given kind, with
// its column order fixed by the profile.
func (r *Result) table(kind model.TableKind, p *connector.Profile) *model.SummaryTable {
	if t, ok := r.Tables[kind]; ok {
		return t
	}
	phase := model.PhaseCreate
	if kind == model.TableRead {
		phase = model.PhaseRead
	}
	t := &model.SummaryTable{Kind: kind, Columns: p.Columns(phase)}
	r.Tables[kind] = t
	return t
}

// rowKind partitions rows into tables. Single-phase connectors use one table;
// dual-phase connectors split by phase, with error rows folded into create so
// they are always surfaced.
func rowKind(row *model.ModelSummary, p *connector.Profile) model.TableKind {
	if !p.SplitPhases && !p.Tree {
		return model.TableSingle
	}
	if !row.IsError() && row.Phase == model.PhaseRead {
		return model.TableRead
	}
	return model.TableCreate
}

func noDataMessage(p *connector.Profile) string {
	if p.Tree {
		return fmt.Sprintf("no usable data for connector %s: expected JSON documents with "+
			"OperationType %q or %q and a PerformanceMetrics array of "+
			"{OperationName, Events, ElapsedMilliseconds} entries", p.Name, "CreateExchange", "LoadExchange")
	}
	return fmt.Sprintf("no usable data for connector %s: expected tabular files with columns "+
		"%q, %q and %q", p.Name, "Operation Name", "#Events", "Operation Time in Milliseconds")
}
