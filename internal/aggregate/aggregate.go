// Package aggregate turns the normalized samples of one file into summary
// rows: phase resolution, category accumulation, totals, and derived rates.
package aggregate

import (
	"strings"

	"github.com/gyeh/connstats/internal/connector"
	"github.com/gyeh/connstats/internal/extract"
	"github.com/gyeh/connstats/internal/model"
	"github.com/gyeh/connstats/internal/normalize"
)

// maxErrorDetails caps how many upstream error messages one row carries.
const maxErrorDetails = 3

// File aggregates one extracted file into zero or more summary rows.
// Deliberately skipped files yield nothing; upstream failures yield a single
// error row; dual-tracking connectors may yield a row per phase.
func File(data *extract.FileData, p *connector.Profile) []*model.ModelSummary {
	if data == nil || data.Skip {
		return nil
	}
	if data.Failure != nil {
		row := model.NewErrorRow(data.ModelName, ErrorDetails(data.Failure), p.Columns(model.PhaseCreate))
		return []*model.ModelSummary{row}
	}

	if p.SplitPhases {
		var rows []*model.ModelSummary
		for _, phase := range []model.Phase{model.PhaseCreate, model.PhaseRead} {
			row := phaseRow(data, p, phase)
			if row.CategorySum() == 0 {
				continue
			}
			applyTiming(row, data, p, phase)
			rows = append(rows, row)
		}
		return rows
	}

	phase := data.DocPhase
	if !p.Tree {
		phase = resolvePhase(data, p)
	}

	row := phaseRow(data, p, phase)
	applyCounts(row, data, p)
	if phase != model.PhaseNone {
		applyTiming(row, data, p, phase)
	}
	return []*model.ModelSummary{row}
}

// ErrorDetails flattens a failure signal into the row's detail column:
// the first messages, joined, so one bad run cannot flood the table.
func ErrorDetails(f *model.FailureSignal) string {
	msgs := f.Messages
	if len(msgs) > maxErrorDetails {
		msgs = msgs[:maxErrorDetails]
	}
	return strings.Join(msgs, "; ")
}

// resolvePhase decides a tabular file's phase from its timing rows. A create
// timing row always wins over a read timing row.
func resolvePhase(data *extract.FileData, p *connector.Profile) model.Phase {
	hasCreate, hasRead := false, false
	for _, s := range data.Samples {
		if p.MatchesTimeOp(s.OperationID, model.PhaseCreate) {
			hasCreate = true
		}
		if p.MatchesTimeOp(s.OperationID, model.PhaseRead) {
			hasRead = true
		}
	}
	switch {
	case hasCreate:
		return model.PhaseCreate
	case hasRead:
		return model.PhaseRead
	}
	return model.PhaseNone
}

// phaseRow classifies every sample against the phase's table and accumulates
// event counts. Samples matching no pattern are ignored.
func phaseRow(data *extract.FileData, p *connector.Profile, phase model.Phase) *model.ModelSummary {
	row := model.NewSummary(data.ModelName, phase, p.Columns(phase))
	table := p.Table(phase)
	for _, s := range data.Samples {
		if cat, ok := table.Classify(s.OperationID); ok {
			row.Categories[cat] += s.Events
		}
	}
	row.TotalElements = row.CategorySum()
	return row
}

// applyCounts overrides sample-derived category counts with the document's
// authoritative figures where present. The pre-computed grand total replaces
// the local sum only when strictly greater; authoritative figures can be
// partial, and a smaller total must not shrink what the samples accounted for.
func applyCounts(row *model.ModelSummary, data *extract.FileData, p *connector.Profile) {
	if data.Counts == nil || len(p.CountKinds) == 0 {
		return
	}
	for kind, cat := range p.CountKinds {
		if v, ok := data.Counts.ByKind[kind]; ok {
			row.Categories[cat] = v
		}
	}
	row.TotalElements = row.CategorySum()
	if data.Counts.Total > row.TotalElements {
		row.TotalElements = data.Counts.Total
	}
}

// applyTiming sums elapsed time from the phase's canonical timing records and
// derives the minute and rate fields.
func applyTiming(row *model.ModelSummary, data *extract.FileData, p *connector.Profile, phase model.Phase) {
	for _, s := range data.Samples {
		if p.MatchesTimeOp(s.OperationID, phase) {
			row.ElapsedMillis += s.ElapsedMillis
		}
	}
	row.ElapsedMinutes = normalize.MillisToMinutes(row.ElapsedMillis)
	row.ElementsPerMinute = normalize.ElementsPerMinute(row.TotalElements, row.ElapsedMinutes)
}
