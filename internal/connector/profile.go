package connector

import (
	"strings"

	"github.com/gyeh/connstats/internal/model"
)

// CategoryRule maps a substring pattern to a display category.
type CategoryRule struct {
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
}

// CategoryTable is an ordered set of rules. Order is significant: when two
// patterns both occur in an operation id, the earlier rule wins.
type CategoryTable []CategoryRule

// Classify returns the category of the first rule whose pattern is contained
// in the operation id, or ok=false when no rule matches. Pure, O(rules).
func (t CategoryTable) Classify(operationID string) (string, bool) {
	for _, r := range t {
		if strings.Contains(operationID, r.Pattern) {
			return r.Category, true
		}
	}
	return "", false
}

// Categories returns the distinct categories in rule order.
func (t CategoryTable) Categories() []string {
	seen := make(map[string]bool, len(t))
	var out []string
	for _, r := range t {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

// Profile is the static per-connector configuration: category tables for the
// create and read phases, the canonical total-time operation ids, and the
// source shape the connector emits.
type Profile struct {
	Name       string
	Extensions []string

	// Tree marks connectors emitting one nested JSON document per run
	// instead of flat tabular records.
	Tree bool

	// SplitPhases marks connectors whose files track create and read phases
	// independently; each phase gets its own table row.
	SplitPhases bool

	// LooseTimeMatch enables a substring fallback when matching the canonical
	// time operations, for producers that prefix them with a method name.
	LooseTimeMatch bool

	CreateTable CategoryTable
	ReadTable   CategoryTable

	CreateTimeOp string
	ReadTimeOp   string

	CreateColumns []string
	ReadColumns   []string

	// CountKinds maps the producer's authoritative element-count kinds to
	// display categories (tree-shaped documents only).
	CountKinds map[string]string
}

// Table returns the category table governing the given phase. PhaseNone
// falls back to the create table so best-effort classification still runs.
func (p *Profile) Table(phase model.Phase) CategoryTable {
	if phase == model.PhaseRead {
		return p.ReadTable
	}
	return p.CreateTable
}

// Columns returns the display column order for the given phase.
func (p *Profile) Columns(phase model.Phase) []string {
	if phase == model.PhaseRead {
		return p.ReadColumns
	}
	return p.CreateColumns
}

// TimeOp returns the canonical total-time operation id for the given phase.
func (p *Profile) TimeOp(phase model.Phase) string {
	if phase == model.PhaseRead {
		return p.ReadTimeOp
	}
	return p.CreateTimeOp
}

// MatchesTimeOp reports whether an operation id is the canonical total-time
// record for the given phase. Exact match first; with LooseTimeMatch the
// bare suffix after the last ':' also matches as a substring.
func (p *Profile) MatchesTimeOp(operationID string, phase model.Phase) bool {
	op := p.TimeOp(phase)
	if op == "" {
		return false
	}
	if operationID == op {
		return true
	}
	if !p.LooseTimeMatch {
		return false
	}
	suffix := op
	if i := strings.LastIndex(op, ":"); i >= 0 {
		suffix = op[i+1:]
	}
	return strings.Contains(operationID, suffix)
}

// Accepts reports whether the profile consumes files with the given
// extension. Tabular connectors additionally accept Parquet files carrying
// the same logical columns.
func (p *Profile) Accepts(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range p.Extensions {
		if ext == e {
			return true
		}
	}
	return !p.Tree && ext == ".parquet"
}
