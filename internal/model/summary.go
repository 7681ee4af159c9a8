package model

// Phase tells whether a file represents a create/export run or a read/load run.
type Phase string

const (
	PhaseCreate Phase = "create"
	PhaseRead   Phase = "read"
	// PhaseNone marks a file that carried neither timing signal. The row is
	// still emitted, with zero timing fields.
	PhaseNone Phase = "none"
)

// StatusError marks a row produced from an upstream failure signal.
const StatusError = "ERROR"

// ModelSummary is one output row for a (model, phase) pair. Error rows share
// the type: Status is set to StatusError and all numeric fields stay zero.
type ModelSummary struct {
	ModelName         string
	Phase             Phase
	Categories        map[string]int64
	TotalElements     int64
	ElapsedMillis     int64
	ElapsedMinutes    float64
	ElementsPerMinute float64
	Status            string
	ErrorDetails      string
}

// NewSummary returns a zeroed row with every column pre-populated, so that
// models with no matching operations still report explicit zeros.
func NewSummary(modelName string, phase Phase, columns []string) *ModelSummary {
	cats := make(map[string]int64, len(columns))
	for _, c := range columns {
		cats[c] = 0
	}
	return &ModelSummary{
		ModelName:  modelName,
		Phase:      phase,
		Categories: cats,
	}
}

// NewErrorRow builds the row for a file whose source document reported its
// own failure. Numeric fields are intentionally left zero.
func NewErrorRow(modelName, details string, columns []string) *ModelSummary {
	s := NewSummary(modelName, PhaseCreate, columns)
	s.Status = StatusError
	s.ErrorDetails = details
	return s
}

// IsError reports whether the row represents an upstream failure rather than
// a computed summary.
func (s *ModelSummary) IsError() bool {
	return s.Status == StatusError
}

// CategorySum returns the sum of all category fields.
func (s *ModelSummary) CategorySum() int64 {
	var n int64
	for _, v := range s.Categories {
		n += v
	}
	return n
}
