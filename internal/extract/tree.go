package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gyeh/connstats/internal/model"
	"github.com/gyeh/connstats/internal/normalize"
)

// Sentinel values in tree-shaped exchange documents.
const (
	statusCompletedWithErrors = "CompletedWithErrors"
	opTypeCreateExchange      = "CreateExchange"
	opTypeLoadExchange        = "LoadExchange"
	countTotalKey             = "TotalElements"

	genericErrorMessage = "Processing completed with errors (no details available)"
)

// treeDocument is the top-level shape of a connector exchange document.
type treeDocument struct {
	Status             string       `json:"Status"`
	Errors             []treeError  `json:"Errors"`
	OperationType      string       `json:"OperationType"`
	PerformanceMetrics []treeMetric `json:"PerformanceMetrics"`
	Context            treeContext  `json:"Context"`
}

type treeError struct {
	Message    string `json:"Message"`
	MethodName string `json:"MethodName"`
}

type treeMetric struct {
	OperationName       string  `json:"OperationName"`
	Events              float64 `json:"Events"`
	ElapsedMilliseconds float64 `json:"ElapsedMilliseconds"`
}

type treeContext struct {
	Exchanges []treeExchange `json:"Exchanges"`
}

type treeExchange struct {
	ExchangeInfo  treeExchangeInfo `json:"ExchangeInfo"`
	ElementCounts map[string]int64 `json:"ElementCounts"`
}

type treeExchangeInfo struct {
	ExchangeName string `json:"ExchangeName"`
}

func extractTree(path string) (*FileData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var doc treeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	data := &FileData{
		Path:      path,
		ModelName: normalize.ModelName(filepath.Base(path), doc.exchangeName()),
		DocPhase:  model.PhaseNone,
	}

	// An upstream failure short-circuits everything else.
	if doc.Status == statusCompletedWithErrors {
		data.Failure = &model.FailureSignal{
			Status:   doc.Status,
			Messages: doc.errorMessages(),
		}
		return data, nil
	}

	if len(doc.PerformanceMetrics) == 0 {
		data.Skip = true
		return data, nil
	}

	// Exact-match gate: values like "LoadLatestExchange" skip the whole file.
	switch doc.OperationType {
	case opTypeCreateExchange:
		data.DocPhase = model.PhaseCreate
	case opTypeLoadExchange:
		data.DocPhase = model.PhaseRead
	default:
		data.Skip = true
		return data, nil
	}

	for _, m := range doc.PerformanceMetrics {
		if m.OperationName == "" {
			continue
		}
		data.Samples = append(data.Samples, model.OperationSample{
			OperationID:   m.OperationName,
			Events:        normalize.ClampCount(m.Events),
			ElapsedMillis: normalize.ClampCount(m.ElapsedMilliseconds),
		})
	}

	data.Counts = doc.elementCounts()
	return data, nil
}

func (d *treeDocument) exchangeName() string {
	for _, ex := range d.Context.Exchanges {
		if ex.ExchangeInfo.ExchangeName != "" {
			return ex.ExchangeInfo.ExchangeName
		}
	}
	return ""
}

func (d *treeDocument) errorMessages() []string {
	var msgs []string
	for _, e := range d.Errors {
		msg := e.Message
		if msg == "" {
			msg = "Unknown error"
		}
		if e.MethodName != "" {
			msg = e.MethodName + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	if len(msgs) == 0 {
		msgs = []string{genericErrorMessage}
	}
	return msgs
}

// elementCounts merges authoritative counts across exchanges. Per-kind counts
// accumulate; the grand total takes the largest value any exchange reports.
func (d *treeDocument) elementCounts() *model.ElementCounts {
	var counts *model.ElementCounts
	for _, ex := range d.Context.Exchanges {
		if len(ex.ElementCounts) == 0 {
			continue
		}
		if counts == nil {
			counts = &model.ElementCounts{ByKind: make(map[string]int64)}
		}
		for kind, n := range ex.ElementCounts {
			if kind == countTotalKey {
				if n > counts.Total {
					counts.Total = n
				}
				continue
			}
			counts.ByKind[kind] += n
		}
	}
	return counts
}
