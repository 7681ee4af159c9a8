package model

// OperationSample is one normalized performance record: a raw operation
// identifier with its event count and elapsed time. Produced by the record
// extractor, consumed immediately by the aggregator.
type OperationSample struct {
	OperationID   string
	Events        int64
	ElapsedMillis int64
}

// FailureSignal is a document-level failure reported by the producing tool
// itself (tree-shaped sources only). It is not an engine error; the batch
// surfaces it as an error row in the output table.
type FailureSignal struct {
	Status   string
	Messages []string
}

// ElementCounts carries authoritative per-kind element counts from a
// tree-shaped document's exchange section. Kinds are the producer's own
// vocabulary (e.g. "BRep", "CurveSet"); the connector profile maps them to
// display categories.
type ElementCounts struct {
	ByKind map[string]int64
	Total  int64
}
