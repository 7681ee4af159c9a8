package connector

import (
	"testing"

	"github.com/gyeh/connstats/internal/model"
)

func TestClassify_FirstMatchWins(t *testing.T) {
	table := CategoryTable{
		{Pattern: "Mesh", Category: "A"},
		{Pattern: "CreateMesh", Category: "B"},
	}

	// Both patterns occur in the id; the earlier rule must win.
	cat, ok := table.Classify("CreateMeshGeometry")
	if !ok || cat != "A" {
		t.Errorf("Classify = %q, %v; want A, true", cat, ok)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	table := CategoryTable{{Pattern: "Mesh", Category: "Mesh"}}
	if cat, ok := table.Classify("ExportIFCTeklaAPI"); ok {
		t.Errorf("expected no match, got %q", cat)
	}
}

func TestClassify_SubstringContainment(t *testing.T) {
	tekla, _ := ByName("tekla")
	cases := []struct {
		opID string
		want string
	}{
		{"ExportIFCTeklaAPI", "IFC"},
		{"ExportIFCTeklaAPI:WriteFile", "IFC"},
		{"Prefix:CreateMeshGeometry", "Mesh"},
		{"CreateExchangeElementForPrimitive", "Primitives"},
	}
	for _, c := range cases {
		got, ok := tekla.CreateTable.Classify(c.opID)
		if !ok || got != c.want {
			t.Errorf("Classify(%q) = %q, %v; want %q", c.opID, got, ok, c.want)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if _, ok := ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("revit"); ok {
		t.Error("expected unknown connector to be missing")
	}
}

func TestMatchesTimeOp_Exact(t *testing.T) {
	tekla, _ := ByName("tekla")
	if !tekla.MatchesTimeOp("TotalTimeToCreateExchange", model.PhaseCreate) {
		t.Error("exact create time op should match")
	}
	// Without loose matching, a prefixed id must not match.
	if tekla.MatchesTimeOp("UpdateExchangeAsync:TotalTimeToCreateExchange", model.PhaseCreate) {
		t.Error("prefixed id should not match without loose matching")
	}
}

func TestMatchesTimeOp_Loose(t *testing.T) {
	nav, _ := ByName("navisworks")
	cases := []string{
		"UpdateExchangeAsync:TotalTimeToCreateExchange",
		"TotalTimeToCreateExchange",
		"SomeWrapper:TotalTimeToCreateExchange:Inner",
	}
	for _, opID := range cases {
		if !nav.MatchesTimeOp(opID, model.PhaseCreate) {
			t.Errorf("loose match should accept %q", opID)
		}
	}
	if nav.MatchesTimeOp("TotalExchangeReadTime", model.PhaseCreate) {
		t.Error("read time op must not match the create phase")
	}
}

func TestAccepts_ParquetForTabular(t *testing.T) {
	tekla, _ := ByName("tekla")
	if !tekla.Accepts(".csv") || !tekla.Accepts(".parquet") {
		t.Error("tabular connector should accept csv and parquet")
	}
	if tekla.Accepts(".json") {
		t.Error("tabular connector should reject json")
	}

	tree, _ := ByName("tekla-json")
	if !tree.Accepts(".json") {
		t.Error("tree connector should accept json")
	}
	if tree.Accepts(".parquet") || tree.Accepts(".csv") {
		t.Error("tree connector should reject tabular extensions")
	}
}

func TestTable_PhaseNoneFallsBackToCreate(t *testing.T) {
	tekla, _ := ByName("tekla")
	if cat, ok := tekla.Table(model.PhaseNone).Classify("CreateMeshGeometry"); !ok || cat != "Mesh" {
		t.Errorf("default table should classify create operations, got %q, %v", cat, ok)
	}
}
