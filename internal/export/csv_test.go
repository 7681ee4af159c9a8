package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/connstats/internal/batch"
	"github.com/gyeh/connstats/internal/connector"
	"github.com/gyeh/connstats/internal/model"
)

func sampleTable() *model.SummaryTable {
	row := model.NewSummary("Office", model.PhaseCreate, []string{"Mesh", "IFC", "Primitives"})
	row.Categories["IFC"] = 12
	row.TotalElements = 12
	row.ElapsedMillis = 30000
	row.ElapsedMinutes = 0.5
	row.ElementsPerMinute = 24.0
	return &model.SummaryTable{
		Kind:    model.TableSingle,
		Columns: []string{"Mesh", "IFC", "Primitives"},
		Rows:    []*model.ModelSummary{row},
	}
}

func TestWriteCSV_ColumnOrder(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, sampleTable()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if lines[0] != "Data/Model,Mesh,IFC,Primitives,total_elements,milliseconds,minutes,element_per_min" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Office,0,12,0,12,30000,0.50,24.00" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteCSV_ErrorColumns(t *testing.T) {
	table := sampleTable()
	table.Append(model.NewErrorRow("Plant", "X", table.Columns))

	var sb strings.Builder
	if err := WriteCSV(&sb, table); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if !strings.HasSuffix(lines[0], ",Status,Error_Details") {
		t.Errorf("header = %q", lines[0])
	}
	// Status columns populated only on the error row.
	if !strings.HasSuffix(lines[1], ",,") {
		t.Errorf("success row should leave error columns empty: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",ERROR,X") {
		t.Errorf("error row = %q", lines[2])
	}
}

func TestWriteTables(t *testing.T) {
	dir := t.TempDir()
	csv := "Operation Name,#Events,Operation Time in Milliseconds\n" +
		"ExportIFCTeklaAPI,12,0\nTotalTimeToCreateExchange,0,30000\n"
	path := filepath.Join(dir, "metrics_Office_DemoRun.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	p, _ := connector.ByName("tekla")
	res, err := batch.Run(context.Background(), zerolog.Nop(), p, []string{path}, batch.Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := t.TempDir()
	written, err := WriteTables(out, res)
	if err != nil {
		t.Fatalf("WriteTables: %v", err)
	}
	if len(written) != 1 || filepath.Base(written[0]) != "operation_summary_single.csv" {
		t.Errorf("written = %v", written)
	}
	data, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Office,0,12,0,12,30000,0.50,24.00") {
		t.Errorf("file contents = %q", data)
	}
}
