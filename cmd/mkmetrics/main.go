// mkmetrics writes representative connector metric fixtures (CSV, JSON and
// Parquet) for manual testing of the summarize pipeline.
// Usage: go run ./cmd/mkmetrics --dir testdata
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/connstats/internal/extract"
)

func main() {
	dir := flag.String("dir", "testdata", "output folder")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	writers := []struct {
		name string
		fn   func(string) error
	}{
		{"metrics_Office_DemoCreate.csv", writeTeklaCreateCSV},
		{"metrics_Office_DemoRead.csv", writeTeklaReadCSV},
		{"metrics_Depot_DemoNavis.csv", writeNavisworksCSV},
		{"metrics_Office_DemoCreate.json", writeCreateDocument},
		{"metrics_Office_DemoFailed.json", writeFailedDocument},
		{"metrics_Office_DemoCreate.parquet", writeParquet},
	}
	for _, w := range writers {
		path := filepath.Join(*dir, w.name)
		if err := w.fn(path); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

func writeCSV(path string, rows [][3]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintln(f, "Operation Name,#Events,Operation Time in Milliseconds")
	for _, r := range rows {
		fmt.Fprintf(f, "%s,%s,%s\n", r[0], r[1], r[2])
	}
	return nil
}

func writeTeklaCreateCSV(path string) error {
	return writeCSV(path, [][3]string{
		{"ExportIFCTeklaAPI", "12", "0"},
		{"CreateMeshGeometry", "340", "0"},
		{"CreateExchangeElementForPrimitive", "25", "0"},
		{"SomethingUnmapped", "7", "0"},
		{"TotalTimeToCreateExchange", "0", "30000"},
	})
}

func writeTeklaReadCSV(path string) error {
	return writeCSV(path, [][3]string{
		{"LoadBrepItemInTekla", "8", "0"},
		{"LoadMeshInTekla", "120", "0"},
		{"TotalExchangeReadTime", "0", "45000"},
	})
}

func writeNavisworksCSV(path string) error {
	return writeCSV(path, [][3]string{
		{"ExportMeshCount", "500", "0"},
		{"ExportLineCount", "80", "0"},
		{"ReadMeshCount", "410", "0"},
		{"ReadBrepCount", "15", "0"},
		{"UpdateExchangeAsync:TotalTimeToCreateExchange", "0", "120000"},
		{"GetLatestExchangeDataAsync:TotalExchangeReadTime", "0", "60000"},
	})
}

func writeJSON(path string, doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writeCreateDocument(path string) error {
	return writeJSON(path, map[string]any{
		"Status":        "Completed",
		"OperationType": "CreateExchange",
		"PerformanceMetrics": []map[string]any{
			{"OperationName": "ExportIFCTeklaAPI", "Events": 12, "ElapsedMilliseconds": 0},
			{"OperationName": "CreateMeshGeometry", "Events": 340, "ElapsedMilliseconds": 0},
			{"OperationName": "TotalTimeToCreateExchange", "Events": 0, "ElapsedMilliseconds": 30000},
		},
		"Context": map[string]any{
			"Exchanges": []map[string]any{
				{
					"ExchangeInfo":  map[string]any{"ExchangeName": "Office Tower"},
					"ElementCounts": map[string]any{"BRep": 15, "CurveSet": 4, "TotalElements": 400},
				},
			},
		},
	})
}

func writeFailedDocument(path string) error {
	return writeJSON(path, map[string]any{
		"Status":        "CompletedWithErrors",
		"OperationType": "CreateExchange",
		"Errors": []map[string]any{
			{"Message": "Geometry conversion failed", "MethodName": "CreateMeshGeometry"},
		},
	})
}

func writeParquet(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := goparquet.NewGenericWriter[extract.MetricRow](f)
	_, err = w.Write([]extract.MetricRow{
		{OperationName: "ExportIFCTeklaAPI", Events: 12, ElapsedMillis: 0},
		{OperationName: "CreateMeshGeometry", Events: 340, ElapsedMillis: 0},
		{OperationName: "TotalTimeToCreateExchange", Events: 0, ElapsedMillis: 30000},
	})
	if err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
