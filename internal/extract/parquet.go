package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/connstats/internal/model"
	"github.com/gyeh/connstats/internal/normalize"
)

// MetricRow mirrors the Parquet schema for one operation record. Counts are
// int64 matching the producer's representation.
type MetricRow struct {
	OperationName string `parquet:"operation_name"`
	Events        int64  `parquet:"events"`
	ElapsedMillis int64  `parquet:"elapsed_ms"`
}

const parquetBatchSize = 256

func extractParquet(path string) (*FileData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[MetricRow](pf)
	defer reader.Close()

	if err := validateMetricSchema(reader.Schema()); err != nil {
		return nil, err
	}

	data := &FileData{
		Path:      path,
		ModelName: normalize.ModelName(filepath.Base(path), ""),
		DocPhase:  model.PhaseNone,
	}

	buf := make([]MetricRow, parquetBatchSize)
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			opID := strings.TrimSpace(buf[i].OperationName)
			if opID == "" {
				continue
			}
			data.Samples = append(data.Samples, model.OperationSample{
				OperationID:   opID,
				Events:        normalize.ClampCount(float64(buf[i].Events)),
				ElapsedMillis: normalize.ClampCount(float64(buf[i].ElapsedMillis)),
			})
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}

	return data, nil
}

// validateMetricSchema checks that the Parquet schema carries the operation
// name column; count columns are optional, missing values read as zero.
func validateMetricSchema(schema *parquet.Schema) error {
	for _, field := range schema.Fields() {
		if strings.ToLower(field.Name()) == "operation_name" {
			return nil
		}
	}
	return fmt.Errorf("missing required column: operation_name")
}
