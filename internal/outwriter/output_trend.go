package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"riskboard/internal/contract"
	"riskboard/internal/parquet"
	"riskboard/schema"
)

// WriteTrendResults outputs the trend results, dispatching based on the output format configured.
// Machine formats carry the long-format series points; the human-readable
// table shows the wide per-bin aggregates instead, which read better side by side.
func WriteTrendResults(points []schema.LongSeriesPoint, bins []schema.AggregatedBin, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeTrendJSONResults(points, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTrendCSVResults(points, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errParquetNeedsFile
		}
		if err := parquet.WriteTrendPointsParquet(parquet.ConvertTrendPoints(points), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(points, bins, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote trend table")
	}
	return nil
}

// writeTrendJSONResults handles opening the file and calling the JSON writer.
func writeTrendJSONResults(points []schema.LongSeriesPoint, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, points)
	}, "Wrote JSON trend results")
}

// writeTrendCSVResults handles opening the file and calling the CSV writer.
func writeTrendCSVResults(points []schema.LongSeriesPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"prior_convictions", "value", "series"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, p := range points {
				rec := []string{
					string(p.Bin),
					fmtFloat(p.Value),
					string(p.Series),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV trend results")
}

// writeTrendTable generates and writes the human-readable per-bin table.
func writeTrendTable(points []schema.LongSeriesPoint, bins []schema.AggregatedBin, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Priors", "Avg Score", "Recid Rate", "Count"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, b := range bins {
		row := []string{
			string(b.Bin),
			fmtFloat(b.NormScore),
			fmtFloat(b.RecidivismRate),
			fmt.Sprintf(intFmt, b.Count),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalCount := 0
	for _, b := range bins {
		totalCount += b.Count
	}
	if _, err := fmt.Fprintf(writer, "Showing %d bins over %d records (%d series points)\n", len(bins), totalCount, len(points)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Trend computed in %v. Age group: %s. Snapshot backend: %s\n", duration, cfg.AgeGroup, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}
