package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"riskboard/internal/contract"
	"riskboard/internal/parquet"
	"riskboard/schema"
)

// WriteErrorRateResults outputs the static error-rate reference table, dispatching based on the output format configured.
// No duration is reported because nothing is computed; the rates are
// published statistics, not derived from the loaded dataset.
func WriteErrorRateResults(entries []schema.ErrorRateEntry, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeErrorRateJSONResults(entries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeErrorRateCSVResults(entries, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errParquetNeedsFile
		}
		if err := parquet.WriteErrorRatesParquet(parquet.ConvertErrorRateEntries(entries), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeErrorRateTable(entries, cfg, fmtFloat, w)
		}, "Wrote error-rate table")
	}
	return nil
}

// writeErrorRateJSONResults handles opening the file and calling the JSON writer.
func writeErrorRateJSONResults(entries []schema.ErrorRateEntry, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, entries)
	}, "Wrote JSON error-rate results")
}

// writeErrorRateCSVResults handles opening the file and calling the CSV writer.
func writeErrorRateCSVResults(entries []schema.ErrorRateEntry, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"race", "metric", "percent"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, e := range entries {
				rec := []string{
					e.Race,
					string(e.Metric),
					fmtFloat(e.Percent),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV error-rate results")
}

// writeErrorRateTable generates and writes the human-readable table.
func writeErrorRateTable(entries []schema.ErrorRateEntry, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Race", "Metric", "Percent"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxTextWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, e := range entries {
		row := []string{
			contract.TruncateText(e.Race, maxTextWidth),
			string(e.Metric),
			fmtFloat(e.Percent),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Published per-race error rates; not derived from the loaded dataset\n"); err != nil {
		return err
	}
	return nil
}
