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

// WriteSummaryResults outputs the per-race summary statistics, dispatching based on the output format configured.
func WriteSummaryResults(summaries []schema.RaceSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSummaryJSONResults(summaries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSummaryCSVResults(summaries, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errParquetNeedsFile
		}
		if err := parquet.WriteRaceSummariesParquet(parquet.ConvertRaceSummaries(summaries), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(summaries, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote summary table")
	}
	return nil
}

// writeSummaryJSONResults handles opening the file and calling the JSON writer.
func writeSummaryJSONResults(summaries []schema.RaceSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, summaries)
	}, "Wrote JSON summary results")
}

// writeSummaryCSVResults handles opening the file and calling the CSV writer.
func writeSummaryCSVResults(summaries []schema.RaceSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"race",
			"count",
			"mean_decile",
			"median_decile",
			"stddev_decile",
			"recidivism_rate",
			"unclassified",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, s := range summaries {
				rec := []string{
					s.Race,
					fmt.Sprintf(intFmt, s.Count),
					fmtFloat(s.MeanDecile),
					fmtFloat(s.MedianDecile),
					fmtFloat(s.StdDevDecile),
					fmtFloat(s.RecidivismRate),
					fmt.Sprintf(intFmt, s.Unclassified),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV summary results")
}

// writeSummaryTable generates and writes the human-readable table.
func writeSummaryTable(summaries []schema.RaceSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Race", "Count", "Mean", "Median", "StdDev", "Recid Rate", "Unclassified"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxTextWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	totalCount := 0
	for _, s := range summaries {
		totalCount += s.Count
		row := []string{
			contract.TruncateText(s.Race, maxTextWidth),
			fmt.Sprintf(intFmt, s.Count),
			fmtFloat(s.MeanDecile),
			fmtFloat(s.MedianDecile),
			fmtFloat(s.StdDevDecile),
			fmtFloat(s.RecidivismRate),
			fmt.Sprintf(intFmt, s.Unclassified),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d races over %d records\n", len(summaries), totalCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Summary computed in %v. Age group: %s. Snapshot backend: %s\n", duration, cfg.AgeGroup, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}
