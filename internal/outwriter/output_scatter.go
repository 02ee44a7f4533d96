package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"riskboard/internal/contract"
	"riskboard/internal/parquet"
	"riskboard/schema"
)

// WriteScatterResults outputs the scatter points, dispatching based on the output format configured.
// The table view is capped at the configured result limit; machine formats
// always carry every point.
func WriteScatterResults(points []schema.ScatterPoint, cfg *contract.Config, duration time.Duration) error {
	_, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScatterJSONResults(points, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScatterCSVResults(points, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errParquetNeedsFile
		}
		if err := parquet.WriteScatterSamplesParquet(parquet.ConvertScatterPoints(points), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScatterTable(points, cfg, intFmt, duration, w)
		}, "Wrote scatter table")
	}
	return nil
}

// writeScatterJSONResults handles opening the file and calling the JSON writer.
func writeScatterJSONResults(points []schema.ScatterPoint, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		// Rank and a plain risk label are added for JSON consumers
		type JSONScatterPoint struct {
			Rank  int    `json:"rank"`
			Label string `json:"label"`
			schema.ScatterPoint
		}

		output := make([]JSONScatterPoint, len(points))
		for i, p := range points {
			output[i] = JSONScatterPoint{
				Rank:         i + 1,
				Label:        contract.GetPlainLabel(p.DecileScore),
				ScatterPoint: p,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON scatter results")
}

// writeScatterCSVResults handles opening the file and calling the CSV writer.
func writeScatterCSVResults(points []schema.ScatterPoint, cfg *contract.Config, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"name",
			"sex",
			"age",
			"race",
			"decile_score",
			"label",
			"charge_desc",
			"jurisdiction",
			"recidivism_status",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, p := range points {
				rec := []string{
					strconv.Itoa(i + 1),
					p.Name,
					p.Sex,
					fmt.Sprintf(intFmt, p.Age),
					p.Race,
					fmt.Sprintf(intFmt, p.DecileScore),
					contract.GetPlainLabel(p.DecileScore),
					p.ChargeDesc,
					p.Jurisdiction,
					string(p.RecidivismStatus),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV scatter results")
}

// writeScatterTable generates and writes the human-readable table.
func writeScatterTable(points []schema.ScatterPoint, cfg *contract.Config, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Name", "Age", "Score", "Risk", "Charge", "Outcome"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	shown := points
	if cfg.ResultLimit > 0 && len(shown) > cfg.ResultLimit {
		shown = shown[:cfg.ResultLimit]
	}

	maxTextWidth := GetMaxTableTextWidth(cfg)
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	var data [][]string
	for i, p := range shown {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(p.Name, maxTextWidth),
			fmt.Sprintf(intFmt, p.Age),
			fmt.Sprintf(intFmt, p.DecileScore),
			label(p.DecileScore),
			contract.TruncateText(p.ChargeDesc, maxTextWidth),
			string(p.RecidivismStatus),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d of %d points\n", len(shown), len(points)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scatter computed in %v. Age group: %s. Snapshot backend: %s\n", duration, cfg.AgeGroup, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}
