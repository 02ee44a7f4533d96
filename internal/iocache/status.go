package iocache

import (
	"fmt"

	"riskboard/schema"
)

// PrintSnapshotStatus prints snapshot store status information.
func PrintSnapshotStatus(status schema.SnapshotStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}

// PrintRunStatus prints run-history store status information.
func PrintRunStatus(status schema.RunStatus) {
	fmt.Printf("Runs Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run ID: %d\n", status.LastRunID)
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Rows Loaded: %d\n", status.TotalRows)
	}
}

// PrintRunList prints recent pipeline runs, newest first.
func PrintRunList(runs []schema.PipelineRunRecord) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	for _, r := range runs {
		duration := "-"
		if r.RunDurationMs != nil {
			duration = fmt.Sprintf("%dms", *r.RunDurationMs)
		}
		races := "all"
		if r.RaceFilter != nil {
			races = *r.RaceFilter
		}
		fmt.Printf("#%d %s %s (%s)\n", r.RunID, r.StartTime.Format("2006-01-02 15:04:05"), r.Command, duration)
		fmt.Printf("    source=%s rows=%d filtered=%d races=%s age=%s\n",
			r.SourcePath, r.RowsLoaded, r.RowsFiltered, races, r.AgeGroup)
	}
}
