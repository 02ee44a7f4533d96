// Package main provides a performance benchmarking tool for the riskboard CLI.
// It generates synthetic COMPAS-style datasets of increasing size, measures
// execution times across command types, running each test multiple times,
// treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - riskboard binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory to hold the generated datasets
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	RowCounts   map[string]int
	Datasets    []string
}

var (
	benchRaces  = []string{"African-American", "Caucasian", "Hispanic", "Asian", "Native American", "Other"}
	benchAges   = []string{"Less than 25", "25 - 45", "Greater than 45"}
	benchStates = []string{"FL", "NY", "CA", "TX"}
)

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     2 * time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		Datasets:    []string{"small", "medium", "large"},
		RowCounts: map[string]int{
			"small":  1_000,
			"medium": 50_000,
			"large":  500_000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the snapshot cache using riskboard cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("riskboard", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies the riskboard binary exists and generates datasets
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if riskboard is available
	if _, err := exec.LookPath("riskboard"); err != nil {
		return fmt.Errorf("riskboard binary not found in PATH")
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}

	// Generate each dataset if missing
	for _, name := range config.Datasets {
		path := datasetPath(config, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		fmt.Printf("Generating %s dataset (%d rows)\n", name, config.RowCounts[name])
		if err := generateDataset(path, config.RowCounts[name]); err != nil {
			return fmt.Errorf("cannot generate dataset %s: %w", name, err)
		}
	}

	return nil
}

// datasetPath returns the CSV path for a named dataset.
func datasetPath(config BenchmarkConfig, name string) string {
	return filepath.Join(config.WorkDir, fmt.Sprintf("compas_%s.csv", name))
}

// generateDataset writes a synthetic COMPAS-style CSV with the given row count.
func generateDataset(path string, rows int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	rng := rand.New(rand.NewSource(42))
	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"name", "sex", "age", "age_cat", "race", "c_charge_desc", "priors_count", "decile_score", "state", "two_year_recid"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range rows {
		sex := "Male"
		if rng.Intn(2) == 0 {
			sex = "Female"
		}
		rec := []string{
			fmt.Sprintf("defendant %07d", i),
			sex,
			strconv.Itoa(18 + rng.Intn(60)),
			benchAges[rng.Intn(len(benchAges))],
			benchRaces[rng.Intn(len(benchRaces))],
			"Battery",
			strconv.Itoa(rng.Intn(25)),
			strconv.Itoa(1 + rng.Intn(10)),
			benchStates[rng.Intn(len(benchStates))],
			strconv.Itoa(rng.Intn(2)),
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across generated datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Datasets), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, name := range config.Datasets {
		fmt.Printf("Benchmarking %s\n", name)
		path := datasetPath(config, name)

		for _, command := range []string{"trend", "scatter", "summary"} {
			result := runBenchmarkSuite(config, name, path, command)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset, path, command string) BenchmarkResult {
	fmt.Printf("Running %s analysis on %s\n", command, dataset)

	// Helper to run a benchmark phase
	runPhase := func(snapshotBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, path, command, snapshotBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     dataset,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a riskboard command multiple times with the specified snapshot backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, path, command, snapshotBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, path, "--snapshot-backend", snapshotBackend, "--color", "no"}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("riskboard", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	switch command {
	case "scatter":
		completionPhrase = "Scatter computed in"
	case "summary":
		completionPhrase = "Summary computed in"
	default:
		completionPhrase = "Trend computed in"
	}

	return strings.Contains(outputStr, completionPhrase) &&
		strings.Contains(outputStr, "Snapshot backend:")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/riskboard_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "trend", "Trend Analysis:")
	printCommandSummary(results, "scatter", "Scatter Analysis:")
	printCommandSummary(results, "summary", "Summary Analysis:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
