package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Risk label constants, following the conventional decile score banding.
const (
	HighValue   = "High"   // Decile 8-10
	MediumValue = "Medium" // Decile 5-7
	LowValue    = "Low"    // Decile 1-4
)

// Color variables for console output.
var (
	HighColor   = color.New(color.FgRed, color.Bold) // highColor represents standard danger.
	MediumColor = color.New(color.FgYellow)          // mediumColor represents standard caution, not bold.
	LowColor    = color.New(color.FgCyan)            // lowColor represents informational / low-priority signal.
)

// GetPlainLabel returns a plain text risk label for a decile score. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(decileScore int) string {
	switch {
	case decileScore >= 8:
		return HighValue
	case decileScore >= 5:
		return MediumValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored risk label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(decileScore int) string {
	text := GetPlainLabel(decileScore)

	switch text {
	case HighValue:
		return HighColor.Sprint(text)
	case MediumValue:
		return MediumColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".riskboard_snapshot.db"
	}
	return filepath.Join(homeDir, ".riskboard_snapshot.db")
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run-history storage.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".riskboard_runs.db"
	}
	return filepath.Join(homeDir, ".riskboard_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// SplitCommaList splits a comma-separated flag value into trimmed, non-empty
// parts. It returns nil for an empty input so callers can distinguish
// "no selection made" from "empty selection".
func SplitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// TruncateText truncates a string to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for both content and the ellipsis.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}
