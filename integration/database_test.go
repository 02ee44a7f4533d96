//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRiskboardWithMySQL tests the riskboard CLI with a MySQL backend.
func TestRiskboardWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "riskboard",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/riskboard?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("RISKBOARD_SNAPSHOT_BACKEND", "mysql")
	_ = os.Setenv("RISKBOARD_SNAPSHOT_DB_CONNECT", connStr)
	_ = os.Setenv("RISKBOARD_RUNS_BACKEND", "mysql")
	_ = os.Setenv("RISKBOARD_RUNS_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("RISKBOARD_SNAPSHOT_BACKEND") }()
	defer func() { _ = os.Unsetenv("RISKBOARD_SNAPSHOT_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("RISKBOARD_RUNS_BACKEND") }()
	defer func() { _ = os.Unsetenv("RISKBOARD_RUNS_DB_CONNECT") }()

	runBackendScenario(t)
}

// TestRiskboardWithPostgres tests the riskboard CLI with a PostgreSQL backend.
func TestRiskboardWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("RISKBOARD_SNAPSHOT_BACKEND", "postgresql")
	_ = os.Setenv("RISKBOARD_SNAPSHOT_DB_CONNECT", connStr)
	_ = os.Setenv("RISKBOARD_RUNS_BACKEND", "postgresql")
	_ = os.Setenv("RISKBOARD_RUNS_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("RISKBOARD_SNAPSHOT_BACKEND") }()
	defer func() { _ = os.Unsetenv("RISKBOARD_SNAPSHOT_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("RISKBOARD_RUNS_BACKEND") }()
	defer func() { _ = os.Unsetenv("RISKBOARD_RUNS_DB_CONNECT") }()

	runBackendScenario(t)
}

// runBackendScenario runs the common CLI sequence against whatever backend the
// environment variables point at.
func runBackendScenario(t *testing.T) {
	dataset := writeSampleDataset(t)

	// Start from a clean slate
	err := runRiskboardCommand(t, "cache", "clear")
	require.NoError(t, err)
	err = runRiskboardCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Run twice so the second run hits the snapshot cache
	err = runRiskboardCommand(t, "trend", dataset)
	require.NoError(t, err)
	err = runRiskboardCommand(t, "trend", dataset)
	require.NoError(t, err)

	err = runRiskboardCommand(t, "summary", dataset, "--races", "African-American")
	require.NoError(t, err)

	err = runRiskboardCommand(t, "cache", "status")
	require.NoError(t, err)
	err = runRiskboardCommand(t, "runs", "status")
	require.NoError(t, err)
	err = runRiskboardCommand(t, "runs", "list")
	require.NoError(t, err)
}

func runRiskboardCommand(t *testing.T, args ...string) error {
	riskboardPath := getRiskboardBinary()
	cmd := exec.Command(riskboardPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
