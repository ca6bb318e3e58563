package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("FILE_PATH", filepath.Join(dir, "workouts.json"))
	t.Setenv("FILE_TOKEN_PATH", filepath.Join(dir, "token.json"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workouts.json"),
		[]byte(`{"w1_dMon 12/1": {"completed": true, "actual_miles": "3"}}`), 0o600))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	dir := setupConfig(t)

	out, err := run(t, "stats", "--config", dir)
	require.NoError(t, err)

	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.EqualValues(t, 1, stats["completed_workouts"])
	assert.Equal(t, 3.0, stats["completed_miles"])
}

func TestPlanCommand(t *testing.T) {
	dir := setupConfig(t)

	out, err := run(t, "plan", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 13")
	assert.Equal(t, 1, strings.Count(out, "[x]"))
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "[x]") {
			assert.Contains(t, line, "Mon 12/1")
		}
	}
}

func TestResetCommand(t *testing.T) {
	dir := setupConfig(t)

	_, err := run(t, "reset", "--config", dir)
	assert.Error(t, err)

	out, err := run(t, "reset", "--yes", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 records")
}

func TestExportCommand_LocalFile(t *testing.T) {
	dir := setupConfig(t)
	target := filepath.Join(t.TempDir(), "snapshot.json")

	_, err := run(t, "export", "-o", target, "--config", dir)
	require.NoError(t, err)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(b), "w1_dMon 12/1")
}

func TestExportCommand_NoBucket(t *testing.T) {
	dir := setupConfig(t)

	_, err := run(t, "export", "--config", dir)
	assert.Error(t, err)
}
