package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assetsDir = filepath.Join("..", "..", "assets")

func TestRun_Single(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	err := run(t.Context(), []string{"-config", assetsDir, "-out", out, "-seed", "7", "-log-level", "warn"})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var res struct {
		Winner    string            `json:"winner"`
		Turns     int               `json:"turns"`
		Survivors []json.RawMessage `json:"survivors"`
		Events    []json.RawMessage `json:"events"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Contains(t, []string{"team1", "team2", "undecided"}, res.Winner)
	assert.Positive(t, res.Turns)
	assert.NotEmpty(t, res.Survivors)
	assert.NotEmpty(t, res.Events)
}

func TestRun_Batch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "summary.json")
	err := run(t.Context(), []string{"-config", assetsDir, "-out", out, "-n", "16", "-workers", "4", "-log-level", "warn"})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var sum batchSummary
	require.NoError(t, json.Unmarshal(raw, &sum))
	assert.Equal(t, 16, sum.Runs)
	assert.InDelta(t, 1, sum.Team1Rate+sum.Team2Rate+float64(sum.Undecided)/16, 1e-9)
	assert.Positive(t, sum.AvgTurns)
}

func TestRun_BadFlags(t *testing.T) {
	assert.Error(t, run(t.Context(), []string{"-log-level", "loud", "-config", assetsDir}))
	assert.Error(t, run(t.Context(), []string{"-config", t.TempDir()}))
}
