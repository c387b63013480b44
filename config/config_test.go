package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "matrix.txt", "1\n-1\n")
	cfgPath := writeFile(t, dir, "run.ini", `
[instance]
input_path = matrix.txt
symmetric  = true
full       = true

[optimal]
path = 0 1 2 0
cost = 42

[random]
millis = 500

[tabu_search]
itr                = 100
max_itr_no_improve = 50
tabu_itr           = 5

[genetic]
itr                   = 20
population_size       = 30
children_per_itr      = 10
max_children_per_pair = 2
max_v_count_crossover = 0
mutations_per_1000    = 20
`)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "matrix.txt"), cfg.InputPath)
	require.True(t, cfg.Info.Symmetric)
	require.True(t, cfg.Info.Full)
	require.True(t, cfg.HasOptimal)
	require.Equal(t, 42, cfg.OptimalCost)
	require.Equal(t, []int{0, 1, 2, 0}, cfg.OptimalPath)
	require.Equal(t, 500, cfg.Params.RandomMillis)
	require.Equal(t, 100, cfg.Params.TabuItr)
	require.Equal(t, 5, cfg.Params.TabuTenure)
	require.Equal(t, 30, cfg.Params.GenPopulationSize)
}

func TestLoad_MissingInputPathIsBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "run.ini", "[instance]\nsymmetric = true\n")

	_, err := config.Load(cfgPath)
	require.ErrorIs(t, err, config.ErrBadConfig)
}

func TestLoad_MissingFileIsBadRead(t *testing.T) {
	_, err := config.Load("/nonexistent/path.ini")
	require.ErrorIs(t, err, config.ErrBadRead)
}

func TestLoad_DefaultsGraphInfoToFalse(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "matrix.txt", "1\n-1\n")
	cfgPath := writeFile(t, dir, "run.ini", "[instance]\ninput_path = matrix.txt\n")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.False(t, cfg.Info.Symmetric)
	require.False(t, cfg.Info.Full)
	require.False(t, cfg.HasOptimal)
}
