package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layout = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSeatingFromFile(t *testing.T) {
	path := writeFile(t, "layout.txt", layout)

	out, err := execute(t, "", "run", "--sim", "seating", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "37\n", out)

	out, err = execute(t, "", "run", "--sim", "seating", "--input", path, "--set", "policy=visible")
	require.NoError(t, err)
	assert.Equal(t, "26\n", out)
}

func TestRunCubesFromStdin(t *testing.T) {
	out, err := execute(t, ".#.\n..#\n###\n", "run", "--sim", "cubes", "--input", "-", "--set", "dim=4")
	require.NoError(t, err)
	assert.Equal(t, "848\n", out)
}

func TestRunFromConfigWithFlagOverride(t *testing.T) {
	path := writeFile(t, "run.yaml", `
sim: cubes
grid: |
  .#.
  ..#
  ###
params:
  dim: "4"
`)
	out, err := execute(t, "", "run", "--config", path, "--set", "dim=3")
	require.NoError(t, err)
	assert.Equal(t, "112\n", out)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "", "run", "--sim", "seating")
	assert.ErrorContains(t, err, "neither input nor grid")

	_, err = execute(t, "L?L\n", "run", "--sim", "seating", "--input", "-")
	assert.ErrorContains(t, err, "unknown symbol")

	_, err = execute(t, "L\n", "run", "--sim", "hexagons", "--input", "-")
	assert.ErrorContains(t, err, "unknown sim")

	_, err = execute(t, "L\n", "run", "--input", "-", "--set", "novalue")
	assert.ErrorContains(t, err, "want key=value")

	_, err = execute(t, "L\n", "run", "--input", "-", "--log", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestListAndDescribe(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "briansbrain\ncubes\nseating\n", out)

	out, err = execute(t, "", "describe", "cubes", "--set", "dim=4")
	require.NoError(t, err)
	assert.Contains(t, out, "Cubes")
	assert.Regexp(t, `dim\s+int\s+4`, out)
	assert.Contains(t, out, "B3/S23")
}

func TestSweepSummarises(t *testing.T) {
	out, err := execute(t, "", "sweep", "--sim", "cubes", "--runs", "4", "--rows", "4", "--cols", "4", "--workers", "2", "--set", "generations=2")
	require.NoError(t, err)
	assert.Contains(t, out, "sim=cubes runs=4")
	assert.Contains(t, out, "live: mean=")
	assert.Contains(t, out, "converged:")

	_, err = execute(t, "", "sweep", "--density", "1.5")
	assert.ErrorContains(t, err, "density")
}
