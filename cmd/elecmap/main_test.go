package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elecmap/features"
)

const experimentYAML = `id: demo
profiles:
  - id: parties
    ballot: approval
    num_candidates: 4
    votes: [[0, 1], [0, 1], [2, 3], [2, 3]]
  - id: lopsided
    ballot: approval
    num_candidates: 4
    votes: [[0], [0], [0], [1]]
distances:
  parties: {lopsided: 2.0}
coordinates:
  parties: [0, 0]
  lopsided: [1, 1]
`

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--env-file", emptyDotenv(t)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func emptyDotenv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func writeExperiment(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(experimentYAML), 0o600))
	return path
}

func TestFeaturesCommand(t *testing.T) {
	out, err := run(t, "features")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(features.IDs()))
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.Contains(t, out, "justified_ratio")
	require.Regexp(t, `clustering\s+experiment\s+mapping`, out)
	require.Regexp(t, `proportionality_degree_pav\s+global\s+vector`, out)
}

func TestComputeCommand(t *testing.T) {
	exp := writeExperiment(t)

	out, err := run(t, "compute", "--experiment", exp, "--feature", "justified_ratio", "-k", "2")
	require.NoError(t, err)
	require.Equal(t, "profile_id,kind,value\nlopsided,scalar,0.75\nparties,scalar,1\n", out)

	out, err = run(t, "compute", "-e", exp, "-f", "greedy_approx_pav_score", "-k", "2")
	require.NoError(t, err)
	require.Equal(t, "profile_id,kind,value\nlopsided,scalar,4\nparties,scalar,4\n", out)

	out, err = run(t, "compute", "-e", exp, "-f", "clustering", "--num-clusters", "2")
	require.NoError(t, err)
	require.Equal(t, "profile_id,kind,value\ndemo,mapping,lopsided=2,parties=1\n", out)
}

func TestComputeCommand_OutFile(t *testing.T) {
	exp := writeExperiment(t)
	dst := filepath.Join(t.TempDir(), "values.csv")

	out, err := run(t, "compute", "-e", exp, "-f", "max_approval_score", "--out", dst)
	require.NoError(t, err)
	require.Empty(t, out)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	values, err := features.ReadValues(f)
	require.NoError(t, err)
	require.Equal(t, map[string]features.Value{
		"parties":  features.ScalarValue(2),
		"lopsided": features.ScalarValue(3),
	}, values)
}

func TestComputeCommand_Errors(t *testing.T) {
	exp := writeExperiment(t)

	_, err := run(t, "compute", "-e", exp, "-f", "nope")
	require.ErrorIs(t, err, features.ErrUnknownFeature)

	_, err = run(t, "compute", "-f", "borda_std")
	require.Error(t, err)

	_, err = run(t, "compute", "-e", exp, "-f", "greedy_approx_cc_score", "--algorithm", "annealing")
	require.Error(t, err)

	// Default committee size 10 exceeds the 4 candidates.
	_, err = run(t, "compute", "-e", exp, "-f", "greedy_approx_cc_score")
	require.ErrorContains(t, err, "committee size out of range")

	_, err = run(t, "compute", "-e", filepath.Join(t.TempDir(), "missing.yaml"), "-f", "borda_std")
	require.Error(t, err)
}
