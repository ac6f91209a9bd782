package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"rangegen"}, args...))
	return out.String(), err
}

func TestRangegen(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		want string
	}{
		{"inclusive", []string{"--start", "1", "--to", "5"}, "1\n2\n3\n4\n5\n"},
		{"exclusive descending", []string{"-s", "3", "--until", "0"}, "3\n2\n1\n"},
		{"unbounded take", []string{"-s", "1", "--step", "10", "-n", "3", "-o", "json"}, "[1,11,21]\n"},
		{"dates json", []string{"-t", "date", "-s", "2024-02-28", "--to", "2024-03-01", "-o", "json"},
			`["2024-02-28","2024-02-29","2024-03-01"]` + "\n"},
		{"floats yaml", []string{"-t", "float", "-s", "1", "--to", "2", "--step", "0.5", "-o", "yaml"},
			"- 1\n- 1.5\n- 2\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRangegenErrors(t *testing.T) {
	_, err := run(t, "--start", "1", "--step", "1")
	require.ErrorContains(t, err, "unbounded range needs a take limit")

	_, err = run(t, "--start", "1", "--to", "5", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")

	_, err = run(t, "--start", "9223372036854775806", "--to", "9223372036854775807")
	require.ErrorContains(t, err, "overflows int64")

	_, err = run(t, "-t", "float", "--start", "-Inf", "--to", "5")
	require.ErrorContains(t, err, "non-finite value")
}

func TestRangegenLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "rangegen.log")

	out, err := run(t, "-v", "--log-file", logFile, "--start", "1", "--to", "3")
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n", out)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "Generated range")
	require.Contains(t, string(data), "count=3")

	_, err = run(t, "--log-file", t.TempDir(), "--start", "1", "--to", "3")
	require.ErrorContains(t, err, "is a directory")
}
