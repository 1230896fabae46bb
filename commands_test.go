package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWritesChartInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := executeRoot(t, `{"x":[0,1,2,3],"y":[100,90,80,70]}`, "5")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []string{"supply_over_time_5yrs.png"}, listDir(t, dir))
}

func TestRootIgnoresExtraArgs(t *testing.T) {
	dir := t.TempDir()

	_, err := executeRoot(t, "--output-dir", dir, `{"x":[0,1],"y":[2,1]}`, "3", "extra")
	require.NoError(t, err)
	assert.Equal(t, []string{"supply_over_time_3yrs.png"}, listDir(t, dir))
}

func TestRootFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"truncated json", []string{`{"x":[0,1,2,3],"y":[100,`, "5"}},
		{"mismatched lengths", []string{`{"x":[0,1,2],"y":[100,90]}`, "5"}},
		{"missing key", []string{`{"x":[0,1,2]}`, "5"}},
		{"missing years", []string{`{"x":[0,1],"y":[1,2]}`}},
		{"no args", nil},
		{"span overflows float64", []string{`{"x":[0,1],"y":[-1.7e308,1.7e308]}`, "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := executeRoot(t, append([]string{"--output-dir", dir}, tt.args...)...)
			assert.Error(t, err)
			assert.Empty(t, listDir(t, dir))
		})
	}
}

func TestRootSummaryAndHTML(t *testing.T) {
	dir := t.TempDir()

	out, err := executeRoot(t, "--output-dir", dir, "--html", "--summary", `{"x":[0,1,2,3],"y":[100,90,80,70]}`, "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Net change")
	assert.ElementsMatch(t, []string{"supply_over_time_5yrs.png", "supply_over_time_5yrs.html"}, listDir(t, dir))
}

func TestRootEmptySeriesWritesChart(t *testing.T) {
	dir := t.TempDir()

	_, err := executeRoot(t, "--output-dir", dir, `{"x":[],"y":[]}`, "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"supply_over_time_5yrs.png"}, listDir(t, dir))
}
