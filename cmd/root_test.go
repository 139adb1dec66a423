package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/gosort/internal/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against a temp input file and returns stdout.
func run(t *testing.T, input string, args ...string) (stdout, outPath string, err error) {
	t.Helper()
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	outPath = filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(inPath, []byte(input), 0o644))
	cfgPath := filepath.Join(dir, "gosort.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0o644))

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(append(args, inPath), "-o", outPath, "--config", cfgPath))
	err = cmd.Execute()
	return buf.String(), outPath, err
}

func output(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSortCommandModes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"text", "pear\napple\nfig\n", []string{"-s"}, "apple\nfig\npear\n"},
		{"reverse text", "a\nc\nb\n", []string{"-rs"}, "c\nb\na\n"},
		{"numeric", "10\n9\n100\n", []string{"-n"}, "9\n10\n100\n"},
		{"numeric reverse unique", "3\n1\n2\n1\n", []string{"-n", "-r", "-u"}, "3\n2\n1\n"},
		{"suffix", "2m\n1k\n5\n", []string{"-h"}, "5\n1k\n2m\n"},
		{"numeric with suffix", "2m\n1k\n5\n", []string{"-n", "-h"}, "5\n1k\n2m\n"},
		{"month", "mar\nJan\nfeb\n", []string{"-M"}, "Jan\nfeb\nmar\n"},
		{"columns", "a 2\nb 1\na 1\n", []string{"-s", "-k", "1,2"}, "a 1\na 2\nb 1\n"},
		{"columns second first", "a 2\nb 1\na 1\n", []string{"-k", "2,1"}, "a 1\nb 1\na 2\n"},
		{"separator", "x,2\ny,1\n", []string{"-k", "2", "-t", ","}, "y,1\nx,2\n"},
		{"trim and unique", "b \nb\na\n", []string{"-s", "-b", "-u"}, "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := run(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, output(t, out))
		})
	}
}

func TestCheckReportsSorted(t *testing.T) {
	stdout, out, err := run(t, "a\nb\n", "-c", "-s")
	require.NoError(t, err)
	assert.Contains(t, stdout, "data is already sorted")
	assert.NoFileExists(t, out)
}

func TestCheckReportsUnsortedAndSorts(t *testing.T) {
	stdout, out, err := run(t, "b\na\n", "-c", "-s")
	require.NoError(t, err)
	assert.Contains(t, stdout, "data is not sorted")
	assert.Equal(t, "a\nb\n", output(t, out))
}

func TestConfigErrorsWriteNothing(t *testing.T) {
	tests := map[string][]string{
		"bad column":       {"-k", "x"},
		"zero column":      {"-k", "0"},
		"columns numeric":  {"-n", "-k", "1"},
		"month numeric":    {"-M", "-n"},
		"text and numeric": {"-s", "-n"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, out, err := run(t, "b\na\n", args...)
			var cfgErr *sorter.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.NoFileExists(t, out)
		})
	}
}

func TestConfigErrorReportedBeforeSettingsFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("b\na\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-k", "x", inPath, "--config", filepath.Join(dir, "absent.yaml")})
	err := cmd.Execute()

	var cfgErr *sorter.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "-k", cfgErr.Option)
}

func TestUnknownFlagWritesNothing(t *testing.T) {
	_, out, err := run(t, "b\na\n", "-z")
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-s", filepath.Join(dir, "missing.txt"), "-o", filepath.Join(dir, "out.txt")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettingsFileProvidesDefaults(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("b;2\na;1\n"), 0o644))
	cfgPath := filepath.Join(dir, "gosort.yaml")
	settings := "output: \"" + filepath.ToSlash(filepath.Join(dir, "{original}.sorted{ext}")) + "\"\nfield_separator: \";\"\nlog_level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(settings), 0o644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-k", "2", inPath, "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "a;1\nb;2\n", output(t, filepath.Join(dir, "names.sorted.txt")))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Version:    "+Version)
}

func TestRequiresExactlyOneFile(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-s"})
	assert.Error(t, cmd.Execute())
}
