package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/pkg/auth"
)

// execute runs rootCmd in-process with fresh flag values.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	validateFile = ""
	resumeDataFile = ""
	resumeOutputDir = "."
	seedDataFile = ""
	seedDatabaseURL = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateEmbeddedDataset(t *testing.T) {
	out, err := execute(t, "", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset is valid")
	assert.Contains(t, out, "companies:")
}

func TestValidateRejectsBrokenFile(t *testing.T) {
	path := writeFile(t, "broken.json", `{"personal": {}}`)

	_, err := execute(t, "", "validate", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "", "validate", "-f", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dataset")
}

func TestResumeWritesHTML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, "", "resume", "--out", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_Resume.html"))
	assert.Contains(t, out, entries[0].Name())

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "<html")
}

func TestSeedNeedsDatabaseURL(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := execute(t, "", "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN not set")
}

func TestHashPassword(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		out, err := execute(t, "", "hash-password", "s3cret-pass")
		require.NoError(t, err)
		assert.True(t, auth.CheckPasswordHash("s3cret-pass", strings.TrimSpace(out)))
	})

	t.Run("stdin", func(t *testing.T) {
		out, err := execute(t, "from-stdin\n", "hash-password")
		require.NoError(t, err)
		assert.True(t, auth.CheckPasswordHash("from-stdin", strings.TrimSpace(out)))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := execute(t, "\n", "hash-password")
		assert.EqualError(t, err, "password must not be empty")
	})
}
