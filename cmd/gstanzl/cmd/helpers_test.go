package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const folkJSON = `[
  {"title":"Alpenlied","region":"Tirol","mood":"heiter","tags":["trad"],"lyrics":["Oho","Trallala"]},
  {"title":"Bergruf","region":"Kärnten","mood":"ernst","tags":["alt","bergisch"],"lyrics":["Ruf","vom","Berg"]}
]`

// isolate points HOME and XDG_CONFIG_HOME at a temp dir, clears the
// environment overrides and changes into a fresh working directory, which
// it returns.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"GSTANZL_CATALOG", "GSTANZL_SEARCH_BACKEND", "GSTANZL_LOG_LEVEL", "GSTANZL_LOG_MAX_SIZE_MB"} {
		t.Setenv(key, "")
	}
	unsetEnv(t, "NO_COLOR")

	wd := t.TempDir()
	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })
	return wd
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()

	prev, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, prev)
		}
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeSongs writes the two-song catalog as songs.json in dir.
func writeSongs(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, "songs.json", folkJSON)
}

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// logFile returns the diagnostic log contents under the isolated HOME.
func logFile(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), ".gstanzl", "logs", "gstanzl.log"))
	require.NoError(t, err)
	return string(data)
}
