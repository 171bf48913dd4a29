package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeApp(t *testing.T, root string) {
	t.Helper()
	files := map[string]string{
		"app.ts":                      "module app {\n    var dependencies = [];\n}",
		"services/GreetingService.ts": "module app.services {\n    class GreetingService {\n    }\n}",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestExecute(t *testing.T) {
	chdir(t, t.TempDir())

	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "build")
	writeApp(t, src)

	var stdout, stderr bytes.Buffer
	code := execute([]string{"--out", out, "--newline", "lf", src + "/..."}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "Transform Complete!")
	assert.Contains(t, stdout.String(), "Files processed: 2")
	assert.FileExists(t, filepath.Join(out, "app.services.ts"))
	assert.FileExists(t, filepath.Join(out, "services", "GreetingService.ts"))

	stdout.Reset()
	code = execute([]string{"--clean", "--out", out, src + "/..."}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Module files removed: 1")
	assert.NoFileExists(t, filepath.Join(out, "app.services.ts"))
}

func TestExecuteConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeApp(t, filepath.Join(dir, "src"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tsng.yaml"), []byte("sources:\n  - src/...\nout: build\nquiet: true\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := execute(nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Empty(t, stdout.String())
	assert.FileExists(t, filepath.Join(dir, "build", "app.ts"))
}

func TestExecuteFailures(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name     string
		args     func(src string) []string
		contains string
	}{
		{
			name:     "no sources",
			args:     func(string) []string { return nil },
			contains: "invalid 'sources'",
		},
		{
			name:     "bad newline",
			args:     func(src string) []string { return []string{"--newline", "unix", src} },
			contains: "Type: ConfigurationError",
		},
		{
			name:     "missing config file",
			args:     func(src string) []string { return []string{"--config", filepath.Join(src, "nope.yaml"), src} },
			contains: "failed to read config file",
		},
		{
			name:     "unknown flag",
			args:     func(src string) []string { return []string{"--module", "x", src} },
			contains: "Error: unknown flag: --module",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := t.TempDir()
			writeApp(t, src)

			var stdout, stderr bytes.Buffer
			code := execute(tt.args(src), &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.contains)
		})
	}
}

func TestExecuteVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, execute([]string{"--version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), Version)
}
