package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_CleanGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app.services.ts":      "module app.services {\n    angular.module(\"app.services\", []);\n}",
		"app.filters.ts":       "module app.filters {\r\n    angular.module(\"app.filters\", []);\r\n}",
		"app.ts":               "module app {\n    angular.module(\"app\", []);\n    var dependencies = [];\n}",
		"app.misnamed.ts":      "module app.other {\n    angular.module(\"app.other\", []);\n}",
		"nested/app.nested.ts": "module app.nested {\n    angular.module(\"app.nested\", []);\n}",
	})

	removed, err := NewCleaner().CleanGeneratedFiles(root, ".ts")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "app.filters.ts"),
		filepath.Join(root, "app.services.ts"),
	}, removed)

	c := NewCleaner()
	assert.False(t, c.fileOps.Exists(filepath.Join(root, "app.services.ts")))
	assert.True(t, c.fileOps.Exists(filepath.Join(root, "app.ts")))
	assert.True(t, c.fileOps.Exists(filepath.Join(root, "app.misnamed.ts")))
	assert.True(t, c.fileOps.Exists(filepath.Join(root, "nested", "app.nested.ts")))
}

func TestCleaner_MissingDirectory(t *testing.T) {
	removed, err := NewCleaner().CleanGeneratedFiles(filepath.Join(t.TempDir(), "missing"), ".ts")
	assert.NoError(t, err)
	assert.Empty(t, removed)
}
