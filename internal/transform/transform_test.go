package transform

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/models"
	"github.com/toyz/tsng/internal/utils"
)

const demoRoot = "testdata/demo"

// loadDemo reads the demo application in lexical order with paths relative to its root
func loadDemo(t *testing.T, newLine string) []models.SourceFile {
	t.Helper()

	paths, err := utils.WalkFiles(demoRoot, utils.FileWalkOptions{
		FileFilter:      utils.SourceFileFilter(demoRoot, ".ts", nil),
		DirectoryFilter: utils.DefaultDirectoryFilter(),
	})
	require.NoError(t, err)

	var files []models.SourceFile
	for _, path := range paths {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		rel, err := filepath.Rel(demoRoot, path)
		require.NoError(t, err)

		text := strings.ReplaceAll(string(content), "\r\n", "\n")
		if newLine != "\n" {
			text = strings.ReplaceAll(text, "\n", newLine)
		}
		files = append(files, models.SourceFile{Path: filepath.ToSlash(rel), Content: []byte(text)})
	}
	return files
}

func run(t *testing.T, opts Options, files []models.SourceFile) *Collector {
	t.Helper()

	tr, err := New(opts, nil)
	require.NoError(t, err)
	for _, f := range files {
		require.NoError(t, tr.Process(f))
	}

	out := &Collector{}
	require.NoError(t, tr.Emit(out))
	return out
}

func contentOf(t *testing.T, out *Collector, path string) string {
	t.Helper()
	f, ok := out.Get(path)
	require.True(t, ok, "missing output %s", path)
	return string(f.Content)
}

func TestDemoApplication(t *testing.T) {
	files := loadDemo(t, "\n")
	require.Len(t, files, 6)

	out := run(t, Options{NewLine: "\n"}, files)

	var paths []string
	for _, f := range out.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"demo.controllers.ts",
		"demo.app.ts",
		"demo.filters.ts",
		"demo.services.ts",
		"controllers/HomeController.ts",
		"controllers/SplashController.ts",
		"filters/TruncateFilter.ts",
		"services/GreetingService.ts",
		"services/UserDetailsService.ts",
	}, paths)

	assert.Equal(t, "module demo.services {\n    angular.module(\"demo.services\", []);\n}", contentOf(t, out, "demo.services.ts"))

	assert.Contains(t, contentOf(t, out, "demo.app.ts"), strings.Join([]string{
		"module demo.app {",
		"    angular.module(\"demo.app\", [",
		"        \"ngRoute\",",
		"        \"demo.controllers\",",
		"        \"demo.services\",",
		"    ]).config([",
		"        \"$logProvider\",",
		"        configuration",
		"    ]).run([",
		"        \"$log\",",
		"        run",
		"    ]);",
		"",
		"    var dependencies = [",
	}, "\n"))

	home := contentOf(t, out, "controllers/HomeController.ts")
	assert.True(t, strings.HasPrefix(home, "/// <reference path=\"../demo.controllers.ts\" />\n\nmodule demo.controllers {\n"))
	assert.True(t, strings.HasSuffix(home, strings.Join([]string{
		"        }",
		"    }",
		"    ",
		"    angular.module(\"demo.controllers\")",
		"        .controller(\"demo.controllers.HomeController\", [",
		"            \"demo.services.IUserDetailsService\",",
		"            \"demo.services.IGreetingService\",",
		"            HomeController",
		"        ]);",
		"}",
	}, "\n")))

	assert.Contains(t, contentOf(t, out, "services/UserDetailsService.ts"),
		".service(\"demo.services.IUserDetailsService\", [\n            UserDetailsService\n        ]);")
	assert.Contains(t, contentOf(t, out, "filters/TruncateFilter.ts"),
		"    angular.module(\"demo.filters\")\n        .filter(\"truncate\", () => truncate);\n}")
}

func TestDemoApplicationIsIdempotent(t *testing.T) {
	first := run(t, Options{NewLine: "\n"}, loadDemo(t, "\n"))

	var again []models.SourceFile
	for _, f := range first.Files {
		again = append(again, models.SourceFile{Path: f.Path, Content: f.Content})
	}
	second := run(t, Options{NewLine: "\n"}, again)

	require.Len(t, second.Files, len(first.Files))
	for _, f := range first.Files {
		assert.Equal(t, string(f.Content), contentOf(t, second, f.Path), f.Path)
	}
}

func TestDemoApplicationCRLF(t *testing.T) {
	lf := run(t, Options{NewLine: "\n"}, loadDemo(t, "\n"))
	crlf := run(t, Options{NewLine: "\r\n"}, loadDemo(t, "\r\n"))

	require.Len(t, crlf.Files, len(lf.Files))
	for i, f := range crlf.Files {
		assert.Equal(t, lf.Files[i].Path, f.Path)
		assert.Equal(t, string(lf.Files[i].Content), strings.ReplaceAll(string(f.Content), "\r\n", "\n"), f.Path)
		assert.NotContains(t, strings.ReplaceAll(string(f.Content), "\r\n", ""), "\n", f.Path)
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := Options{NewLine: "\n"}
	require.NoError(t, opts.Validate())
	assert.Equal(t, DefaultExtension, opts.Extension)

	err := (&Options{}).Validate()
	assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))

	err = (&Options{NewLine: "\n", Extension: "ts"}).Validate()
	assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))
	assert.Contains(t, err.Error(), "must start with '.'")

	_, err = New(Options{}, nil)
	assert.Error(t, err)

	assert.NotEmpty(t, DefaultOptions().NewLine)
}

func TestProcessFailureIsSticky(t *testing.T) {
	tr, err := New(Options{NewLine: "\n"}, nil)
	require.NoError(t, err)

	bad := models.SourceFile{Path: "bad.ts", Content: []byte("module a {\n}\nmodule b {\n}")}
	err = tr.Process(bad)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.DuplicateModuleDeclarationCode))

	good := models.SourceFile{Path: "good.ts", Content: []byte("module c {\n}")}
	assert.Equal(t, err, tr.Process(good))

	out := &Collector{}
	assert.Equal(t, err, tr.Emit(out))
	assert.Empty(t, out.Files)
}

func TestEmitRunsOnce(t *testing.T) {
	tr, err := New(Options{NewLine: "\n"}, nil)
	require.NoError(t, err)
	require.NoError(t, tr.Process(models.SourceFile{Path: "a.ts", Content: []byte("class A {\n}")}))

	out := &Collector{}
	require.NoError(t, tr.Emit(out))
	assert.Len(t, out.Files, 1)

	assert.Error(t, tr.Emit(out))
	assert.Error(t, tr.Process(models.SourceFile{Path: "b.ts"}))
	assert.Len(t, out.Files, 1)
}

func TestEmitUnresolvedProducesNothing(t *testing.T) {
	tr, err := New(Options{NewLine: "\n"}, nil)
	require.NoError(t, err)

	for _, f := range loadDemo(t, "\n") {
		if strings.HasPrefix(f.Path, "services/") {
			continue
		}
		require.NoError(t, tr.Process(f))
	}

	var pushed int
	err = tr.Emit(SinkFunc(func(models.OutputFile) error {
		pushed++
		return nil
	}))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.UnresolvedDependencyCode))
	assert.Zero(t, pushed)
}

func TestEmitSinkError(t *testing.T) {
	tr, err := New(Options{NewLine: "\n"}, nil)
	require.NoError(t, err)
	require.NoError(t, tr.Process(models.SourceFile{Path: "a.ts", Content: []byte("class A {\n}")}))

	sinkErr := stderrors.New("disk full")
	err = tr.Emit(SinkFunc(func(models.OutputFile) error { return sinkErr }))
	assert.ErrorIs(t, err, sinkErr)
	assert.Contains(t, err.Error(), "push a.ts")
}

func TestStats(t *testing.T) {
	tr, err := New(Options{NewLine: "\n"}, nil)
	require.NoError(t, err)
	for _, f := range loadDemo(t, "\n") {
		require.NoError(t, tr.Process(f))
	}

	stats := tr.Stats()
	assert.Equal(t, 6, stats.Files)
	assert.Equal(t, 4, stats.Modules)
	assert.Equal(t, 2, stats.Controllers)
	assert.Equal(t, 2, stats.Services)
	assert.Equal(t, 1, stats.Filters)
	assert.NotEmpty(t, tr.SessionID())
}
