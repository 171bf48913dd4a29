package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/toyz/tsng/internal/templates"
	"github.com/toyz/tsng/internal/utils"
	"github.com/toyz/tsng/internal/utils/fileops"
)

// Cleaner removes synthesized module files from an output directory
type Cleaner struct {
	fileOps *fileops.FileOps
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileOps: fileops.NewFileOps(),
	}
}

// CleanGeneratedFiles removes every module file a previous run synthesized directly under dir.
// A file only counts as synthesized when its content is exactly the generated module file
// for its name, so hand-written module files are never touched.
func (c *Cleaner) CleanGeneratedFiles(dir, extension string) ([]string, error) {
	if !c.fileOps.IsDir(dir) {
		return nil, nil
	}

	candidates, err := utils.WalkFiles(dir, utils.FileWalkOptions{
		FileFilter:      utils.SourceFileFilter(dir, extension, nil),
		DirectoryFilter: func(string, fs.DirEntry) bool { return false },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clean directory %s: %w", dir, err)
	}

	var removed []string
	for _, path := range candidates {
		generated, err := c.isGenerated(path, extension)
		if err != nil {
			return removed, err
		}
		if !generated {
			continue
		}

		if err := c.fileOps.RemoveFile(path); err != nil {
			return removed, err
		}
		removed = append(removed, path)
	}

	return removed, nil
}

// isGenerated compares the file with the module file rendered for its name
func (c *Cleaner) isGenerated(path, extension string) (bool, error) {
	content, err := c.fileOps.ReadFile(path)
	if err != nil {
		return false, err
	}

	name := strings.TrimSuffix(filepath.Base(path), extension)
	expected, err := templates.NewRenderer(DetectNewLine(content)).ModuleFile(name)
	if err != nil {
		return false, err
	}
	return string(content) == expected, nil
}
