package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/toyz/tsng/internal/models"
	"github.com/toyz/tsng/internal/utils"
	"github.com/toyz/tsng/internal/utils/fileops"
)

// DirectoryScanner supplies the source files of a run, in a stable order
type DirectoryScanner struct {
	fileOps *fileops.FileOps
	base    *BaseResolver
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileOps: fileops.NewFileOps(),
		base:    NewBaseResolver(),
	}
}

// ScanSources reads every source file matching extension, with paths relative to base.
// Sources ending in "/..." are walked recursively, other directories only one level deep.
// A file listed twice is returned once, at its first position.
func (s *DirectoryScanner) ScanSources(base string, sources []string, extension string, exclude []string) ([]models.SourceFile, error) {
	var files []models.SourceFile
	seen := make(map[string]bool)

	for _, source := range sources {
		paths, err := s.sourcePaths(source, extension, exclude)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			rel, err := s.base.RelativePath(base, path)
			if err != nil {
				return nil, utils.WrapProcessError("source "+source, err)
			}
			if seen[rel] {
				continue
			}
			seen[rel] = true

			content, err := s.fileOps.ReadFile(path)
			if err != nil {
				return nil, err
			}
			files = append(files, models.SourceFile{Path: rel, Content: content})
		}
	}

	return files, nil
}

// sourcePaths lists the files selected by one source argument
func (s *DirectoryScanner) sourcePaths(source, extension string, exclude []string) ([]string, error) {
	dir, recursive := SplitSource(source)
	dir = filepath.Clean(dir)

	if !recursive && s.fileOps.IsFile(dir) {
		return []string{dir}, nil
	}
	if !s.fileOps.IsDir(dir) {
		return nil, fmt.Errorf("source %s is not a directory", source)
	}

	dirFilter := utils.DefaultDirectoryFilter()
	if !recursive {
		dirFilter = func(string, fs.DirEntry) bool { return false }
	}

	return utils.WalkFiles(dir, utils.FileWalkOptions{
		FileFilter:      utils.SourceFileFilter(dir, extension, exclude),
		DirectoryFilter: dirFilter,
	})
}
