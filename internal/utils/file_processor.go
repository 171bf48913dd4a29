package utils

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DeclarationSuffix marks ambient declaration files, which never carry registrations
const DeclarationSuffix = ".d.ts"

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// SourceFileFilter accepts files ending in extension, skipping declaration files and any
// file whose slash-separated path relative to root matches one of the exclude patterns
func SourceFileFilter(root, extension string, exclude []string) FileFilter {
	return func(path string, info fs.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		name := info.Name()
		if !strings.HasSuffix(name, extension) || strings.HasSuffix(name, DeclarationSuffix) {
			return false
		}

		return !Excluded(root, path, exclude)
	}
}

// Excluded reports whether path, relative to root, matches one of the patterns.
// Patterns are matched against the relative path and against the base name.
func Excluded(root, path string, patterns []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// DefaultDirectoryFilter skips directories that never hold application sources
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"node_modules":     true,
		"bower_components": true,
		"jspm_packages":    true,
		".git":             true,
		".svn":             true,
		".hg":              true,
	}

	return func(path string, info fs.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// WalkFiles walks a directory tree and returns the matching files in lexical order.
// The directory filter is not applied to rootDir itself.
func WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matchedFiles = append(matchedFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, WrapProcessError("directory "+rootDir, err)
	}

	sort.Strings(matchedFiles)
	return matchedFiles, nil
}
