package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/tsng/internal/utils/fileops"
)

// recursiveSuffix marks a source directory that is walked recursively
const recursiveSuffix = "/..."

// BaseResolver works out the directory that output paths are relative to
type BaseResolver struct {
	paths *fileops.PathValidator
}

// NewBaseResolver creates a new base resolver
func NewBaseResolver() *BaseResolver {
	return &BaseResolver{paths: fileops.NewPathValidator()}
}

// ResolveBase returns the absolute base directory. If customBase is provided it is used,
// otherwise the deepest directory containing every source is chosen.
func (r *BaseResolver) ResolveBase(customBase string, sources []string) (string, error) {
	if customBase != "" {
		base, err := filepath.Abs(customBase)
		if err != nil {
			return "", fmt.Errorf("failed to resolve base directory: %w", err)
		}
		return base, nil
	}

	if len(sources) == 0 {
		return "", fmt.Errorf("no sources to derive a base directory from (consider using --base)")
	}

	var common string
	for i, source := range sources {
		dir, _ := SplitSource(source)
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve source %s: %w", source, err)
		}
		if r.paths.IsFile(abs) {
			abs = filepath.Dir(abs)
		}

		if i == 0 {
			common = abs
			continue
		}
		for !isWithin(common, abs) {
			parent := filepath.Dir(common)
			if parent == common {
				break
			}
			common = parent
		}
	}

	return common, nil
}

// RelativePath returns path relative to base with forward slashes, as the transform expects
func (r *BaseResolver) RelativePath(base, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("failed to calculate relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside of the base directory %s", path, base)
	}

	return filepath.ToSlash(rel), nil
}

// SplitSource strips the recursive marker from a source, reporting whether it was present
func SplitSource(source string) (string, bool) {
	source = filepath.ToSlash(source)
	if source == "..." {
		return ".", true
	}
	if strings.HasSuffix(source, recursiveSuffix) {
		dir := strings.TrimSuffix(source, recursiveSuffix)
		if dir == "" {
			dir = "."
		}
		return filepath.FromSlash(dir), true
	}
	return filepath.FromSlash(source), false
}

// isWithin reports whether path is dir or lies below it
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
