package cli

import (
	"github.com/toyz/tsng/internal/models"
	"github.com/toyz/tsng/internal/utils/fileops"
)

// OutputWriter is a transform sink that writes each pushed file under a root directory
type OutputWriter struct {
	root    string
	fileOps *fileops.FileOps

	written []string
	created []string
}

// NewOutputWriter creates a writer rooted at dir
func NewOutputWriter(dir string) *OutputWriter {
	return &OutputWriter{
		root:    dir,
		fileOps: fileops.NewFileOps(),
	}
}

// Push writes file to its path under the root, creating directories as needed
func (w *OutputWriter) Push(file models.OutputFile) error {
	target, err := w.fileOps.PathValidator().Join(w.root, file.Path)
	if err != nil {
		return err
	}

	if err := w.fileOps.WriteFile(target, file.Content, 0644); err != nil {
		return err
	}

	w.written = append(w.written, target)
	if file.Created {
		w.created = append(w.created, target)
	}
	return nil
}

// Written returns every file written so far, in push order
func (w *OutputWriter) Written() []string {
	return w.written
}

// Created returns the synthesized module files written so far
func (w *OutputWriter) Created() []string {
	return w.created
}
