package transform

import "github.com/toyz/tsng/internal/models"

// Sink receives output files from Emit
type Sink interface {
	Push(file models.OutputFile) error
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(file models.OutputFile) error

// Push calls f(file)
func (f SinkFunc) Push(file models.OutputFile) error {
	return f(file)
}

// Collector is a Sink that keeps every pushed file in memory
type Collector struct {
	Files []models.OutputFile
}

// Push appends file to the collected files
func (c *Collector) Push(file models.OutputFile) error {
	c.Files = append(c.Files, file)
	return nil
}

// Get returns the collected file with the given path
func (c *Collector) Get(path string) (models.OutputFile, bool) {
	for _, f := range c.Files {
		if f.Path == path {
			return f, true
		}
	}
	return models.OutputFile{}, false
}
