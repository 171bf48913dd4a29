package models

// SourceFile is one input file supplied by the host pipeline
type SourceFile struct {
	Path    string
	Content []byte
}

// OutputFile is one file pushed back to the host pipeline
type OutputFile struct {
	Path    string
	Content []byte
	Created bool // true for synthesized module files
}

// FileResult is the scan output for one file
type FileResult struct {
	Path    string
	Content string
	Module  *ModuleRecord

	Controllers []*ComponentRecord
	Services    []*ComponentRecord
	Directives  []*ComponentRecord
	Filters     []*ComponentRecord

	// ClosingBraceLine is the 0-based index of the last standalone closing brace, -1 if none.
	ClosingBraceLine int
}

// NewFileResult creates an empty result for the given file
func NewFileResult(path, content string) *FileResult {
	return &FileResult{
		Path:             path,
		Content:          content,
		ClosingBraceLine: -1,
	}
}

// Components returns every component in registration order: controllers, services,
// directives, then filters
func (r *FileResult) Components() []*ComponentRecord {
	all := make([]*ComponentRecord, 0, r.ComponentCount())
	all = append(all, r.Controllers...)
	all = append(all, r.Services...)
	all = append(all, r.Directives...)
	all = append(all, r.Filters...)
	return all
}

// ComponentCount returns the number of components discovered in the file
func (r *FileResult) ComponentCount() int {
	return len(r.Controllers) + len(r.Services) + len(r.Directives) + len(r.Filters)
}

// HasComponents reports whether the file declared at least one component
func (r *FileResult) HasComponents() bool {
	return r.ComponentCount() > 0
}

// Add appends a component to the list for its kind
func (r *FileResult) Add(c *ComponentRecord) {
	switch c.Kind {
	case KindController:
		r.Controllers = append(r.Controllers, c)
	case KindService:
		r.Services = append(r.Services, c)
	case KindDirective:
		r.Directives = append(r.Directives, c)
	case KindFilter:
		r.Filters = append(r.Filters, c)
	}
}
