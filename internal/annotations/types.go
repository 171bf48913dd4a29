package annotations

import "github.com/toyz/tsng/internal/models"

// SkipValue is the literal override that cancels a controller registration
const SkipValue = "skip=true"

// ParsedAnnotation represents one recognised //@Ng<Kind> comment line
type ParsedAnnotation struct {
	Kind models.Kind // component kind the annotation introduces
	Tag  string      // annotation tag as written, e.g. "@NgService"
	Name string      // explicit name argument, quotes removed
	Skip bool        // true for the skip=true override
	Raw  string      // original line text
}

// HasName reports whether the annotation carried an explicit name
func (a *ParsedAnnotation) HasName() bool {
	return a.Name != ""
}

// Argument returns the argument as written back in diagnostics
func (a *ParsedAnnotation) Argument() string {
	if a.Skip {
		return SkipValue
	}
	return a.Name
}
