package annotations

import (
	"fmt"
	"regexp"

	"github.com/toyz/tsng/internal/models"
)

var (
	simpleName = regexp.MustCompile(`^[\w$]+$`)
	dottedName = regexp.MustCompile(`^[\w$]+(?:\.[\w$]+)*$`)
)

// Schema describes which arguments an annotation kind accepts
type Schema struct {
	Kind        models.Kind
	Description string
	AllowDotted bool // name may be a dotted namespace path
	AllowSkip   bool // skip=true is accepted
	RequireName bool // an explicit name is mandatory
	Examples    []string
}

// BuiltinSchemas returns the schemas keyed by annotation tag without the leading '@'
func BuiltinSchemas() map[string]Schema {
	return map[string]Schema{
		"NgModule": {
			Kind:        models.KindModule,
			Description: "Marks the following namespace declaration as a module, optionally renaming it",
			AllowDotted: true,
			Examples:    []string{"//@NgModule", "//@NgModule('my.app')"},
		},
		"NgController": {
			Kind:        models.KindController,
			Description: "Registers the following class ending in 'Controller' as a controller",
			AllowSkip:   true,
			Examples:    []string{"//@NgController", "//@NgController('Home')", "//@NgController(skip=true)"},
		},
		"NgService": {
			Kind:        models.KindService,
			Description: "Registers the following class ending in 'Service' as a service",
			Examples:    []string{"//@NgService", "//@NgService('IGreetingService')"},
		},
		"NgDirective": {
			Kind:        models.KindDirective,
			Description: "Adds one directive alias for the following class ending in 'Directive'",
			RequireName: true,
			Examples:    []string{"//@NgDirective('myWidget')"},
		},
		"NgFilter": {
			Kind:        models.KindFilter,
			Description: "Registers the following function as a filter",
			Examples:    []string{"//@NgFilter", "//@NgFilter('truncate')"},
		},
	}
}

// Validate checks the annotation's argument against the schema
func (s Schema) Validate(a *ParsedAnnotation) error {
	if a.Skip && !s.AllowSkip {
		return fmt.Errorf("%s does not accept %s", a.Tag, SkipValue)
	}
	if a.Skip {
		return nil
	}

	if !a.HasName() {
		if s.RequireName {
			return fmt.Errorf("%s requires a name, e.g. %s", a.Tag, s.Examples[0])
		}
		return nil
	}

	pattern := simpleName
	if s.AllowDotted {
		pattern = dottedName
	}
	if !pattern.MatchString(a.Name) {
		return fmt.Errorf("%s has an invalid name '%s'", a.Tag, a.Name)
	}
	return nil
}

func errUnknownTag(tag string) error {
	return fmt.Errorf("unknown annotation %s", tag)
}
