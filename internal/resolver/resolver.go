package resolver

import (
	"strings"

	"github.com/toyz/tsng/internal/models"
)

// Resolver matches dependency type names against a closed set of registered names,
// relative to the namespace of the module that references them
type Resolver struct {
	candidates map[string]struct{}
}

// New creates a resolver over the given fully-qualified candidate names
func New(candidates []string) *Resolver {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	return &Resolver{candidates: set}
}

// Resolve returns the registered name typeName refers to from inside moduleName.
//
// Built-in names ($-prefixed) come back unchanged. For a single-segment module the only
// candidate is moduleName.typeName. For a dotted module every enclosing prefix is tried,
// longest first, so "services.Greeting" referenced from "demo.controllers" finds
// "demo.services.Greeting".
func (r *Resolver) Resolve(typeName, moduleName string) (string, bool) {
	if strings.HasPrefix(typeName, models.BuiltinPrefix) {
		return typeName, true
	}
	if typeName == "" {
		return "", false
	}

	segments := strings.Split(moduleName, ".")
	for n := len(segments); n > 0; n-- {
		candidate := strings.Join(segments[:n], ".") + "." + typeName
		if r.Has(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Has reports whether name is one of the candidates
func (r *Resolver) Has(name string) bool {
	_, ok := r.candidates[name]
	return ok
}
