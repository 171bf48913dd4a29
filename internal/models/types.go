package models

import "strings"

// Kind identifies the framework-managed component a declaration registers as
type Kind int

const (
	KindModule Kind = iota
	KindController
	KindService
	KindDirective
	KindFilter
)

// String returns the registration method name used for the kind
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindController:
		return "controller"
	case KindService:
		return "service"
	case KindDirective:
		return "directive"
	case KindFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// BuiltinPrefix marks host-runtime services that are injected by name without resolution
const BuiltinPrefix = "$"

// Dependency is a single injected parameter: its declared name and its optional type
type Dependency struct {
	Name string // parameter name as written
	Type string // declared type, empty when the parameter is untyped
}

// IsBuiltin reports whether the dependency refers to a host-runtime service by name
func (d Dependency) IsBuiltin() bool {
	return strings.HasPrefix(d.Name, BuiltinPrefix)
}

// PhaseFunction describes a module's configuration or run phase function
type PhaseFunction struct {
	Name         string
	Dependencies []Dependency
}
