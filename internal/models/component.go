package models

// ComponentRecord is a discovered controller, service, directive or filter
type ComponentRecord struct {
	Kind               Kind
	Module             *ModuleRecord // owning module, nil if declared before any module line
	RegisteredName     string        // name the component registers under
	ImplementationName string        // identifier of the class or function as declared
	Dependencies       []Dependency  // constructor parameters, in order
	SourceFile         string

	// Constructor location; only meaningful when HasConstructor is set.
	HasConstructor bool
	CtorStartLine  int
	CtorEndLine    int

	// DeclarationLine is the 0-based line of the class or function declaration.
	DeclarationLine int
}

// Label returns a human readable description used in diagnostics
func (c *ComponentRecord) Label() string {
	return c.Kind.String() + " " + c.RegisteredName
}
