package models

// ModuleRecord represents one logical module, merged across every file that declares it
type ModuleRecord struct {
	Name            string         // dotted namespace path, unique key
	FileExisted     bool           // whether a file already implements the startup phase
	Dependencies    []string       // entries of the dependency-list literal, in order
	Config          *PhaseFunction // configuration-phase function, if any
	Run             *PhaseFunction // run-phase function, if any
	DeclarationLine int            // 0-based line of the namespace opening line in the home file
	HomeFile        *FileResult    // the file owning the home declaration, at most one
}

// HasHome reports whether a home file has been attached to the module
func (m *ModuleRecord) HasHome() bool {
	return m.HomeFile != nil
}

// Prefix returns the namespace prefix used for registered component names
func (m *ModuleRecord) Prefix() string {
	if m == nil || m.Name == "" {
		return ""
	}
	return m.Name + "."
}
