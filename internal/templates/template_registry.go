package templates

// TemplateRegistry provides a centralized way to access all snippet templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerModuleTemplates()
	registry.registerComponentTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerModuleTemplates registers the module file and module registration templates.
// Templates are written with "\n" and converted to the session line separator after rendering.
func (tr *TemplateRegistry) registerModuleTemplates() {
	// Inserted right after the namespace opening line of a home file
	tr.templates["module-registration"] = `    angular.module({{quote .Name}}, [
{{range .Dependencies}}        {{quote .}},
{{end}}    ]){{range .Phases}}.{{.Method}}([
{{range .Dependencies}}        {{quote .}},
{{end}}        {{.Function}}
    ]){{end}};

`

	// A whole new file for a module without a home file
	tr.templates["module-file"] = `module {{.Name}} {
    angular.module({{quote .Name}}, []);
}`
}

// registerComponentTemplates registers the templates spliced into component files
func (tr *TemplateRegistry) registerComponentTemplates() {
	tr.templates["reference"] = `/// <reference path={{quote .Path}} />

`

	tr.templates["bind-block"] = `{{if .Constructor}}        constructor() {
{{end}}            for (var m in this) {
                if (this[m].bind) {
                    this[m] = this[m].bind(this);
                }
            }
{{if .Constructor}}        }

{{end}}`

	tr.templates["component-registration"] = `{{"    "}}
    angular.module({{quote .Module}}){{range .Components}}
{{if .Filter}}        .filter({{quote .Name}}, () => {{.Implementation}}){{else}}        .{{.Method}}({{quote .Name}}, [
{{range .Dependencies}}            {{quote .}},
{{end}}{{if .Directive}}            function ({{join .FactoryParams ","}}) {
                return new {{.Implementation}}({{join .FactoryParams ","}});
            }
{{else}}            {{.Implementation}}
{{end}}        ]){{end}}{{end}};
`
}
