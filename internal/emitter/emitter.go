package emitter

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/models"
	"github.com/toyz/tsng/internal/registry"
	"github.com/toyz/tsng/internal/resolver"
	"github.com/toyz/tsng/internal/templates"
)

// bindMarker is the first line of an injected bind block
const bindMarker = "for (var m in this) {"

// Options controls how output is written
type Options struct {
	NewLine   string // line separator used to split input and join output
	Extension string // suffix of synthesized module files
}

// Emitter turns an aggregated registry into output files
type Emitter struct {
	reg      *registry.Registry
	opts     Options
	renderer *templates.Renderer

	modules  *resolver.Resolver
	services *resolver.Resolver

	// modulePaths maps a module name to the path of the file that registers it
	modulePaths map[string]string
}

// New creates an emitter for the given registry
func New(reg *registry.Registry, opts Options) *Emitter {
	return &Emitter{
		reg:         reg,
		opts:        opts,
		renderer:    templates.NewRenderer(opts.NewLine),
		modules:     resolver.New(reg.ModuleNames()),
		services:    resolver.New(reg.ServiceNames()),
		modulePaths: make(map[string]string),
	}
}

// Emit builds every output file in memory. Nothing is returned unless all files succeed.
// Order: module files, then updated component files, then untouched files.
func (e *Emitter) Emit() ([]models.OutputFile, error) {
	var outputs []models.OutputFile
	emitted := make(map[string]bool)

	for _, module := range e.reg.Modules() {
		if module.HasHome() {
			e.modulePaths[module.Name] = module.HomeFile.Path
		} else {
			e.modulePaths[module.Name] = module.Name + e.opts.Extension
		}
	}

	for _, module := range e.reg.Modules() {
		out, err := e.moduleFile(module)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
		emitted[out.Path] = true
	}

	for _, file := range e.reg.Files() {
		content, err := e.componentFile(file)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, models.OutputFile{Path: file.Path, Content: []byte(content)})
		emitted[file.Path] = true
	}

	for _, file := range e.reg.PassThrough() {
		if emitted[file.Path] {
			continue
		}
		outputs = append(outputs, models.OutputFile{Path: file.Path, Content: []byte(file.Content)})
		emitted[file.Path] = true
	}

	return outputs, nil
}

// moduleFile synthesizes a missing module file or updates the home file
func (e *Emitter) moduleFile(module *models.ModuleRecord) (models.OutputFile, error) {
	if !module.HasHome() {
		content, err := e.renderer.ModuleFile(module.Name)
		if err != nil {
			return models.OutputFile{}, errors.WrapTemplateError("module-file", "render", err)
		}
		return models.OutputFile{Path: e.modulePaths[module.Name], Content: []byte(content), Created: true}, nil
	}

	home := module.HomeFile
	s := newSplicer(home.Content, e.opts.NewLine)

	target := module.DeclarationLine + 1
	if !e.hasModuleRegistration(s, target, module.Name) {
		data, err := e.moduleRegistrationData(module)
		if err != nil {
			return models.OutputFile{}, err
		}
		text, err := e.renderer.ModuleRegistration(data)
		if err != nil {
			return models.OutputFile{}, errors.WrapTemplateError("module-registration", "render", err)
		}
		s.insertBefore(target, text)
	}

	if home.HasComponents() {
		if err := e.spliceComponents(s, home, false); err != nil {
			return models.OutputFile{}, err
		}
	}

	return models.OutputFile{Path: home.Path, Content: []byte(s.String())}, nil
}

func (e *Emitter) hasModuleRegistration(s *splicer, target int, name string) bool {
	line, ok := s.line(target)
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(line), `angular.module("`+name+`", [`)
}

func (e *Emitter) moduleRegistrationData(module *models.ModuleRecord) (templates.ModuleRegistrationData, error) {
	data := templates.ModuleRegistrationData{Name: module.Name}

	// external modules such as ngRoute keep their raw name
	for _, dep := range module.Dependencies {
		if resolved, ok := e.modules.Resolve(dep, module.Name); ok {
			dep = resolved
		}
		data.Dependencies = append(data.Dependencies, dep)
	}

	phases := []struct {
		method string
		fn     *models.PhaseFunction
	}{
		{"config", module.Config},
		{"run", module.Run},
	}
	for _, phase := range phases {
		if phase.fn == nil {
			continue
		}
		owner := "module function " + module.Name + "." + phase.method
		deps, err := e.resolveDependencies(phase.fn.Dependencies, module.Name, module.HomeFile.Path, owner)
		if err != nil {
			return data, err
		}
		data.Phases = append(data.Phases, templates.PhaseData{
			Method:       phase.method,
			Function:     phase.fn.Name,
			Dependencies: deps,
		})
	}
	return data, nil
}

// componentFile rewrites a non-home file that declares components
func (e *Emitter) componentFile(file *models.FileResult) (string, error) {
	s := newSplicer(file.Content, e.opts.NewLine)
	if err := e.spliceComponents(s, file, true); err != nil {
		return "", err
	}
	return s.String(), nil
}

// spliceComponents queues the reference line, the bind block and the registration chain
func (e *Emitter) spliceComponents(s *splicer, file *models.FileResult, withReference bool) error {
	if file.ClosingBraceLine < 0 {
		return errors.New(errors.MalformedAnnotationCode, "no standalone closing brace to place registrations before").
			WithLocation(errors.SourceLocation{File: file.Path}).
			WithSuggestion("Close the namespace with a '}' on its own line")
	}

	module := file.Module

	if withReference {
		text, err := e.renderer.Reference(referencePath(file.Path, e.modulePaths[module.Name]))
		if err != nil {
			return errors.WrapTemplateError("reference", "render", err)
		}
		first, _ := s.line(0)
		if strings.TrimSpace(first) != strings.TrimSpace(strings.SplitN(text, e.opts.NewLine, 2)[0]) {
			s.insertBefore(0, text)
		}
	}

	if len(file.Directives) > 0 {
		directive := file.Directives[0]
		target := directive.DeclarationLine + 1
		if directive.HasConstructor {
			target = directive.CtorEndLine + 1
		}
		if line, _ := s.line(target); strings.TrimSpace(line) != bindMarker {
			text, err := e.renderer.BindBlock(!directive.HasConstructor)
			if err != nil {
				return errors.WrapTemplateError("bind-block", "render", err)
			}
			s.insertBefore(target, text)
		}
	}

	if e.hasComponentRegistration(s, module.Name) {
		return nil
	}

	data := templates.ComponentRegistrationData{Module: module.Name}
	for _, c := range file.Components() {
		deps, err := e.resolveDependencies(c.Dependencies, module.Name, file.Path, c.Label())
		if err != nil {
			return err
		}
		component := templates.ComponentData{
			Method:         c.Kind.String(),
			Name:           c.RegisteredName,
			Implementation: c.ImplementationName,
			Dependencies:   deps,
			Directive:      c.Kind == models.KindDirective,
			Filter:         c.Kind == models.KindFilter,
		}
		if component.Directive {
			component.FactoryParams = templates.FactoryParams(len(deps))
		}
		data.Components = append(data.Components, component)
	}

	text, err := e.renderer.ComponentRegistration(data)
	if err != nil {
		return errors.WrapTemplateError("component-registration", "render", err)
	}
	s.insertBefore(file.ClosingBraceLine, text)
	return nil
}

func (e *Emitter) hasComponentRegistration(s *splicer, name string) bool {
	pattern := regexp.MustCompile(`^\s*angular\.module\("` + regexp.QuoteMeta(name) + `"\)\s*$`)
	for _, line := range s.lines {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// resolveDependencies maps injected parameters to registered names. Built-ins are injected
// by parameter name, everything else by resolved type.
func (e *Emitter) resolveDependencies(deps []models.Dependency, moduleName, file, owner string) ([]string, error) {
	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		if dep.IsBuiltin() {
			names = append(names, dep.Name)
			continue
		}
		resolved, ok := e.services.Resolve(dep.Type, moduleName)
		if !ok {
			return nil, errors.NewUnresolvedDependencyError(file, owner, dep.Type).
				WithContext("parameter", dep.Name).
				WithContext("module", moduleName)
		}
		names = append(names, resolved)
	}
	return names, nil
}

// referencePath returns the slash-separated path of target relative to the directory of from
func referencePath(from, target string) string {
	rel, err := filepath.Rel(filepath.Dir(filepath.FromSlash(from)), filepath.FromSlash(target))
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
