package registry

import (
	"github.com/google/uuid"

	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/models"
	"github.com/toyz/tsng/internal/utils"
)

// Stats holds running totals for one session
type Stats struct {
	Files       int
	PassThrough int
	Modules     int
	Controllers int
	Services    int
	Directives  int
	Filters     int
}

// Components returns the total number of registered components
func (s Stats) Components() int {
	return s.Controllers + s.Services + s.Directives + s.Filters
}

// Registry aggregates scan results for one invocation. Modules and buffered files keep
// first-seen order, which is the order they are emitted in.
type Registry struct {
	id          string
	modules     *utils.Registry[string, *models.ModuleRecord]
	files       *utils.Registry[string, *models.FileResult]
	passThrough []*models.FileResult

	controllers []*models.ComponentRecord
	services    []*models.ComponentRecord
	directives  []*models.ComponentRecord
	filters     []*models.ComponentRecord

	stats Stats
}

// New creates an empty registry with a fresh session id
func New() *Registry {
	return &Registry{
		id:      uuid.New().String(),
		modules: utils.NewRegistry[string, *models.ModuleRecord]("module"),
		files:   utils.NewRegistry[string, *models.FileResult]("file"),
	}
}

// ID returns the session id
func (r *Registry) ID() string {
	return r.id
}

// Add merges one file's scan result into the session
func (r *Registry) Add(result *models.FileResult) error {
	r.stats.Files++

	if result.Module == nil {
		if result.HasComponents() {
			first := result.Components()[0]
			return errors.Newf(errors.MalformedAnnotationCode, "%s '%s' is declared outside of a module", first.Kind, first.RegisteredName).
				WithLocation(errors.SourceLocation{File: result.Path, Line: first.DeclarationLine + 1}).
				WithSuggestion("Wrap the declaration in a namespace, e.g. module my.module {")
		}
		r.addPassThrough(result)
		return nil
	}

	home := result.Module.FileExisted
	if !home && !result.HasComponents() {
		// nothing to register and nothing to write
		r.addPassThrough(result)
		return nil
	}

	record, err := r.mergeModule(result, home)
	if err != nil {
		return err
	}

	result.Module = record
	for _, c := range result.Components() {
		c.Module = record
	}

	if !home {
		if err := r.files.Register(result.Path, result); err != nil {
			return err
		}
	}

	r.controllers = append(r.controllers, result.Controllers...)
	r.services = append(r.services, result.Services...)
	r.directives = append(r.directives, result.Directives...)
	r.filters = append(r.filters, result.Filters...)

	r.stats.Controllers += len(result.Controllers)
	r.stats.Services += len(result.Services)
	r.stats.Directives += len(result.Directives)
	r.stats.Filters += len(result.Filters)
	return nil
}

// mergeModule registers the result's module or folds it into the known record of the same name
func (r *Registry) mergeModule(result *models.FileResult, home bool) (*models.ModuleRecord, error) {
	incoming := result.Module

	existing, known := r.modules.Get(incoming.Name)
	if !known {
		if home {
			incoming.HomeFile = result
		}
		if err := r.modules.Register(incoming.Name, incoming); err != nil {
			return nil, err
		}
		r.stats.Modules++
		return incoming, nil
	}

	if !home {
		return existing, nil
	}
	if existing.HasHome() {
		return nil, errors.NewDuplicateHomeError(incoming.Name, existing.HomeFile.Path, result.Path)
	}

	existing.FileExisted = true
	existing.Dependencies = incoming.Dependencies
	existing.Config = incoming.Config
	existing.Run = incoming.Run
	existing.DeclarationLine = incoming.DeclarationLine
	existing.HomeFile = result
	return existing, nil
}

func (r *Registry) addPassThrough(result *models.FileResult) {
	r.passThrough = append(r.passThrough, result)
	r.stats.PassThrough++
}

// Modules returns the registered modules in first-seen order
func (r *Registry) Modules() []*models.ModuleRecord {
	return r.modules.Values()
}

// Module looks up a registered module by name
func (r *Registry) Module(name string) (*models.ModuleRecord, bool) {
	return r.modules.Get(name)
}

// Files returns the buffered non-home files in arrival order
func (r *Registry) Files() []*models.FileResult {
	return r.files.Values()
}

// PassThrough returns files that need no rewriting, in arrival order
func (r *Registry) PassThrough() []*models.FileResult {
	return r.passThrough
}

// ModuleNames returns every registered module name
func (r *Registry) ModuleNames() []string {
	return r.modules.Keys()
}

// ServiceNames returns the registered name of every service
func (r *Registry) ServiceNames() []string {
	names := make([]string, 0, len(r.services))
	for _, s := range r.services {
		names = append(names, s.RegisteredName)
	}
	return names
}

// Controllers returns every registered controller in discovery order
func (r *Registry) Controllers() []*models.ComponentRecord { return r.controllers }

// Services returns every registered service in discovery order
func (r *Registry) Services() []*models.ComponentRecord { return r.services }

// Directives returns every registered directive in discovery order
func (r *Registry) Directives() []*models.ComponentRecord { return r.directives }

// Filters returns every registered filter in discovery order
func (r *Registry) Filters() []*models.ComponentRecord { return r.filters }

// Stats returns the running totals
func (r *Registry) Stats() Stats {
	return r.stats
}
