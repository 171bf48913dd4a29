package parser

import (
	"strings"

	"github.com/toyz/tsng/internal/models"
)

// ExtractModuleHeader detects a module's startup scaffolding anywhere in content: the
// dependency list literal, the configuration function and the run function. Name and
// DeclarationLine are left for the caller.
func ExtractModuleHeader(content string) *models.ModuleRecord {
	module := &models.ModuleRecord{}

	if m := dependencyListPattern.FindStringSubmatch(content); m != nil {
		module.FileExisted = true
		module.Dependencies = parseDependencyList(m[1])
	}

	if m := configFunctionPattern.FindStringSubmatch(content); m != nil {
		module.FileExisted = true
		module.Config = &models.PhaseFunction{Name: m[1], Dependencies: parseParameters(m[2])}
	}

	if m := runFunctionPattern.FindStringSubmatch(content); m != nil {
		module.FileExisted = true
		module.Run = &models.PhaseFunction{Name: m[1], Dependencies: parseParameters(m[2])}
	}

	return module
}

// parseDependencyList splits the members of a dependency array literal
func parseDependencyList(members string) []string {
	var deps []string
	for _, member := range strings.Split(members, ",") {
		dep := strings.Trim(strings.TrimSpace(member), `"'`)
		if dep == "" {
			continue
		}
		deps = append(deps, dep)
	}
	return deps
}
