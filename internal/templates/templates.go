package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// PhaseData is a chained .config([...]) or .run([...]) call
type PhaseData struct {
	Method       string // "config" or "run"
	Function     string // implementation identifier
	Dependencies []string
}

// ModuleRegistrationData is the data for the module-registration template
type ModuleRegistrationData struct {
	Name         string
	Dependencies []string
	Phases       []PhaseData
}

// ModuleFileData is the data for the module-file template
type ModuleFileData struct {
	Name string
}

// ReferenceData is the data for the reference template
type ReferenceData struct {
	Path string
}

// BindBlockData is the data for the bind-block template
type BindBlockData struct {
	Constructor bool // wrap the loop in a synthesized constructor
}

// ComponentData is one chained registration call
type ComponentData struct {
	Method         string
	Name           string
	Implementation string
	Dependencies   []string
	Directive      bool
	Filter         bool
	FactoryParams  []string
}

// ComponentRegistrationData is the data for the component-registration template
type ComponentRegistrationData struct {
	Module     string
	Components []ComponentData
}

// Renderer executes snippet templates and converts their line endings
type Renderer struct {
	newLine  string
	registry *TemplateRegistry
}

// NewRenderer creates a renderer that emits newLine between lines
func NewRenderer(newLine string) *Renderer {
	return &Renderer{
		newLine:  newLine,
		registry: NewTemplateRegistry(),
	}
}

// ModuleRegistration renders the angular.module("name", [...]) statement for a home file
func (r *Renderer) ModuleRegistration(data ModuleRegistrationData) (string, error) {
	return r.render("module-registration", data)
}

// ModuleFile renders a complete file for a module that has no home file
func (r *Renderer) ModuleFile(name string) (string, error) {
	return r.render("module-file", ModuleFileData{Name: name})
}

// Reference renders the reference line to a module file followed by a blank line
func (r *Renderer) Reference(path string) (string, error) {
	return r.render("reference", ReferenceData{Path: path})
}

// BindBlock renders the loop binding instance methods to the instance
func (r *Renderer) BindBlock(withConstructor bool) (string, error) {
	return r.render("bind-block", BindBlockData{Constructor: withConstructor})
}

// ComponentRegistration renders the registration chain placed before a file's closing brace
func (r *Renderer) ComponentRegistration(data ComponentRegistrationData) (string, error) {
	return r.render("component-registration", data)
}

func (r *Renderer) render(name string, data interface{}) (string, error) {
	out, err := executeTemplate(name, r.registry.MustGet(name), data)
	if err != nil {
		return "", err
	}
	if r.newLine == "\n" {
		return out, nil
	}
	return strings.ReplaceAll(out, "\n", r.newLine), nil
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	funcMap := template.FuncMap{
		"quote": quote,
		"join":  strings.Join,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
