package parser

import (
	"strings"

	"github.com/toyz/tsng/internal/annotations"
	"github.com/toyz/tsng/internal/errors"
	"github.com/toyz/tsng/internal/models"
)

// Parser is the single-pass annotation scanner
type Parser struct {
	newLine     string
	annotations *annotations.Parser
}

// NewParser creates a scanner that splits files on newLine
func NewParser(newLine string) *Parser {
	return &Parser{
		newLine:     newLine,
		annotations: annotations.NewParser(),
	}
}

// ParseSource scans content line by line and returns the file's module and components.
// Any malformed or unterminated annotation aborts the scan.
func (p *Parser) ParseSource(path, content string) (*models.FileResult, error) {
	scan := &fileScan{
		parser:  p,
		path:    path,
		content: content,
		result:  models.NewFileResult(path, content),
		state:   anything{},
	}

	for i, line := range strings.Split(content, p.newLine) {
		if closingBracePattern.MatchString(line) {
			scan.result.ClosingBraceLine = i
			continue
		}
		if err := scan.step(i, line); err != nil {
			return nil, err
		}
	}

	if open, ok := opened(scan.state); ok {
		return nil, errors.NewUnexpectedEOFError(path, open.line+1, scan.state.expecting()).
			WithContext("annotation", open.annotation.Tag)
	}

	scan.result.Module = scan.module
	return scan.result, nil
}

// fileScan is the working state for one ParseSource call
type fileScan struct {
	parser  *Parser
	path    string
	content string
	result  *models.FileResult
	module  *models.ModuleRecord
	state   scanState

	ctor       *Constructor
	ctorLoaded bool
}

func (s *fileScan) step(i int, line string) error {
	switch st := s.state.(type) {
	case anything:
		return s.scanAnything(i, line)

	case awaitModule:
		m := moduleDeclarationPattern.FindStringSubmatch(line)
		if m == nil {
			return s.malformed(i, st.pending, expectModule)
		}
		s.state = anything{}
		return s.declareModule(i, firstNonEmpty(st.annotation.Name, m[1]))

	case awaitController:
		s.state = anything{}
		if st.annotation.Skip {
			return nil
		}
		m := controllerDeclarationPattern.FindStringSubmatch(line)
		if m == nil {
			return s.malformed(i, st.pending, expectController)
		}
		s.addClass(models.KindController, i, s.module.Prefix()+firstNonEmpty(st.annotation.Name, m[1]), m[1])

	case awaitService:
		m := serviceDeclarationPattern.FindStringSubmatch(line)
		if m == nil {
			return s.malformed(i, st.pending, expectService)
		}
		s.state = anything{}
		s.addClass(models.KindService, i, s.module.Prefix()+firstNonEmpty(st.annotation.Name, m[2], m[1]), m[1])

	case awaitDirective:
		annotation, ok, err := s.annotation(i, line)
		if err != nil {
			return err
		}
		if ok && annotation.Kind == models.KindDirective {
			st.aliases = append(st.aliases, annotation.Name)
			s.state = st
			return nil
		}
		m := directiveDeclarationPattern.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		s.state = anything{}
		for _, alias := range st.aliases {
			s.addClass(models.KindDirective, i, alias, m[1])
		}

	case awaitFilter:
		m := filterDeclarationPattern.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		s.state = anything{}
		s.result.Add(&models.ComponentRecord{
			Kind:               models.KindFilter,
			Module:             s.module,
			RegisteredName:     firstNonEmpty(st.annotation.Name, m[1]),
			ImplementationName: m[1],
			SourceFile:         s.path,
			DeclarationLine:    i,
		})
	}

	return nil
}

func (s *fileScan) scanAnything(i int, line string) error {
	annotation, ok, err := s.annotation(i, line)
	if err != nil {
		return err
	}
	if ok {
		open := pending{annotation: annotation, line: i}
		switch annotation.Kind {
		case models.KindModule:
			s.state = awaitModule{open}
		case models.KindController:
			s.state = awaitController{open}
		case models.KindService:
			s.state = awaitService{open}
		case models.KindDirective:
			s.state = awaitDirective{pending: open, aliases: []string{annotation.Name}}
		case models.KindFilter:
			s.state = awaitFilter{open}
		}
		return nil
	}

	if m := moduleDeclarationPattern.FindStringSubmatch(line); m != nil {
		return s.declareModule(i, m[1])
	}

	if m := controllerDeclarationPattern.FindStringSubmatch(line); m != nil {
		s.addClass(models.KindController, i, s.module.Prefix()+m[1], m[1])
		return nil
	}

	if m := serviceDeclarationPattern.FindStringSubmatch(line); m != nil {
		s.addClass(models.KindService, i, s.module.Prefix()+firstNonEmpty(m[2], m[1]), m[1])
	}

	return nil
}

// annotation parses and validates an annotation comment on the line, if there is one
func (s *fileScan) annotation(i int, line string) (*annotations.ParsedAnnotation, bool, error) {
	parsed, ok := s.parser.annotations.Parse(line)
	if !ok {
		return nil, false, nil
	}
	if err := s.parser.annotations.Validate(parsed); err != nil {
		return nil, false, errors.New(errors.MalformedAnnotationCode, err.Error()).
			WithLocation(errors.SourceLocation{File: s.path, Line: i + 1}).
			WithContext("annotation", parsed.Tag)
	}
	return parsed, true, nil
}

// declareModule establishes the file's module; a file may declare only one
func (s *fileScan) declareModule(i int, name string) error {
	if s.module != nil {
		return errors.NewDuplicateModuleError(s.path, i+1, name).
			WithContext("existing_module", s.module.Name)
	}

	module := ExtractModuleHeader(s.content)
	module.Name = name
	module.DeclarationLine = i
	s.module = module
	return nil
}

// addClass records a class-based component using the file's first constructor
func (s *fileScan) addClass(kind models.Kind, i int, registeredName, implementation string) {
	component := &models.ComponentRecord{
		Kind:               kind,
		Module:             s.module,
		RegisteredName:     registeredName,
		ImplementationName: implementation,
		SourceFile:         s.path,
		DeclarationLine:    i,
	}

	if ctor := s.constructor(); ctor != nil {
		component.Dependencies = append([]models.Dependency(nil), ctor.Params...)
		component.HasConstructor = true
		component.CtorStartLine = ctor.StartLine
		component.CtorEndLine = ctor.EndLine
	}

	s.result.Add(component)
}

// constructor extracts the file's first constructor once per file
func (s *fileScan) constructor() *Constructor {
	if !s.ctorLoaded {
		s.ctor, _ = ExtractConstructor(s.content, s.parser.newLine)
		s.ctorLoaded = true
	}
	return s.ctor
}

func (s *fileScan) malformed(i int, open pending, expected string) error {
	return errors.NewMalformedAnnotationError(s.path, i+1, open.annotation.Tag, expected).
		WithContext("annotation_line", open.line+1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
