package parser

import "regexp"

// Line patterns evaluated one line at a time by the scanner
var (
	closingBracePattern          = regexp.MustCompile(`^\s*}\s*$`)
	moduleDeclarationPattern     = regexp.MustCompile(`^\s*(?:export\s+)?module\s*([\w.]*)\s*{\s*$`)
	controllerDeclarationPattern = regexp.MustCompile(`^\s*(?:export\s+)?class (\w+Controller)\b`)
	serviceDeclarationPattern    = regexp.MustCompile(`^\s*(?:export\s+)?class (\w+Service)\s+(?:implements\s+([\w.]+)\s*{)?`)
	directiveDeclarationPattern  = regexp.MustCompile(`^\s*(?:export\s+)?class (\w+Directive)\s+(?:implements\s+(\w.+)\s*{)?`)
	filterDeclarationPattern     = regexp.MustCompile(`^\s*function\s*([a-zA-Z_$]+)\s*\([a-zA-Z0-9_$:,\s]*\)`)
)

// Whole-text patterns. These also match inside comments and other text the line
// scanner never looks at.
var (
	constructorPattern    = regexp.MustCompile(`constructor\s*\(\s*([^(]*)\s*\)\s*{`)
	dependencyListPattern = regexp.MustCompile(`var\s+dependencies\s*=\s*\[([\w\s.,"']*)\]`)
	configFunctionPattern = regexp.MustCompile(`function\s*(configuration)\s*\(\s*([\w$:.,\s]*)\s*\)\s*{`)
	runFunctionPattern    = regexp.MustCompile(`function\s*(run)\s*\(\s*([\w$:.,\s]*)\s*\)\s*{`)
)

// Expected declaration shapes reported when an annotation is left unsatisfied
const (
	expectModule     = "a module declaration, e.g. module My.Module.Name {"
	expectController = "a class declaration ending with 'Controller', e.g. class MyController implements IMyViewModel {"
	expectService    = "a class declaration ending with 'Service', e.g. class MyService implements IMyService {"
	expectDirective  = "a class declaration ending with 'Directive', e.g. class MyDirective implements ng.IDirective {"
	expectFilter     = "a function declaration, e.g. function truncate(input: string) {"
)

// parameterModifiers are TypeScript parameter-property keywords that precede a parameter name
var parameterModifiers = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"readonly":  true,
}
