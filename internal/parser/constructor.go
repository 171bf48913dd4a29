package parser

import (
	"strings"

	"github.com/toyz/tsng/internal/models"
)

// Constructor describes the first constructor found in a file
type Constructor struct {
	Params    []models.Dependency
	StartLine int // 0-based line where the match starts
	EndLine   int // 0-based line where the match ends
}

// ExtractConstructor locates the first constructor declaration anywhere in content and
// parses its parameter list. It returns false when the file has no constructor.
func ExtractConstructor(content, newLine string) (*Constructor, bool) {
	loc := constructorPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return nil, false
	}

	return &Constructor{
		Params:    parseParameters(content[loc[2]:loc[3]]),
		StartLine: lineOf(content, newLine, loc[0]),
		EndLine:   lineOf(content, newLine, loc[1]),
	}, true
}

// parseParameters splits "a: T, b" into (name, type) pairs
func parseParameters(list string) []models.Dependency {
	var params []models.Dependency
	if strings.TrimSpace(list) == "" {
		return params
	}

	for _, arg := range strings.Split(list, ",") {
		parts := strings.SplitN(arg, ":", 2)
		name := stripModifiers(strings.TrimSpace(parts[0]))
		if name == "" {
			continue
		}

		dep := models.Dependency{Name: name}
		if len(parts) > 1 {
			dep.Type = strings.TrimSpace(parts[1])
		}
		params = append(params, dep)
	}
	return params
}

// stripModifiers removes leading parameter-property keywords such as "private"
func stripModifiers(name string) string {
	fields := strings.Fields(name)
	for len(fields) > 1 && parameterModifiers[fields[0]] {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// lineOf converts a byte offset into a 0-based line number
func lineOf(content, newLine string, offset int) int {
	return strings.Count(content[:offset], newLine)
}
