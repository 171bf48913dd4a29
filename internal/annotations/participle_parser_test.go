package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/tsng/internal/models"
)

func TestParserRecognisesAnnotations(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected *ParsedAnnotation
	}{
		{
			name:     "bare module",
			input:    "//@NgModule",
			expected: &ParsedAnnotation{Kind: models.KindModule, Tag: "@NgModule"},
		},
		{
			name:     "module with quoted dotted name",
			input:    "    //@NgModule('my.great.module')",
			expected: &ParsedAnnotation{Kind: models.KindModule, Tag: "@NgModule", Name: "my.great.module"},
		},
		{
			name:     "module with double quoted name",
			input:    `//@NgModule("app")`,
			expected: &ParsedAnnotation{Kind: models.KindModule, Tag: "@NgModule", Name: "app"},
		},
		{
			name:     "controller with unquoted name in parens",
			input:    "//@NgController(Home)",
			expected: &ParsedAnnotation{Kind: models.KindController, Tag: "@NgController", Name: "Home"},
		},
		{
			name:     "controller skip override",
			input:    "\t//@NgController(skip=true)",
			expected: &ParsedAnnotation{Kind: models.KindController, Tag: "@NgController", Skip: true},
		},
		{
			name:     "controller named skip is a name",
			input:    "//@NgController('skip')",
			expected: &ParsedAnnotation{Kind: models.KindController, Tag: "@NgController", Name: "skip"},
		},
		{
			name:     "service with trailing whitespace",
			input:    "//@NgService('IGreetingService')   ",
			expected: &ParsedAnnotation{Kind: models.KindService, Tag: "@NgService", Name: "IGreetingService"},
		},
		{
			name:     "directive alias",
			input:    "//@NgDirective('myWidget')",
			expected: &ParsedAnnotation{Kind: models.KindDirective, Tag: "@NgDirective", Name: "myWidget"},
		},
		{
			name:     "filter with space after comment marker",
			input:    "    // @NgFilter",
			expected: &ParsedAnnotation{Kind: models.KindFilter, Tag: "@NgFilter"},
		},
		{
			name:     "empty parens",
			input:    "//@NgFilter()",
			expected: &ParsedAnnotation{Kind: models.KindFilter, Tag: "@NgFilter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := parser.Parse(tt.input)
			require.True(t, ok)
			tt.expected.Raw = tt.input
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestParserIgnoresOrdinaryLines(t *testing.T) {
	parser := NewParser()

	inputs := []string{
		"",
		"class HomeController {",
		"// a plain comment",
		"// see @NgModule for details",
		"//@NgSomethingElse",
		"//@NgModule('a') trailing",
		"var x = 1; //@NgService",
		"//@NgService(-1)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parsed, ok := parser.Parse(input)
			assert.False(t, ok)
			assert.Nil(t, parsed)
		})
	}
}

func TestParserValidate(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		input   string
		wantErr string
	}{
		{input: "//@NgModule('a.b.c')"},
		{input: "//@NgController(skip=true)"},
		{input: "//@NgDirective('widget')"},
		{input: "//@NgService(skip=true)", wantErr: "does not accept skip=true"},
		{input: "//@NgDirective", wantErr: "requires a name"},
		{input: "//@NgController('a.b')", wantErr: "invalid name 'a.b'"},
		{input: "//@NgFilter('has space')", wantErr: "invalid name 'has space'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := parser.Parse(tt.input)
			require.True(t, ok)

			err := parser.Validate(parsed)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsCandidate(t *testing.T) {
	assert.True(t, IsCandidate("  //@NgModule"))
	assert.False(t, IsCandidate("module a {"))
	assert.False(t, IsCandidate("/* @NgModule */"))
}
