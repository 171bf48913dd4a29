package annotations

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// annotationAST is the grammar root for an annotation comment line
type annotationAST struct {
	Kind string       `parser:"Comment At @Kind"`
	Arg  *argumentAST `parser:"( '(' @@? ')' | @@ )?"`
}

// argumentAST is the optional argument of an annotation
type argumentAST struct {
	Skip   bool    `parser:"  @( 'skip' '=' 'true' )"`
	Quoted *string `parser:"| @String"`
	Ident  *string `parser:"| @Ident"`
}

// Parser recognises annotation comments using alecthomas/participle
type Parser struct {
	parser  *participle.Parser[annotationAST]
	schemas map[string]Schema
}

// NewParser creates a new annotation parser with the built-in schemas
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "At", Pattern: `@`},
		{Name: "Kind", Pattern: `Ng(?:Module|Controller|Service|Directive|Filter)`},
		{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_$][\w$.]*`},
		{Name: "Punct", Pattern: `[()=]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationAST](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(4),
	)

	return &Parser{
		parser:  parser,
		schemas: BuiltinSchemas(),
	}
}

// IsCandidate is a cheap pre-check that keeps ordinary lines away from the grammar
func IsCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") && strings.Contains(trimmed, "@Ng")
}

// Parse recognises an annotation comment. The second result is false when the line is
// not an annotation at all; such lines are ordinary text to the scanner.
func (p *Parser) Parse(line string) (*ParsedAnnotation, bool) {
	if !IsCandidate(line) {
		return nil, false
	}

	ast, err := p.parser.ParseString("", line)
	if err != nil {
		return nil, false
	}

	schema, ok := p.schemas[ast.Kind]
	if !ok {
		return nil, false
	}

	parsed := &ParsedAnnotation{
		Kind: schema.Kind,
		Tag:  "@" + ast.Kind,
		Raw:  line,
	}

	if ast.Arg != nil {
		switch {
		case ast.Arg.Skip:
			parsed.Skip = true
		case ast.Arg.Quoted != nil:
			parsed.Name = unquote(*ast.Arg.Quoted)
		case ast.Arg.Ident != nil:
			parsed.Name = *ast.Arg.Ident
		}
	}

	return parsed, true
}

// Validate checks a parsed annotation against the schema of its kind
func (p *Parser) Validate(annotation *ParsedAnnotation) error {
	schema, ok := p.schemas[strings.TrimPrefix(annotation.Tag, "@")]
	if !ok {
		return errUnknownTag(annotation.Tag)
	}
	return schema.Validate(annotation)
}

// unquote removes one pair of surrounding single or double quotes
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
