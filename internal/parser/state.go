package parser

import "github.com/toyz/tsng/internal/annotations"

// scanState is the scanner's current expectation. Every state other than anything
// remembers the annotation that opened it.
type scanState interface {
	expecting() string
}

// anything accepts annotations, module lines and bare controller/service declarations
type anything struct{}

// pending holds the annotation that opened an awaiting state and its 0-based line
type pending struct {
	annotation *annotations.ParsedAnnotation
	line       int
}

type awaitModule struct{ pending }

type awaitController struct{ pending }

type awaitService struct{ pending }

// awaitDirective stays open across consecutive directive comments, one alias per comment
type awaitDirective struct {
	pending
	aliases []string
}

type awaitFilter struct{ pending }

func (anything) expecting() string        { return "anything" }
func (awaitModule) expecting() string     { return expectModule }
func (awaitController) expecting() string { return expectController }
func (awaitService) expecting() string    { return expectService }
func (awaitDirective) expecting() string  { return expectDirective }
func (awaitFilter) expecting() string     { return expectFilter }

// opened returns the annotation line that opened an awaiting state
func opened(s scanState) (pending, bool) {
	switch st := s.(type) {
	case awaitModule:
		return st.pending, true
	case awaitController:
		return st.pending, true
	case awaitService:
		return st.pending, true
	case awaitDirective:
		return st.pending, true
	case awaitFilter:
		return st.pending, true
	}
	return pending{}, false
}
