package parser

import "github.com/toyz/tsng/internal/models"

// SourceParser scans one file's text into a FileResult
type SourceParser interface {
	ParseSource(path, content string) (*models.FileResult, error)
}
