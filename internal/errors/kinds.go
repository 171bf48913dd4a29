package errors

import "fmt"

// NewDuplicateModuleError reports a second module declaration in one file
func NewDuplicateModuleError(file string, line int, module string) *BaseError {
	return Newf(DuplicateModuleDeclarationCode, "only one module can be declared per file (found '%s')", module).
		WithLocation(SourceLocation{File: file, Line: line}).
		WithContext("module", module).
		WithSuggestion("Split the second namespace into its own file")
}

// NewDuplicateHomeError reports a module whose startup scaffolding lives in two files
func NewDuplicateHomeError(module, existingFile, file string) *BaseError {
	return Newf(DuplicateModuleDeclarationCode, "module '%s' defined in multiple files", module).
		WithLocation(SourceLocation{File: file}).
		WithContext("module", module).
		WithContext("existing_file", existingFile).
		WithSuggestion(fmt.Sprintf("Keep the dependency list and configuration/run functions of '%s' in %s only", module, existingFile))
}

// NewMalformedAnnotationError reports an annotation not followed by the declaration it requires
func NewMalformedAnnotationError(file string, line int, annotation, expected string) *BaseError {
	return Newf(MalformedAnnotationCode, "%s must be followed by %s", annotation, expected).
		WithLocation(SourceLocation{File: file, Line: line}).
		WithContext("annotation", annotation).
		WithContext("expected", expected)
}

// NewUnexpectedEOFError reports a file ending while a declaration is still awaited
func NewUnexpectedEOFError(file string, line int, expected string) *BaseError {
	return Newf(UnexpectedEndOfFileCode, "end of file reached while expecting %s", expected).
		WithLocation(SourceLocation{File: file, Line: line}).
		WithContext("expected", expected)
}

// NewUnresolvedDependencyError reports a dependency type that matches no registered name
func NewUnresolvedDependencyError(file, owner, typeName string) *BaseError {
	err := Newf(UnresolvedDependencyCode, "can't resolve dependency for %s with name '%s'", owner, typeName).
		WithLocation(SourceLocation{File: file}).
		WithContext("owner", owner).
		WithContext("type", typeName)
	if typeName == "" {
		return err.WithSuggestion("Add a type annotation to the parameter or prefix built-in services with '$'")
	}
	return err.WithSuggestion("Check that a service registers under the name, relative to an enclosing namespace")
}

// ConfigurationError creates a configuration error
func ConfigurationError(key, message string) *BaseError {
	return Newf(ConfigurationErrorCode, "invalid '%s': %s", key, message).
		WithContext("key", key)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName)
}
