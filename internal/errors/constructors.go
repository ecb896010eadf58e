package errors

// Convenience functions for common error patterns

func ConfigLoadFailed(path string, cause error) *RunError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to load defaults file").
		WithContext("path", path)
}

func ValidationFailed(reason string) *RunError {
	return New(CategoryValidation, SeverityFatal, reason)
}

func SourceFailed(name string, cause error) *RunError {
	return Wrap(cause, CategorySource, SeverityError, "failed to process input source").
		WithContext("source", name)
}

func OutputFailed(cause error) *RunError {
	return Wrap(cause, CategoryOutput, SeverityFatal, "failed to write output")
}
