package errors

// Exit codes reported by the CLI. Source failures keep the lowest non-zero
// code so scripts can distinguish "some input was skipped" from a run whose
// output cannot be trusted.
const (
	ExitOK       = 0
	ExitSource   = 1 // one or more input sources failed
	ExitUsage    = 2 // invalid configuration or flags
	ExitOutput   = 3 // the output sink failed
	ExitResource = 4 // resource exhaustion
	ExitInternal = 5 // programming-contract violation
	ExitGeneral  = 1
)

// ExitCodeFor determines the appropriate exit code for an error.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	re, ok := err.(*RunError)
	if !ok {
		return ExitGeneral
	}

	switch re.Category {
	case CategorySource:
		return ExitSource
	case CategoryConfig, CategoryValidation:
		return ExitUsage
	case CategoryOutput:
		return ExitOutput
	case CategoryResource:
		return ExitResource
	case CategoryInternal:
		return ExitInternal
	default:
		return ExitGeneral
	}
}
