package cli

import "fmt"

// exitError pairs a message with the process exit code spec §6 assigns
// its kind of failure (64 usage, 66 missing input, 73 cannot create
// output); Run's top-level handler reads Code back out instead of
// re-classifying the error by string matching.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string { return e.Message }

func usageErrorf(format string, args ...any) error {
	return &exitError{Code: 64, Message: fmt.Sprintf(format, args...)}
}

func missingInputErrorf(format string, args ...any) error {
	return &exitError{Code: 66, Message: fmt.Sprintf(format, args...)}
}

func outputErrorf(format string, args ...any) error {
	return &exitError{Code: 73, Message: fmt.Sprintf(format, args...)}
}

// exitCode reports the process exit code an error carries, defaulting
// to 70 (internal error) for anything not an *exitError.
func exitCode(err error) int {
	if ee, ok := err.(*exitError); ok {
		return ee.Code
	}
	return 70
}
