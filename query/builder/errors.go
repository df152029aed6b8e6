package builder

import (
	"errors"
	"fmt"
)

// BuildError is the failure surface of Build: it names the statement kind
// and the clause that failed, and wraps one of the sqlgen sentinel errors so
// callers can branch with errors.Is.
type BuildError struct {
	Statement string
	Clause    string
	Cause     error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Clause != "" {
		return fmt.Sprintf("building %s: %s: %v", e.Statement, e.Clause, e.Cause)
	}
	return fmt.Sprintf("building %s: %v", e.Statement, e.Cause)
}

// Unwrap returns the underlying sentinel.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *BuildError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

func buildErr(statement, clause string, cause error) error {
	return &BuildError{Statement: statement, Clause: clause, Cause: cause}
}
