package setup

import (
	"errors"
	"fmt"
)

// Code classifies a setup failure.
type Code string

// Failure codes. DepsMissing and CommandFailed abort the pipeline;
// ReadyTimeout and TerminationFailed are logged and never abort anything.
const (
	CodeDepsMissing       Code = "DEPS_MISSING"
	CodeCommandFailed     Code = "COMMAND_FAILED"
	CodeReadyTimeout      Code = "READY_TIMEOUT"
	CodeTerminationFailed Code = "TERMINATION_FAILED"
)

// SetupError is a coded failure raised by a pipeline stage.
type SetupError struct {
	Code  Code
	Msg   string
	Cause error
}

func (e *SetupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *SetupError) Unwrap() error {
	return e.Cause
}

// NewSetupError builds a coded error wrapping cause.
func NewSetupError(code Code, msg string, cause error) *SetupError {
	return &SetupError{Code: code, Msg: msg, Cause: cause}
}

// CodeOf extracts the failure code from err, or empty when err carries none.
func CodeOf(err error) Code {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
