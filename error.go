package pcapgen

import (
	"fmt"
	"strings"
)

// ActionError describes the failure of one requested action. The dispatch
// loop reports it once and stays responsive, nothing is retried.
type ActionError struct {
	message string
	cause   error
}

func (e *ActionError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *ActionError) Unwrap() error {
	return e.cause
}

func newActionError(message string, cause error) *ActionError {
	return &ActionError{message: message, cause: cause}
}
