package options

import (
	"errors"
	"strings"
)

// Invocation errors. Each one ends the run with a usage message.
var (
	ErrMissingParameters = errors.New("missing parameters")
	ErrMissingFilename   = errors.New("missing filename")
	ErrTooManyParameters = errors.New("too many parameters")
)

// TooManyParametersError is returned when more than one token is left after
// flag extraction. Params holds every leftover token in argument order.
type TooManyParametersError struct {
	Params []string
}

func (e *TooManyParametersError) Error() string {
	return ErrTooManyParameters.Error() + ": " + strings.Join(e.Params, " ")
}

// Is makes errors.Is(err, ErrTooManyParameters) hold.
func (e *TooManyParametersError) Is(target error) bool {
	return target == ErrTooManyParameters
}

// Excess returns the tokens beyond the one a filename can account for.
func (e *TooManyParametersError) Excess() []string {
	if len(e.Params) < 2 {
		return nil
	}
	return e.Params[1:]
}

// IsUsageError reports whether err is one of the invocation errors.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrMissingParameters) ||
		errors.Is(err, ErrMissingFilename) ||
		errors.Is(err, ErrTooManyParameters)
}
