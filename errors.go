package finengine

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the engine wraps one of them.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrArithmetic      = errors.New("arithmetic error")
	ErrDomainInvariant = errors.New("domain invariant violated")
)

var (
	ErrInvalidCents         = fmt.Errorf("%w: invalid cents", ErrInvalidInput)
	ErrDivisionByZero       = fmt.Errorf("%w: division by zero", ErrArithmetic)
	ErrOverflow             = fmt.Errorf("%w: overflow", ErrArithmetic)
	ErrNegativeAmortization = fmt.Errorf("%w: negative amortization", ErrDomainInvariant)
)

// Invalidf returns an ErrInvalidInput error with a formatted detail message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
