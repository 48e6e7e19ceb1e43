package calculation

import "errors"

var (
	// ErrInvalidParameter marks inputs rejected before a simulation starts.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDivideByZero marks a computation whose divisor is zero, e.g. a withdrawal from an empty balance.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrArithmeticDomain marks a growth rate for which (1+rate) is not positive.
	ErrArithmeticDomain = errors.New("arithmetic domain error")
)
