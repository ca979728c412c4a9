package sum

import (
	"errors"
	"fmt"
)

// ErrKindMismatch is returned by Add when the operands were parsed as different kinds.
var ErrKindMismatch = errors.New("operands have different types")

// ParseError reports an operand that is not a valid value of the requested kind.
type ParseError struct {
	Token string
	Kind  Kind
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s", e.Token, e.Kind.noun())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OverflowError reports a sum that cannot be represented in the result kind.
type OverflowError struct {
	Kind Kind
	A, B string
}

func (e *OverflowError) Error() string {
	if e.Kind == KindFloat {
		return fmt.Sprintf("%s + %s overflows a 64-bit float", e.A, e.B)
	}
	return fmt.Sprintf("%s + %s overflows a 64-bit integer", e.A, e.B)
}
