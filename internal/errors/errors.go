// Package errors classifies command failures and maps them to exit codes.
package errors

import (
	stderrors "errors"
)

// Category represents the type of error that occurred.
type Category int

const (
	SystemError Category = iota // unexpected internal failure
	UserError                   // an operand could not be used
	UsageError                  // wrong invocation: operand count, flags
	ConfigError                 // configuration file or value problem
)

// String returns a string representation of the error category.
func (c Category) String() string {
	switch c {
	case UserError:
		return "user"
	case UsageError:
		return "usage"
	case ConfigError:
		return "config"
	case SystemError:
		return "system"
	default:
		return "unknown"
	}
}

// Error attaches a category and an optional hint to an underlying error.
type Error struct {
	Category Category
	Hint     string
	Err      error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with category. A nil err stays nil.
func Wrap(category Category, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Category: category, Err: err}
}

// WithHint tags err with category and a follow-up line shown to the user.
func WithHint(category Category, err error, hint string) error {
	if err == nil {
		return nil
	}
	return &Error{Category: category, Hint: hint, Err: err}
}

// CategoryOf returns the category of the outermost categorized error in
// err's chain, or SystemError when there is none.
func CategoryOf(err error) Category {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Category
	}
	return SystemError
}

// HintOf returns the first non-empty hint in err's chain.
func HintOf(err error) string {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Hint != "" {
			return e.Hint
		}
		err = stderrors.Unwrap(err)
	}
	return ""
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
