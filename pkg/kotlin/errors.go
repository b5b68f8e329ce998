package kotlin

import "github.com/cockroachdb/errors"

var (
	// ErrBuilderFinalized is returned by any builder call made after Build.
	ErrBuilderFinalized = errors.New("builder already built")
	// ErrInvalidFormat covers unknown placeholders, argument count mismatches
	// and arguments of the wrong kind for their placeholder.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnbalancedControlFlow is returned when a control flow is continued or
	// closed without being opened, or left open at Build.
	ErrUnbalancedControlFlow = errors.New("unbalanced control flow")
	// ErrUnbalancedIndent is returned when Unindent would go below zero.
	ErrUnbalancedIndent = errors.New("unbalanced indent")
	// ErrInvalidSpec is returned when a declaration is structurally invalid,
	// e.g. a setter on a read-only property.
	ErrInvalidSpec = errors.New("invalid declaration")
)

// errorState holds the first failure of a builder. Once set, or once the
// builder is built, further mutations are ignored.
type errorState struct {
	err   error
	built bool
}

func (s *errorState) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// live reports whether the builder still accepts mutations.
func (s *errorState) live() bool {
	if s.built {
		s.fail(ErrBuilderFinalized)
		return false
	}
	return s.err == nil
}

// finish marks the builder built and returns the error Build should report.
func (s *errorState) finish() error {
	if s.built {
		return ErrBuilderFinalized
	}
	s.built = true
	return s.err
}
