package fractal

import "fmt"

// DomainError is returned when the generator is asked to sample a degenerate
// range or an image with no pixels.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("fractal: %v: %v", e.Op, e.Reason)
}

func domainErrorf(op, format string, a ...interface{}) error {
	return &DomainError{
		Op:     op,
		Reason: fmt.Sprintf(format, a...),
	}
}
