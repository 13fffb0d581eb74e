package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP statuses; everything a use case
// returns wraps exactly one of them.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrDependency     = errors.New("dependency failure")
	ErrPersistence    = errors.New("persistence failure")
)

func invalidRequest(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)
}

// dependency wraps err as a dependency failure, keeping the upstream message.
// Already-classified errors pass through unchanged.
func dependency(err error) error {
	if err == nil || errors.Is(err, ErrDependency) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrDependency, err)
}

// persistence wraps store errors, letting not-found pass through.
func persistence(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
