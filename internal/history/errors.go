package history

import (
	"errors"
	"fmt"
)

// ErrContainerNotFound matches any ContainerNotFoundError via errors.Is.
var ErrContainerNotFound = errors.New("history container not found")

// ContainerNotFoundError reports that the history container is absent from the view.
type ContainerNotFoundError struct {
	ID string
}

// Error returns a readable message naming the missing container.
func (err *ContainerNotFoundError) Error() string {
	if err == nil || err.ID == "" {
		return ErrContainerNotFound.Error()
	}
	return fmt.Sprintf("history container %q not found", err.ID)
}

// Is reports whether target is ErrContainerNotFound.
func (err *ContainerNotFoundError) Is(target error) bool {
	return target == ErrContainerNotFound
}

// SerializationError reports an evaluation value that could not be converted to text.
type SerializationError struct {
	Err error
}

// Error returns the wrapped serializer failure.
func (err *SerializationError) Error() string {
	if err == nil || err.Err == nil {
		return "serialize evaluation"
	}
	return "serialize evaluation: " + err.Err.Error()
}

// Unwrap returns the underlying serializer error.
func (err *SerializationError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}
