package project

import (
	"errors"
	"fmt"
)

// ErrNothingToDo is returned by snapshot synchronization when the working
// tree is clean. Callers report it, they do not treat it as a failure exit.
var ErrNothingToDo = errors.New("nothing to save, working tree clean")

// AlreadyExistsError is returned when a path or entry that an operation
// would create is already present. Operations fail before mutating anything
// they have not created themselves.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// NotFoundError is returned when a referenced entry or path is missing.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

// ExternalToolError wraps a failure of an external collaborator (git, the
// GitHub API). The tool's absence is reported, never allowed to panic
// through.
type ExternalToolError struct {
	Tool string
	Err  error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ExternalToolError) Unwrap() error { return e.Err }
