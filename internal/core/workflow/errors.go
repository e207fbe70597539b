package workflow

import "errors"

var (
	ErrInvalidID        = errors.New("workflow: invalid id")
	ErrInvalidName      = errors.New("workflow: invalid name")
	ErrInvalidTrigger   = errors.New("workflow: invalid trigger")
	ErrInvalidAction    = errors.New("workflow: invalid action")
	ErrWorkflowNotFound = errors.New("workflow: not found")
)
