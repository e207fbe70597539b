package checklist

import "errors"

var (
	ErrInvalidID       = errors.New("checklist: invalid id")
	ErrInvalidTitle    = errors.New("checklist: invalid title")
	ErrInvalidOwner    = errors.New("checklist: invalid owner")
	ErrInvalidDueDate  = errors.New("checklist: invalid due date")
	ErrInvalidCategory = errors.New("checklist: invalid category")
	ErrInvalidStatus   = errors.New("checklist: invalid status")
	ErrItemNotFound    = errors.New("checklist: item not found")
)
