package leave

import "errors"

var (
	ErrInvalidID         = errors.New("leave: invalid id")
	ErrInvalidEmployeeID = errors.New("leave: invalid employee id")
	ErrInvalidType       = errors.New("leave: invalid type")
	ErrInvalidStatus     = errors.New("leave: invalid status")
	ErrInvalidDateRange  = errors.New("leave: invalid date range")
	ErrRequestNotFound   = errors.New("leave: request not found")
)
