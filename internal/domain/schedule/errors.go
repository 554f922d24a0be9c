package schedule

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrAssignmentNotFound = errors.New("schedule assignment not found")
)
