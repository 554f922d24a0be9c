package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrAlreadyClockedOut  = errors.New("already clocked out today")
	ErrNotClockedInYet    = errors.New("not clocked in yet")
)
