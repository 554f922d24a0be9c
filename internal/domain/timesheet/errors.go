package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet entry not found")
	ErrDuplicateEntry    = errors.New("timesheet entry already exists for this date")
)
