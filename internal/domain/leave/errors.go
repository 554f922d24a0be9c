package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveAlreadyReviewed = errors.New("leave request already reviewed")
)
