package claim

import "errors"

var (
	ErrClaimNotFound        = errors.New("expense claim not found")
	ErrClaimAlreadyReviewed = errors.New("expense claim already reviewed")
)
