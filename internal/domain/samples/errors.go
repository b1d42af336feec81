package samples

import "errors"

var (
	ErrSampleRequestNotFound = errors.New("sample request not found")
	ErrInvalidStatus         = errors.New("invalid sample request status")
)
