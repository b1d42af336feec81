package clients

import "errors"

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrInvalidContractType  = errors.New("invalid contract type")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)
