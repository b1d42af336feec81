package team

import "errors"

var (
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrInvalidRole        = errors.New("invalid team member role")
)
