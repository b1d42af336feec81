package team

import "context"

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]TeamMember, error)
	GetByID(ctx context.Context, id int64) (*TeamMember, error)
	Create(ctx context.Context, member *TeamMember) error
	SetActive(ctx context.Context, id int64, active bool) (bool, error)
}
