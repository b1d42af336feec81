package team

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListActive returns active members only; deactivated members stay in the
// table for historical references from assignments and transactions.
func (s *Service) ListActive(ctx context.Context) ([]TeamMember, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateTeamMemberInput) (*TeamMember, error) {
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	member := TeamMember{
		Name:       strings.TrimSpace(input.Name),
		WhatsappNo: strings.TrimSpace(input.WhatsappNo),
		Country:    strings.TrimSpace(input.Country),
		Role:       input.Role,
		Avatar:     input.Avatar,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	updated, err := s.repo.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTeamMemberNotFound
	}
	return nil
}
