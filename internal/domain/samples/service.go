package samples

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]SampleRequest, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, input CreateSampleRequestInput) (*SampleRequest, error) {
	status := input.Status
	if status == "" {
		status = StatusInProcessing
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	request := SampleRequest{
		CompanyName: strings.TrimSpace(input.CompanyName),
		Country:     strings.TrimSpace(input.Country),
		RequestDate: input.RequestDate,
		Status:      status,
		Notes:       input.Notes,
	}

	if err := s.repo.Create(ctx, &request); err != nil {
		return nil, err
	}

	return &request, nil
}

func (s *Service) Update(ctx context.Context, id int64, input UpdateSampleRequestInput) (*SampleRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		request.Status = *input.Status
	}
	if input.CompanyName != nil {
		request.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.Country != nil {
		request.Country = strings.TrimSpace(*input.Country)
	}
	if input.RequestDate != nil {
		request.RequestDate = *input.RequestDate
	}
	if input.Notes != nil {
		request.Notes = input.Notes
	}
	request.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSampleRequestNotFound
	}
	return nil
}
