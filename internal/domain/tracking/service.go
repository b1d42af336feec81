package tracking

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) TodaySessions(ctx context.Context) ([]WorkSession, error) {
	return s.repo.ListSessionsByDate(ctx, DateOnly(s.now()))
}

// CheckIn records that work happened for the client today. Idempotent for a
// client already checked in.
func (s *Service) CheckIn(ctx context.Context, input CheckInInput) (*WorkSession, error) {
	session := WorkSession{
		ClientID: input.ClientID,
		WorkDate: DateOnly(s.now()),
		Duration: input.Duration,
		Notes:    input.Notes,
	}

	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// CheckOut removes today's session for the client.
func (s *Service) CheckOut(ctx context.Context, clientID int64) error {
	deleted, err := s.repo.DeleteSession(ctx, clientID, DateOnly(s.now()))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWorkSessionNotFound
	}
	return nil
}

func (s *Service) TodayImageCount(ctx context.Context) (int, error) {
	row, err := s.repo.GetCountByDate(ctx, DateOnly(s.now()))
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return row.ImageCount, nil
}

func (s *Service) SetTodayImageCount(ctx context.Context, count int) (*DailyImageCount, error) {
	return s.SetImageCountForDate(ctx, DateOnly(s.now()), count)
}

func (s *Service) SetImageCountForDate(ctx context.Context, date time.Time, count int) (*DailyImageCount, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}
	return s.repo.UpsertCount(ctx, DateOnly(date), count)
}

// MonthImageCounts returns the counters for every recorded day of a month,
// ordered by date ascending.
func (s *Service) MonthImageCounts(ctx context.Context, year, month int) ([]DailyImageCount, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.repo.ListCountsBetween(ctx, from, to)
}
