package tracking

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type sessionKey struct {
	clientID int64
	date     time.Time
}

type fakeTrackingRepo struct {
	sessions map[sessionKey]*WorkSession
	counts   map[time.Time]*DailyImageCount
	nextID   int64
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{
		sessions: make(map[sessionKey]*WorkSession),
		counts:   make(map[time.Time]*DailyImageCount),
		nextID:   1,
	}
}

func (r *fakeTrackingRepo) ListSessionsByDate(ctx context.Context, date time.Time) ([]WorkSession, error) {
	items := make([]WorkSession, 0)
	for key, session := range r.sessions {
		if key.date.Equal(DateOnly(date)) {
			items = append(items, *session)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeTrackingRepo) CreateSession(ctx context.Context, session *WorkSession) error {
	key := sessionKey{clientID: session.ClientID, date: DateOnly(session.WorkDate)}
	if existing, ok := r.sessions[key]; ok {
		*session = *existing
		return nil
	}
	session.ID = r.nextID
	r.nextID++
	stored := *session
	r.sessions[key] = &stored
	return nil
}

func (r *fakeTrackingRepo) DeleteSession(ctx context.Context, clientID int64, date time.Time) (bool, error) {
	key := sessionKey{clientID: clientID, date: DateOnly(date)}
	if _, ok := r.sessions[key]; !ok {
		return false, nil
	}
	delete(r.sessions, key)
	return true, nil
}

func (r *fakeTrackingRepo) GetCountByDate(ctx context.Context, date time.Time) (*DailyImageCount, error) {
	row, ok := r.counts[DateOnly(date)]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (r *fakeTrackingRepo) UpsertCount(ctx context.Context, date time.Time, count int) (*DailyImageCount, error) {
	key := DateOnly(date)
	if row, ok := r.counts[key]; ok {
		row.ImageCount = count
		copied := *row
		return &copied, nil
	}
	row := &DailyImageCount{ID: r.nextID, Date: key, ImageCount: count}
	r.nextID++
	r.counts[key] = row
	copied := *row
	return &copied, nil
}

func (r *fakeTrackingRepo) ListCountsBetween(ctx context.Context, from, to time.Time) ([]DailyImageCount, error) {
	items := make([]DailyImageCount, 0)
	for date, row := range r.counts {
		if date.Before(DateOnly(from)) || date.After(DateOnly(to)) {
			continue
		}
		items = append(items, *row)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func TestCheckInIsIdempotent(t *testing.T) {
	repo := newFakeTrackingRepo()
	service := NewService(repo)

	first, err := service.CheckIn(context.Background(), CheckInInput{ClientID: 1})
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	second, err := service.CheckIn(context.Background(), CheckInInput{ClientID: 1})
	if err != nil {
		t.Fatalf("second CheckIn: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("second check-in created new session: ids %d and %d", first.ID, second.ID)
	}

	sessions, err := service.TodaySessions(context.Background())
	if err != nil {
		t.Fatalf("TodaySessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("len(sessions) = %d, want 1", len(sessions))
	}
}

func TestCheckOutRemovesTodaySession(t *testing.T) {
	service := NewService(newFakeTrackingRepo())

	if _, err := service.CheckIn(context.Background(), CheckInInput{ClientID: 3}); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if err := service.CheckOut(context.Background(), 3); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	sessions, err := service.TodaySessions(context.Background())
	if err != nil {
		t.Fatalf("TodaySessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("len(sessions) = %d, want 0 after check-out", len(sessions))
	}

	if err := service.CheckOut(context.Background(), 3); !errors.Is(err, ErrWorkSessionNotFound) {
		t.Errorf("CheckOut without session: err = %v, want ErrWorkSessionNotFound", err)
	}
}

func TestTodayImageCountDefaultsToZero(t *testing.T) {
	service := NewService(newFakeTrackingRepo())

	count, err := service.TodayImageCount(context.Background())
	if err != nil {
		t.Fatalf("TodayImageCount: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 with no row", count)
	}
}

func TestSetImageCountUpsertsSingleRow(t *testing.T) {
	repo := newFakeTrackingRepo()
	service := NewService(repo)

	if _, err := service.SetTodayImageCount(context.Background(), 5); err != nil {
		t.Fatalf("SetTodayImageCount: %v", err)
	}
	if _, err := service.SetTodayImageCount(context.Background(), 9); err != nil {
		t.Fatalf("second SetTodayImageCount: %v", err)
	}

	count, err := service.TodayImageCount(context.Background())
	if err != nil {
		t.Fatalf("TodayImageCount: %v", err)
	}
	if count != 9 {
		t.Errorf("count = %d, want 9 (second write overwrites)", count)
	}
	if len(repo.counts) != 1 {
		t.Errorf("stored rows = %d, want exactly 1 per date", len(repo.counts))
	}
}

func TestSetImageCountRejectsNegative(t *testing.T) {
	service := NewService(newFakeTrackingRepo())

	_, err := service.SetImageCountForDate(context.Background(), time.Now(), -1)
	if !errors.Is(err, ErrInvalidCount) {
		t.Errorf("negative count: err = %v, want ErrInvalidCount", err)
	}
}

func TestMonthImageCounts(t *testing.T) {
	repo := newFakeTrackingRepo()
	service := NewService(repo)

	inside := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if _, err := service.SetImageCountForDate(context.Background(), inside, 4); err != nil {
		t.Fatalf("SetImageCountForDate: %v", err)
	}
	if _, err := service.SetImageCountForDate(context.Background(), outside, 7); err != nil {
		t.Fatalf("SetImageCountForDate: %v", err)
	}

	counts, err := service.MonthImageCounts(context.Background(), 2024, 3)
	if err != nil {
		t.Fatalf("MonthImageCounts: %v", err)
	}
	if len(counts) != 1 || counts[0].ImageCount != 4 {
		t.Errorf("counts = %+v, want single March row with count 4", counts)
	}

	if _, err := service.MonthImageCounts(context.Background(), 2024, 13); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("month 13: err = %v, want ErrInvalidMonth", err)
	}
}
