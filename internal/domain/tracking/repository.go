package tracking

import (
	"context"
	"time"
)

type Repository interface {
	ListSessionsByDate(ctx context.Context, date time.Time) ([]WorkSession, error)
	// CreateSession returns the existing row when the (client, date) pair is
	// already checked in.
	CreateSession(ctx context.Context, session *WorkSession) error
	DeleteSession(ctx context.Context, clientID int64, date time.Time) (bool, error)

	GetCountByDate(ctx context.Context, date time.Time) (*DailyImageCount, error)
	// UpsertCount updates the row for date if present, inserts otherwise.
	UpsertCount(ctx context.Context, date time.Time, count int) (*DailyImageCount, error)
	ListCountsBetween(ctx context.Context, from, to time.Time) ([]DailyImageCount, error)
}
