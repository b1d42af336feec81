package tracking

import "time"

// WorkSession marks that work happened for a client on a given date. One row
// per client per day; checking in twice is a no-op.
type WorkSession struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ClientID  int64     `gorm:"not null;uniqueIndex:uq_work_sessions_client_day"`
	WorkDate  time.Time `gorm:"type:date;not null;uniqueIndex:uq_work_sessions_client_day"`
	Duration  *int
	Notes     *string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// DailyImageCount holds one production counter per calendar date.
type DailyImageCount struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Date       time.Time `gorm:"type:date;not null;unique"`
	ImageCount int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type CheckInInput struct {
	ClientID int64
	Duration *int
	Notes    *string
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
