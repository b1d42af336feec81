package tracking

import (
	"context"
	"errors"
	"time"

	trackingdomain "studio-backoffice-go/internal/domain/tracking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListSessionsByDate(ctx context.Context, date time.Time) ([]trackingdomain.WorkSession, error) {
	var sessions []trackingdomain.WorkSession
	if err := r.db.WithContext(ctx).
		Where("work_date = ?", trackingdomain.DateOnly(date)).
		Order("created_at asc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *PostgresRepository) CreateSession(ctx context.Context, session *trackingdomain.WorkSession) error {
	session.WorkDate = trackingdomain.DateOnly(session.WorkDate)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "work_date"}},
			DoNothing: true,
		}).
		Create(session).Error
	if err != nil {
		return err
	}

	// DoNothing leaves the struct without an id when the pair already exists;
	// load the surviving row either way.
	return r.db.WithContext(ctx).
		First(session, "client_id = ? AND work_date = ?", session.ClientID, session.WorkDate).
		Error
}

func (r *PostgresRepository) DeleteSession(ctx context.Context, clientID int64, date time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("client_id = ? AND work_date = ?", clientID, trackingdomain.DateOnly(date)).
		Delete(&trackingdomain.WorkSession{})
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) GetCountByDate(ctx context.Context, date time.Time) (*trackingdomain.DailyImageCount, error) {
	var count trackingdomain.DailyImageCount
	if err := r.db.WithContext(ctx).
		First(&count, "date = ?", trackingdomain.DateOnly(date)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &count, nil
}

func (r *PostgresRepository) UpsertCount(ctx context.Context, date time.Time, count int) (*trackingdomain.DailyImageCount, error) {
	row := trackingdomain.DailyImageCount{
		Date:       trackingdomain.DateOnly(date),
		ImageCount: count,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"image_count"}),
		}).
		Create(&row).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		First(&row, "date = ?", row.Date).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PostgresRepository) ListCountsBetween(ctx context.Context, from, to time.Time) ([]trackingdomain.DailyImageCount, error) {
	var counts []trackingdomain.DailyImageCount
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", trackingdomain.DateOnly(from), trackingdomain.DateOnly(to)).
		Order("date asc").
		Find(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
