package clients

import (
	"context"
	"errors"

	clientsdomain "studio-backoffice-go/internal/domain/clients"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]clientsdomain.Client, error) {
	var list []clientsdomain.Client
	if err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assigned_at asc")
		}).
		Preload("Assignments.TeamMember").
		Order("last_activity desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*clientsdomain.Client, error) {
	var client clientsdomain.Client
	if err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assigned_at asc")
		}).
		Preload("Assignments.TeamMember").
		First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clientsdomain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *PostgresRepository) Create(ctx context.Context, client *clientsdomain.Client) error {
	return r.db.WithContext(ctx).Omit("Assignments").Create(client).Error
}

func (r *PostgresRepository) Update(ctx context.Context, client *clientsdomain.Client) error {
	return r.db.WithContext(ctx).
		Omit("Assignments", "CreatedAt").
		Save(client).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&clientsdomain.Client{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Assign(ctx context.Context, clientID, teamMemberID int64) error {
	assignment := clientsdomain.Assignment{
		ClientID:     clientID,
		TeamMemberID: teamMemberID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "team_member_id"}},
			DoNothing: true,
		}).
		Omit("TeamMember").
		Create(&assignment).Error
}

func (r *PostgresRepository) ListActivities(ctx context.Context, clientID int64) ([]clientsdomain.Activity, error) {
	var activities []clientsdomain.Activity
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *PostgresRepository) CreateActivity(ctx context.Context, activity *clientsdomain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *PostgresRepository) ListRecentActivities(ctx context.Context, limit int) ([]clientsdomain.ActivityWithClient, error) {
	var rows []clientsdomain.ActivityWithClient
	if err := r.db.WithContext(ctx).
		Model(&clientsdomain.Activity{}).
		Select("activities.*, clients.name AS client_name").
		Joins("INNER JOIN clients ON clients.id = activities.client_id").
		Order("activities.created_at desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
