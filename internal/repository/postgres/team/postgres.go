package team

import (
	"context"
	"errors"

	teamdomain "studio-backoffice-go/internal/domain/team"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]teamdomain.TeamMember, error) {
	query := r.db.WithContext(ctx).Model(&teamdomain.TeamMember{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var members []teamdomain.TeamMember
	if err := query.Order("created_at asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*teamdomain.TeamMember, error) {
	var member teamdomain.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamdomain.ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) Create(ctx context.Context, member *teamdomain.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&teamdomain.TeamMember{}).
		Where("id = ?", id).
		Update("is_active", active)
	return result.RowsAffected > 0, result.Error
}
