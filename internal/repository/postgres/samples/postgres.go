package samples

import (
	"context"
	"errors"

	samplesdomain "studio-backoffice-go/internal/domain/samples"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]samplesdomain.SampleRequest, error) {
	var requests []samplesdomain.SampleRequest
	if err := r.db.WithContext(ctx).
		Order("request_date desc, id desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*samplesdomain.SampleRequest, error) {
	var request samplesdomain.SampleRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, samplesdomain.ErrSampleRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *PostgresRepository) Create(ctx context.Context, request *samplesdomain.SampleRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *PostgresRepository) Update(ctx context.Context, request *samplesdomain.SampleRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&samplesdomain.SampleRequest{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
