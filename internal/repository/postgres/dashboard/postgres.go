package dashboard

import (
	"context"

	clientsdomain "studio-backoffice-go/internal/domain/clients"
	financedomain "studio-backoffice-go/internal/domain/finance"

	"gorm.io/gorm"
)

// PostgresRepository feeds the aggregate views with full-collection reads. The
// dashboard recomputes everything per request, so there are no incremental
// queries here.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListClients(ctx context.Context) ([]clientsdomain.Client, error) {
	var list []clientsdomain.Client
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PostgresRepository) ListTransactions(ctx context.Context) ([]financedomain.Transaction, error) {
	var txs []financedomain.Transaction
	if err := r.db.WithContext(ctx).Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
