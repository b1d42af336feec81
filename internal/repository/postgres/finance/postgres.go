package finance

import (
	"context"
	"errors"

	financedomain "studio-backoffice-go/internal/domain/finance"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTransactions(ctx context.Context) ([]financedomain.Transaction, error) {
	var txs []financedomain.Transaction
	if err := r.db.WithContext(ctx).
		Order("date desc, id desc").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *PostgresRepository) GetTransactionByID(ctx context.Context, id int64) (*financedomain.Transaction, error) {
	var tx financedomain.Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, financedomain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *PostgresRepository) CreateTransaction(ctx context.Context, tx *financedomain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *PostgresRepository) UpdateTransaction(ctx context.Context, tx *financedomain.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *PostgresRepository) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&financedomain.Transaction{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListMarketingTransactions(ctx context.Context) ([]financedomain.MarketingTransaction, error) {
	var txs []financedomain.MarketingTransaction
	if err := r.db.WithContext(ctx).
		Order("date desc, id desc").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *PostgresRepository) GetMarketingTransactionByID(ctx context.Context, id int64) (*financedomain.MarketingTransaction, error) {
	var tx financedomain.MarketingTransaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, financedomain.ErrMarketingTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *PostgresRepository) CreateMarketingTransaction(ctx context.Context, tx *financedomain.MarketingTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *PostgresRepository) UpdateMarketingTransaction(ctx context.Context, tx *financedomain.MarketingTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *PostgresRepository) DeleteMarketingTransaction(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&financedomain.MarketingTransaction{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
