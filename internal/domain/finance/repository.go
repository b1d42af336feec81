package finance

import "context"

type Repository interface {
	ListTransactions(ctx context.Context) ([]Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (*Transaction, error)
	CreateTransaction(ctx context.Context, tx *Transaction) error
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id int64) (bool, error)

	ListMarketingTransactions(ctx context.Context) ([]MarketingTransaction, error)
	GetMarketingTransactionByID(ctx context.Context, id int64) (*MarketingTransaction, error)
	CreateMarketingTransaction(ctx context.Context, tx *MarketingTransaction) error
	UpdateMarketingTransaction(ctx context.Context, tx *MarketingTransaction) error
	DeleteMarketingTransaction(ctx context.Context, id int64) (bool, error)
}
