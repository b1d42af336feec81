package dashboard

import (
	"context"

	"studio-backoffice-go/internal/domain/clients"
	"studio-backoffice-go/internal/domain/finance"
)

// Repository exposes the full entity collections the aggregates scan. There
// is no incremental maintenance; every view is recomputed from these reads.
type Repository interface {
	ListClients(ctx context.Context) ([]clients.Client, error)
	ListTransactions(ctx context.Context) ([]finance.Transaction, error)
}
