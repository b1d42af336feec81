package samples

import "context"

type Repository interface {
	// List orders by request_date descending.
	List(ctx context.Context) ([]SampleRequest, error)
	GetByID(ctx context.Context, id int64) (*SampleRequest, error)
	Create(ctx context.Context, request *SampleRequest) error
	Update(ctx context.Context, request *SampleRequest) error
	Delete(ctx context.Context, id int64) (bool, error)
}
