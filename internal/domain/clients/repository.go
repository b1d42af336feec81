package clients

import "context"

type Repository interface {
	// List returns clients with assignments (team member preloaded),
	// ordered by last_activity descending.
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int64) (*Client, error)
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	// Delete removes the client; dependent assignments, activities and work
	// sessions go with it via foreign keys.
	Delete(ctx context.Context, id int64) (bool, error)

	// Assign is idempotent for an existing (client, member) pair.
	Assign(ctx context.Context, clientID, teamMemberID int64) error

	ListActivities(ctx context.Context, clientID int64) ([]Activity, error)
	CreateActivity(ctx context.Context, activity *Activity) error
	ListRecentActivities(ctx context.Context, limit int) ([]ActivityWithClient, error)
}
