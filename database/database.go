package database

import (
	"context"

	"github.com/tieubaoca/policy-insights-be/types"
)

// QueryStore is the durable, append-only record of question/answer
// interactions. Append is atomic at row granularity.
type QueryStore interface {
	Append(ctx context.Context, record *types.QueryRecord) error
	List(ctx context.Context) ([]types.QueryRecord, error)
	Recent(ctx context.Context, n int) ([]types.QueryRecord, error)
	Count(ctx context.Context) (int, error)
}

// UserStore holds login accounts for the dashboard API.
type UserStore interface {
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	UpdateUser(ctx context.Context, user *types.User) error
	DeleteUser(ctx context.Context, id string) error
	PaginateUser(ctx context.Context, page, limit int64) ([]*types.User, int64, error)
}
