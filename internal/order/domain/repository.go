package domain

import (
	"context"
	"time"

	"github.com/taxsarthi/taxsarthi/pkg/db/pagination"
	"gorm.io/gorm"
)

// ListCursor is a decoded keyset position. The service parses the opaque
// page token into this before it reaches the repository.
type ListCursor struct {
	ID        string
	CreatedAt time.Time
}

// ListOrderFilter narrows List results.
type ListOrderFilter struct {
	Status      OrderStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Cursor      *ListCursor
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Order, error)
	List(ctx context.Context, db *gorm.DB, filter ListOrderFilter, page pagination.Pagination) ([]*Order, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status OrderStatus) error
}
