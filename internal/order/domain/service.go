package domain

import (
	"context"

	"github.com/taxsarthi/taxsarthi/pkg/db/pagination"
)

// CreateOrderRequest carries the fields needed to record an order.
type CreateOrderRequest struct {
	Amount          float64 `json:"amount" binding:"required"`
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerAddress string  `json:"customer_address"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email"`
	ServiceName     string  `json:"service_name" binding:"required"`
	SubServiceName  string  `json:"sub_service_name"`
}

type ListOrderRequest struct {
	Filter ListOrderFilter
	Page   pagination.Pagination
}

type ListOrderResponse struct {
	pagination.PageInfo
	Orders []*Order `json:"orders"`
}

type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, req ListOrderRequest) (ListOrderResponse, error)
	MarkPaid(ctx context.Context, id string) (*Order, error)
}
