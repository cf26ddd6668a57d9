package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/taxsarthi/taxsarthi/internal/order/domain"
	pkgdb "github.com/taxsarthi/taxsarthi/pkg/db"
	"github.com/taxsarthi/taxsarthi/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB         *gorm.DB
	Repository domain.Repository
	GenID      *snowflake.Node
	Logger     *zap.Logger
}

type service struct {
	db    *gorm.DB
	repo  domain.Repository
	genID *snowflake.Node
	log   *zap.Logger
}

func New(p ServiceParam) domain.Service {
	return &service{
		db:    p.DB,
		repo:  p.Repository,
		genID: p.GenID,
		log:   p.Logger,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, domain.ErrMissingCustomer
	}
	if strings.TrimSpace(req.ServiceName) == "" {
		return nil, domain.ErrMissingService
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:              "order_" + s.genID.Generate().String(),
		Amount:          req.Amount,
		Currency:        "INR",
		Status:          domain.OrderStatusCreated,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		ServiceName:     strings.TrimSpace(req.ServiceName),
		SubServiceName:  strings.TrimSpace(req.SubServiceName),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, order); err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return nil, fmt.Errorf("order id collision: %w", err)
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.Float64("amount", order.Amount),
		zap.String("service", order.ServiceName),
	)
	return order, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *service) List(ctx context.Context, req domain.ListOrderRequest) (domain.ListOrderResponse, error) {
	filter := req.Filter
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedFrom.After(*filter.CreatedTo) {
		return domain.ListOrderResponse{}, domain.ErrInvalidTimeRange
	}

	if token := strings.TrimSpace(req.Page.PageToken); token != "" {
		decoded, err := pagination.DecodeCursor(token)
		if err != nil {
			return domain.ListOrderResponse{}, domain.ErrInvalidPageToken
		}
		createdAt, err := time.Parse(time.RFC3339Nano, decoded.CreatedAt)
		if err != nil {
			return domain.ListOrderResponse{}, domain.ErrInvalidPageToken
		}
		if strings.TrimSpace(decoded.ID) == "" {
			return domain.ListOrderResponse{}, domain.ErrInvalidPageToken
		}
		filter.Cursor = &domain.ListCursor{ID: decoded.ID, CreatedAt: createdAt}
	}

	orders, err := s.repo.List(ctx, s.db, filter, req.Page)
	if err != nil {
		return domain.ListOrderResponse{}, fmt.Errorf("list orders: %w", err)
	}

	orders, pageInfo := pagination.BuildCursorPageInfo(orders, req.Page.Limit(), func(o *domain.Order) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{
			ID:        o.ID,
			CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		return token
	})

	return domain.ListOrderResponse{
		PageInfo: *pageInfo,
		Orders:   orders,
	}, nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusPaid {
		return order, nil
	}
	if order.Status != domain.OrderStatusCreated {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, s.db, id, domain.OrderStatusPaid); err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}
	order.Status = domain.OrderStatusPaid

	s.log.Info("order marked paid", zap.String("order_id", id))
	return order, nil
}
