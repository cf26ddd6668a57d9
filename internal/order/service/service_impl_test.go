package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxsarthi/taxsarthi/internal/order/domain"
	"github.com/taxsarthi/taxsarthi/internal/order/repository"
	"github.com/taxsarthi/taxsarthi/pkg/db/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*gorm.DB, domain.Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(ServiceParam{
		DB:         db,
		Repository: repository.Provide(),
		GenID:      node,
		Logger:     zap.NewNop(),
	})
	return db, svc
}

func TestCreate(t *testing.T) {
	_, svc := setupOrderTest(t)

	order, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		Amount:       11800,
		CustomerName: "  Rohit Malhotra ",
		ServiceName:  "GST Registration",
	})
	require.NoError(t, err)

	assert.True(t, len(order.ID) > len("order_"))
	assert.Equal(t, "order_", order.ID[:6])
	assert.Equal(t, 11800.0, order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, domain.OrderStatusCreated, order.Status)
	assert.Equal(t, "Rohit Malhotra", order.CustomerName)

	fetched, err := svc.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
}

func TestCreate_Validation(t *testing.T) {
	_, svc := setupOrderTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateOrderRequest{
		Amount: 0, CustomerName: "A", ServiceName: "B",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(ctx, domain.CreateOrderRequest{
		Amount: -50, CustomerName: "A", ServiceName: "B",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(ctx, domain.CreateOrderRequest{
		Amount: 100, CustomerName: "   ", ServiceName: "B",
	})
	assert.ErrorIs(t, err, domain.ErrMissingCustomer)

	_, err = svc.Create(ctx, domain.CreateOrderRequest{
		Amount: 100, CustomerName: "A", ServiceName: "",
	})
	assert.ErrorIs(t, err, domain.ErrMissingService)
}

func TestGetByID_NotFound(t *testing.T) {
	_, svc := setupOrderTest(t)

	_, err := svc.GetByID(context.Background(), "order_missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestMarkPaid(t *testing.T) {
	db, svc := setupOrderTest(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, domain.CreateOrderRequest{
		Amount: 4999, CustomerName: "Sunita Devi", ServiceName: "Income Tax Filing",
	})
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, paid.Status)

	// Idempotent on an already paid order.
	again, err := svc.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, again.Status)

	// Failed orders may not transition to paid.
	require.NoError(t, db.Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Update("status", domain.OrderStatusFailed).Error)
	_, err = svc.MarkPaid(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMarkPaid_NotFound(t *testing.T) {
	_, svc := setupOrderTest(t)

	_, err := svc.MarkPaid(context.Background(), "order_missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestList_CursorPagination(t *testing.T) {
	db, svc := setupOrderTest(t)
	ctx := context.Background()

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 5; i++ {
		order := &domain.Order{
			ID:           "order_" + node.Generate().String(),
			Amount:       1000 + float64(i),
			Currency:     "INR",
			Status:       domain.OrderStatusCreated,
			CustomerName: fmt.Sprintf("Customer %d", i),
			ServiceName:  "GST Registration",
			CreatedAt:    base.AddDate(0, 0, i),
			UpdatedAt:    base.AddDate(0, 0, i),
		}
		require.NoError(t, db.Create(order).Error)
		ids = append(ids, order.ID)
	}

	// Newest first.
	page1, err := svc.List(ctx, domain.ListOrderRequest{
		Page: pagination.Pagination{PageSize: 2},
	})
	require.NoError(t, err)
	require.Len(t, page1.Orders, 2)
	assert.True(t, page1.HasMore)
	assert.Equal(t, ids[4], page1.Orders[0].ID)
	assert.Equal(t, ids[3], page1.Orders[1].ID)

	page2, err := svc.List(ctx, domain.ListOrderRequest{
		Page: pagination.Pagination{PageSize: 2, PageToken: page1.NextPageToken},
	})
	require.NoError(t, err)
	require.Len(t, page2.Orders, 2)
	assert.True(t, page2.HasMore)
	assert.Equal(t, ids[2], page2.Orders[0].ID)
	assert.Equal(t, ids[1], page2.Orders[1].ID)

	page3, err := svc.List(ctx, domain.ListOrderRequest{
		Page: pagination.Pagination{PageSize: 2, PageToken: page2.NextPageToken},
	})
	require.NoError(t, err)
	require.Len(t, page3.Orders, 1)
	assert.False(t, page3.HasMore)
	assert.Equal(t, ids[0], page3.Orders[0].ID)
}

func TestList_InvalidPageToken(t *testing.T) {
	_, svc := setupOrderTest(t)
	ctx := context.Background()

	// Not base64 at all.
	_, err := svc.List(ctx, domain.ListOrderRequest{
		Page: pagination.Pagination{PageSize: 2, PageToken: "!!not-a-token!!"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPageToken)

	// Well-formed envelope, unparseable timestamp.
	token, err := pagination.EncodeCursor(pagination.Cursor{ID: "order_1", CreatedAt: "yesterday"})
	require.NoError(t, err)
	_, err = svc.List(ctx, domain.ListOrderRequest{
		Page: pagination.Pagination{PageSize: 2, PageToken: token},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPageToken)

	// Missing ID.
	token, err = pagination.EncodeCursor(pagination.Cursor{CreatedAt: "2026-08-01T00:00:00Z"})
	require.NoError(t, err)
	_, err = svc.List(ctx, domain.ListOrderRequest{
		Page: pagination.Pagination{PageSize: 2, PageToken: token},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPageToken)
}

func TestList_CreatedRangeFilter(t *testing.T) {
	db, svc := setupOrderTest(t)
	ctx := context.Background()

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 4; i++ {
		order := &domain.Order{
			ID:           "order_" + node.Generate().String(),
			Amount:       500,
			Currency:     "INR",
			Status:       domain.OrderStatusCreated,
			CustomerName: fmt.Sprintf("Customer %d", i),
			ServiceName:  "GST Return Filing",
			CreatedAt:    base.AddDate(0, 0, i*7),
			UpdatedAt:    base.AddDate(0, 0, i*7),
		}
		require.NoError(t, db.Create(order).Error)
		ids = append(ids, order.ID)
	}

	from := base.AddDate(0, 0, 7)
	to := base.AddDate(0, 0, 14)
	resp, err := svc.List(ctx, domain.ListOrderRequest{
		Filter: domain.ListOrderFilter{CreatedFrom: &from, CreatedTo: &to},
		Page:   pagination.Pagination{PageSize: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, ids[2], resp.Orders[0].ID)
	assert.Equal(t, ids[1], resp.Orders[1].ID)
}

func TestList_InvalidTimeRange(t *testing.T) {
	_, svc := setupOrderTest(t)

	from := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -7)
	_, err := svc.List(context.Background(), domain.ListOrderRequest{
		Filter: domain.ListOrderFilter{CreatedFrom: &from, CreatedTo: &to},
		Page:   pagination.Pagination{PageSize: 10},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestList_StatusFilter(t *testing.T) {
	_, svc := setupOrderTest(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateOrderRequest{
		Amount: 100, CustomerName: "A", ServiceName: "S",
	})
	require.NoError(t, err)
	paid, err := svc.Create(ctx, domain.CreateOrderRequest{
		Amount: 200, CustomerName: "B", ServiceName: "S",
	})
	require.NoError(t, err)
	_, err = svc.MarkPaid(ctx, paid.ID)
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListOrderRequest{
		Filter: domain.ListOrderFilter{Status: domain.OrderStatusPaid},
		Page:   pagination.Pagination{PageSize: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, paid.ID, resp.Orders[0].ID)
	assert.NotEqual(t, created.ID, resp.Orders[0].ID)
}
