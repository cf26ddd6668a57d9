// Package seed bootstraps demo data for local development.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	orderdomain "github.com/taxsarthi/taxsarthi/internal/order/domain"
	"gorm.io/gorm"
)

var demoOrders = []orderdomain.Order{
	{
		Amount:          11800,
		CustomerName:    "Rohit Malhotra",
		CustomerAddress: "C-64, Preet Vihar, New Delhi - 110092",
		CustomerPhone:   "+91 98100 23415",
		ServiceName:     "GST Registration",
		Status:          orderdomain.OrderStatusPaid,
	},
	{
		Amount:         4999,
		CustomerName:   "Sunita Devi",
		ServiceName:    "Income Tax Filing",
		SubServiceName: "ITR-4 (Presumptive)",
		Status:         orderdomain.OrderStatusPaid,
	},
	{
		Amount:       2359,
		CustomerName: "Kailash Traders",
		ServiceName:  "GST Return Filing",
		Status:       orderdomain.OrderStatusCreated,
	},
}

// EnsureDemoOrders inserts the demo orders once; an existing non-empty orders
// table is left untouched.
func EnsureDemoOrders(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&orderdomain.Order{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for i := range demoOrders {
			order := demoOrders[i]
			order.ID = "order_" + node.Generate().String()
			order.Currency = "INR"
			order.CreatedAt = now.Add(-time.Duration(i) * 24 * time.Hour)
			order.UpdatedAt = order.CreatedAt
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
