// Package domain contains persistence models for customer orders.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// OrderStatus represents order lifecycle states.
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// Order represents a paid service engagement. The ID is an opaque string
// minted at creation; its last eight characters feed the invoice number.
type Order struct {
	ID              string            `gorm:"primaryKey;type:text" json:"id"`
	Amount          float64           `gorm:"not null" json:"amount"` // tax-inclusive, rupees
	Currency        string            `gorm:"type:text;not null;default:'INR'" json:"currency"`
	Status          OrderStatus       `gorm:"type:text;not null;default:'created'" json:"status"`
	CustomerName    string            `gorm:"type:text;not null" json:"customer_name"`
	CustomerAddress string            `gorm:"type:text" json:"customer_address,omitempty"`
	CustomerPhone   string            `gorm:"type:text" json:"customer_phone,omitempty"`
	CustomerEmail   string            `gorm:"type:text" json:"customer_email,omitempty"`
	ServiceName     string            `gorm:"type:text;not null" json:"service_name"`
	SubServiceName  string            `gorm:"type:text" json:"sub_service_name,omitempty"`
	Metadata        datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "orders" }
