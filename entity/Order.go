package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a dish at order time. Later edits to the
// catalog never touch it.
type OrderItem struct {
	DishID   uint            `json:"dishId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type OrderItems []OrderItem

// StatusTimes records when each status was first entered, keyed by status
// name, in unix milliseconds.
type StatusTimes map[OrderStatus]int64

type Order struct {
	gorm.Model
	Items       OrderItems  `gorm:"serializer:json" json:"items"`
	Status      OrderStatus `gorm:"type:varchar(32);index" json:"status"`
	TableNumber string      `json:"tableNumber,omitempty"`
	Timestamps  StatusTimes `gorm:"serializer:json" json:"timestamps"`

	PaymentMethod string `json:"paymentMethod,omitempty"`

	UserID    uint   `gorm:"index" json:"userId"`
	UserEmail string `json:"userEmail"`
}

// IsNew reports whether the kitchen has not picked the order up yet, i.e.
// it never entered Cooking.
func (o *Order) IsNew() bool {
	_, ok := o.Timestamps[StatusCooking]
	return !ok
}

func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}
