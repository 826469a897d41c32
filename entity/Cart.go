package entity

import "github.com/shopspring/decimal"

// CartItem is a dish snapshot plus the selected quantity. Carts live in
// memory only, one per client session, and are never persisted.
type CartItem struct {
	Dish     Dish `json:"dish"`
	Quantity int  `json:"quantity"`
}

func (ci CartItem) Total() decimal.Decimal {
	return ci.Dish.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

func (ci CartItem) ToOrderItem() OrderItem {
	return OrderItem{
		DishID:   ci.Dish.ID,
		Name:     ci.Dish.Name,
		Price:    ci.Dish.Price,
		Quantity: ci.Quantity,
	}
}
