package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DishCategory string

const (
	CategoryStarter DishCategory = "starter"
	CategoryMain    DishCategory = "main"
	CategoryDessert DishCategory = "dessert"
	CategoryDrink   DishCategory = "drink"
)

func (c DishCategory) Valid() bool {
	switch c {
	case CategoryStarter, CategoryMain, CategoryDessert, CategoryDrink:
		return true
	}
	return false
}

type Dish struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description string          `json:"description"`
	Category    DishCategory    `gorm:"type:varchar(16);index" json:"category"`

	// ImagePath is kept so the stored object can be removed with the dish.
	ImageURL  string `json:"imageUrl,omitempty"`
	ImagePath string `json:"-"`
}
