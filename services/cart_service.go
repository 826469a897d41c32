package services

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tomasbagu/POSapp/entity"
)

// CartService keeps one cart per signed-in client, in memory only. A cart
// is owned by exactly one session; the lock only covers the map itself and
// concurrent calls from the same user's parallel requests.
type CartService struct {
	mu    sync.Mutex
	carts map[uint][]entity.CartItem
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[uint][]entity.CartItem)}
}

// Add puts one unit of the dish in the cart, merging with an existing line
// for the same dish.
func (s *CartService) Add(userID uint, dish entity.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].Dish.ID == dish.ID {
			items[i].Quantity++
			return
		}
	}
	s.carts[userID] = append(items, entity.CartItem{Dish: dish, Quantity: 1})
}

func (s *CartService) Remove(userID, dishID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(userID, dishID)
}

func (s *CartService) removeLocked(userID, dishID uint) {
	items := s.carts[userID]
	for i := range items {
		if items[i].Dish.ID == dishID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of a line. Zero or negative removes
// the line entirely.
func (s *CartService) SetQuantity(userID, dishID uint, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(userID, dishID)
		return
	}
	items := s.carts[userID]
	for i := range items {
		if items[i].Dish.ID == dishID {
			items[i].Quantity = qty
			return
		}
	}
}

func (s *CartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Items returns a copy of the cart in insertion order.
func (s *CartService) Items(userID uint) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out
}

// Total is computed on demand, never cached.
func (s *CartService) Total(userID uint) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := decimal.Zero
	for _, it := range s.carts[userID] {
		sum = sum.Add(it.Total())
	}
	return sum
}
