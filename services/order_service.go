package services

import (
	"errors"
	"log"
	"time"

	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/repository"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotFound  = errors.New("not found")
)

// OrderService owns order records and their lifecycle. Every mutation
// publishes a fresh snapshot through the broker so the live views of all
// three roles stay current.
type OrderService struct {
	Repo   *repository.OrderRepository
	Cart   *CartService
	Broker *OrderBroker
}

func NewOrderService(repo *repository.OrderRepository, cart *CartService, broker *OrderBroker) *OrderService {
	return &OrderService{Repo: repo, Cart: cart, Broker: broker}
}

// Submit materializes the caller's cart into a new order in the Ordered
// state and then clears the cart. The two steps are sequential, not one
// transaction: the cart is in-memory and single-owner, so the caller never
// observes a half-submitted state.
func (s *OrderService) Submit(userID uint, email, tableNumber string) (*entity.Order, error) {
	items := s.Cart.Items(userID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	orderItems := make(entity.OrderItems, 0, len(items))
	for _, ci := range items {
		orderItems = append(orderItems, ci.ToOrderItem())
	}

	now := time.Now()
	order := &entity.Order{
		Items:       orderItems,
		Status:      entity.StatusOrdered,
		TableNumber: tableNumber,
		Timestamps:  entity.StatusTimes{entity.StatusOrdered: now.UnixMilli()},
		UserID:      userID,
		UserEmail:   email,
	}
	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}

	s.Cart.Clear(userID)
	s.publish()
	return order, nil
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.FindAll()
}

func (s *OrderService) ListByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	return s.Repo.FindByStatus(status)
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.FindByUser(userID)
}

// SubscribeAll registers a live listener over the whole board, ordered by
// creation time. The returned func cancels the subscription.
func (s *OrderService) SubscribeAll(fn SnapshotFunc) func() {
	return s.Broker.SubscribeAll(fn)
}

func (s *OrderService) SubscribeByStatus(status entity.OrderStatus, fn SnapshotFunc) func() {
	return s.Broker.SubscribeByStatus(status, fn)
}

func (s *OrderService) SubscribeOne(orderID uint, fn OrderFunc) func() {
	return s.Broker.SubscribeOne(orderID, fn)
}

// publish pushes the current collection state to every live listener.
// Failures here only degrade the live views, so they are logged and
// swallowed.
func (s *OrderService) publish() {
	all, err := s.Repo.FindAll()
	if err != nil {
		log.Printf("publish orders snapshot: %v", err)
		return
	}
	s.Broker.Publish(all)
}
