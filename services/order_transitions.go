package services

import (
	"errors"
	"time"

	"github.com/tomasbagu/POSapp/entity"
	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// advance validates the forward move and commits it guarded on the status
// the check saw. A concurrent transition makes the guarded update miss and
// the move surfaces as a conflict instead of landing behind the newer state.
func (s *OrderService) advance(tx *gorm.DB, o *entity.Order, next entity.OrderStatus) error {
	if !entity.CanTransition(o.Status, next) {
		return ErrInvalidTransition
	}

	stamps := o.Timestamps
	if stamps == nil {
		stamps = entity.StatusTimes{}
	}
	if _, seen := stamps[next]; !seen {
		stamps[next] = time.Now().UnixMilli()
	}

	affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next, stamps)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	o.Status = next
	o.Timestamps = stamps
	return nil
}

// SetStatus advances an order through the preparation sequence. The
// requested status must be strictly forward of the current one; the kitchen
// buttons may skip intermediate states, but nothing ever moves back. The
// first time a status is entered its timestamp is recorded alongside the
// status in the same write.
func (s *OrderService) SetStatus(orderID uint, next entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	if err := s.advance(s.Repo.DB, o, next); err != nil {
		return nil, err
	}

	s.publish()
	return o, nil
}

// RecordPayment stores the chosen payment method and closes the order. The
// cashier confirms payment from the Ready for Payment screen, but closing
// is accepted from any earlier state the board may be showing. Both writes
// share one transaction, so a refused close leaves the method untouched.
func (s *OrderService) RecordPayment(orderID uint, method string) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	err = s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.advance(tx, o, entity.StatusDone); err != nil {
			return err
		}
		affected, err := s.Repo.UpdatePaymentMethod(tx, orderID, method)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.PaymentMethod = method
	s.publish()
	return o, nil
}
