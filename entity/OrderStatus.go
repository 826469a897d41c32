package entity

type OrderStatus string

const (
	StatusOrdered         OrderStatus = "Ordered"
	StatusCooking         OrderStatus = "Cooking"
	StatusReadyForPickup  OrderStatus = "Ready for Pickup"
	StatusDelivered       OrderStatus = "Delivered"
	StatusReadyForPayment OrderStatus = "Ready for Payment"
	StatusDone            OrderStatus = "Done"
)

// statusSeq fixes the linear preparation sequence. Transitions are only
// allowed to move forward through it.
var statusSeq = map[OrderStatus]int{
	StatusOrdered:         0,
	StatusCooking:         1,
	StatusReadyForPickup:  2,
	StatusDelivered:       3,
	StatusReadyForPayment: 4,
	StatusDone:            5,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusSeq[s]
	return ok
}

// CanTransition reports whether an order may move from -> to. Skipping
// intermediate states is allowed, going backward is not.
func CanTransition(from, to OrderStatus) bool {
	a, ok := statusSeq[from]
	if !ok {
		return false
	}
	b, ok := statusSeq[to]
	if !ok {
		return false
	}
	return b > a
}

func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusOrdered,
		StatusCooking,
		StatusReadyForPickup,
		StatusDelivered,
		StatusReadyForPayment,
		StatusDone,
	}
}
