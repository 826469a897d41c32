package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(StatusOrdered, StatusCooking))
	assert.True(t, CanTransition(StatusCooking, StatusReadyForPickup))
	assert.True(t, CanTransition(StatusReadyForPayment, StatusDone))

	// the kitchen buttons may skip states
	assert.True(t, CanTransition(StatusOrdered, StatusDelivered))
	assert.True(t, CanTransition(StatusOrdered, StatusDone))

	// never backward, never self
	assert.False(t, CanTransition(StatusCooking, StatusOrdered))
	assert.False(t, CanTransition(StatusDone, StatusReadyForPayment))
	assert.False(t, CanTransition(StatusCooking, StatusCooking))

	// unknown values on either side
	assert.False(t, CanTransition(StatusOrdered, OrderStatus("Burnt")))
	assert.False(t, CanTransition(OrderStatus(""), StatusCooking))
}

func TestIsNewDerivedFromCookingTimestamp(t *testing.T) {
	o := Order{Timestamps: StatusTimes{StatusOrdered: 1000}}
	assert.True(t, o.IsNew())

	o.Timestamps[StatusCooking] = 2000
	assert.False(t, o.IsNew())

	// no timestamp map at all still counts as new
	assert.True(t, (&Order{}).IsNew())
}

func TestValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("Burnt").Valid())
}
