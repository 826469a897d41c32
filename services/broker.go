package services

import (
	"sync"

	"github.com/tomasbagu/POSapp/entity"
)

// SnapshotFunc receives the full result set of a live query on every change
// to the orders collection.
type SnapshotFunc func([]entity.Order)

// OrderFunc receives the current state of a single watched order.
type OrderFunc func(entity.Order)

// OrderBroker is the listener registry behind the live order views. The
// order service publishes a fresh snapshot after every mutation; the broker
// fans it out to whoever subscribed, filtered per subscription. Callbacks
// run synchronously on the mutating goroutine and must not block.
type OrderBroker struct {
	mu   sync.Mutex
	next int

	all      map[int]SnapshotFunc
	byStatus map[entity.OrderStatus]map[int]SnapshotFunc
	byOrder  map[uint]map[int]OrderFunc
}

func NewOrderBroker() *OrderBroker {
	return &OrderBroker{
		all:      make(map[int]SnapshotFunc),
		byStatus: make(map[entity.OrderStatus]map[int]SnapshotFunc),
		byOrder:  make(map[uint]map[int]OrderFunc),
	}
}

// SubscribeAll registers fn for the unfiltered board. The returned func
// removes the subscription; callers must invoke it on teardown or the
// listener lives for the rest of the process.
func (b *OrderBroker) SubscribeAll(fn SnapshotFunc) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.all[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.all, id)
	}
}

func (b *OrderBroker) SubscribeByStatus(status entity.OrderStatus, fn SnapshotFunc) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	if b.byStatus[status] == nil {
		b.byStatus[status] = make(map[int]SnapshotFunc)
	}
	b.byStatus[status][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.byStatus[status], id)
	}
}

func (b *OrderBroker) SubscribeOne(orderID uint, fn OrderFunc) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	if b.byOrder[orderID] == nil {
		b.byOrder[orderID] = make(map[int]OrderFunc)
	}
	b.byOrder[orderID][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.byOrder[orderID], id)
	}
}

// Publish fans the given snapshot out to every subscription. Status and
// single-order listeners get their view derived from the same snapshot, so
// all listeners observe a consistent state of the collection. The callback
// set is captured under the lock but invoked outside it, so a callback may
// subscribe or unsubscribe without deadlocking the registry.
func (b *OrderBroker) Publish(all []entity.Order) {
	b.mu.Lock()

	calls := make([]func(), 0, len(b.all))
	for _, fn := range b.all {
		fn := fn
		calls = append(calls, func() { fn(all) })
	}

	for status, subs := range b.byStatus {
		if len(subs) == 0 {
			continue
		}
		filtered := make([]entity.Order, 0)
		for _, o := range all {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		for _, fn := range subs {
			fn := fn
			calls = append(calls, func() { fn(filtered) })
		}
	}

	for orderID, subs := range b.byOrder {
		if len(subs) == 0 {
			continue
		}
		for _, o := range all {
			if o.ID == orderID {
				o := o
				for _, fn := range subs {
					fn := fn
					calls = append(calls, func() { fn(o) })
				}
				break
			}
		}
	}

	b.mu.Unlock()

	for _, call := range calls {
		call()
	}
}
