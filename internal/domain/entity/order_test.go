package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	assert.True(t, CanTransitionOrder(OrderPending, OrderShipped))
	assert.True(t, CanTransitionOrder(OrderPending, OrderCancelled))
	assert.True(t, CanTransitionOrder(OrderShipped, OrderDelivered))
	assert.True(t, CanTransitionOrder(OrderShipped, OrderCancelled))

	assert.False(t, CanTransitionOrder(OrderPending, OrderDelivered))
	assert.False(t, CanTransitionOrder(OrderShipped, OrderPending))
	assert.False(t, CanTransitionOrder(OrderDelivered, OrderShipped))
	assert.False(t, CanTransitionOrder(OrderDelivered, OrderCancelled))
	assert.False(t, CanTransitionOrder(OrderCancelled, OrderPending))
	assert.False(t, CanTransitionOrder(OrderPending, OrderPending))
}

func TestIsOrderStatus(t *testing.T) {
	for _, status := range []string{OrderPending, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, IsOrderStatus(status))
	}
	assert.False(t, IsOrderStatus("returned"))
	assert.False(t, IsOrderStatus(""))
}
