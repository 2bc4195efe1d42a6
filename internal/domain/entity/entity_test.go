package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusConfirmed, OrderStatusShipped, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCompleted, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusPending, OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_TerminalStates(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		for _, next := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
	assert.False(t, OrderStatus("unknown").IsValid())
}

func TestNewCart_Totals(t *testing.T) {
	userID := uuid.New()
	cake := &Product{ID: uuid.New(), Price: decimal.RequireFromString("450")}
	tart := &Product{ID: uuid.New(), Price: decimal.RequireFromString("99.90")}

	cart := NewCart(userID, []*CartItem{
		{Line: &CartLine{ProductID: cake.ID, Quantity: 2}, Product: cake},
		{Line: &CartLine{ProductID: tart.ID, Quantity: 3}, Product: tart},
	})

	assert.True(t, decimal.RequireFromString("1199.70").Equal(cart.Total))
	assert.Equal(t, 5, cart.ItemCount)
	assert.False(t, cart.IsEmpty())

	empty := NewCart(userID, nil)
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.Total.IsZero())
}

func TestOrder_LinesTotal(t *testing.T) {
	order := &Order{Lines: []*OrderLine{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("120.50")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("380")},
	}}

	assert.True(t, decimal.RequireFromString("621").Equal(order.LinesTotal()))
}

func TestValidLineQuantity(t *testing.T) {
	assert.False(t, ValidLineQuantity(0))
	assert.True(t, ValidLineQuantity(1))
	assert.True(t, ValidLineQuantity(100))
	assert.False(t, ValidLineQuantity(101))
}

func TestParseRoles(t *testing.T) {
	roles := ParseRoles([]string{"customer", "root", "admin"})

	assert.Equal(t, Roles{RoleCustomer, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"customer", "admin"}, roles.Strings())
}

func TestProduct_PriceInRange(t *testing.T) {
	assert.True(t, (&Product{Price: decimal.RequireFromString("0.01")}).PriceInRange())
	assert.True(t, (&Product{Price: decimal.RequireFromString("10000")}).PriceInRange())
	assert.False(t, (&Product{Price: decimal.Zero}).PriceInRange())
	assert.False(t, (&Product{Price: decimal.RequireFromString("10000.01")}).PriceInRange())
}
