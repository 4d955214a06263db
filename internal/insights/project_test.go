package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feeOpts() ProjectorOptions {
	return ProjectorOptions{Rates: DefaultRates, OrderFeeHaircut: true}
}

func TestProjectOrderConvertsEURRevenue(t *testing.T) {
	detail := ProjectOrder(Order{Revenue: "100", Cost: "20", Shipped: "5"}, feeOpts())

	assert.InDelta(t, 115, detail.USDRevenue, 1e-9)
	assert.InDelta(t, 25, detail.Spend, 1e-9)
	assert.InDelta(t, 115*0.945-25, detail.GrossProfit, 1e-9)
	assert.InDelta(t, (115*0.945-25)/115, detail.GrossProfitRatio, 1e-9)
}

func TestProjectOrderPrefersUSDOverride(t *testing.T) {
	detail := ProjectOrder(Order{Revenue: "100", RevenueUSD: "120.50"}, feeOpts())
	assert.InDelta(t, 120.50, detail.USDRevenue, 1e-9)

	// Malformed override falls back to the EUR conversion.
	detail = ProjectOrder(Order{Revenue: "100", RevenueUSD: "n/a"}, feeOpts())
	assert.InDelta(t, 115, detail.USDRevenue, 1e-9)
}

func TestProjectOrderPrefersCombinedBaseSpend(t *testing.T) {
	detail := ProjectOrder(Order{Revenue: "100", Base: 31.5, Cost: "20", Shipped: "5"}, feeOpts())
	assert.InDelta(t, 31.5, detail.Spend, 1e-9)

	detail = ProjectOrder(Order{Revenue: "100", Cost: "20", Shipped: "5"}, feeOpts())
	assert.InDelta(t, 25, detail.Spend, 1e-9)
}

func TestProjectOrderWithoutFeeHaircut(t *testing.T) {
	opts := ProjectorOptions{Rates: DefaultRates, OrderFeeHaircut: false}
	detail := ProjectOrder(Order{Revenue: "100", Cost: "15"}, opts)

	assert.InDelta(t, 115-15, detail.GrossProfit, 1e-9)
}

func TestProjectOrderZeroRevenueGuardsRatio(t *testing.T) {
	detail := ProjectOrder(Order{Revenue: "0", Cost: "10"}, feeOpts())

	assert.Zero(t, detail.USDRevenue)
	assert.Zero(t, detail.GrossProfitRatio)
	assert.InDelta(t, -10, detail.GrossProfit, 1e-9)
}

func TestProjectOrderTreatsGarbageAsZero(t *testing.T) {
	detail := ProjectOrder(Order{Revenue: "abc", Cost: "xyz", Shipped: ""}, feeOpts())

	assert.Zero(t, detail.USDRevenue)
	assert.Zero(t, detail.Spend)
	assert.Zero(t, detail.GrossProfitRatio)
}

func TestProjectOrdersPreservesOrderAndLineItems(t *testing.T) {
	orders := []Order{
		{ID: "a", Revenue: "10", OrderLineItems: []OrderLineItem{{SKU: "SKU-1", Quantity: 2, Price: "5.00"}}},
		{ID: "b", Revenue: "20"},
	}

	details := ProjectOrders(orders, feeOpts())
	require.Len(t, details, 2)
	assert.Equal(t, "a", details[0].ID)
	assert.Equal(t, "b", details[1].ID)
	require.Len(t, details[0].OrderLineItems, 1)
	assert.Equal(t, "SKU-1", details[0].OrderLineItems[0].SKU)
}
