package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMetricsEmptyWindowIsAllZero(t *testing.T) {
	m := CalculateMetrics(map[string]DailyStat{}, nil, DefaultRates)
	assert.Equal(t, Metrics{}, m)
}

func TestCalculateMetricsScenario(t *testing.T) {
	// 1000 EUR revenue day, already normalized to USD at 1.15.
	stats := NormalizeStats(map[string]DailyStat{
		"01-06-2025": {Date: "01-06-2025", Revenue: 1000, Spend: 300, Ads: 50, Orders: 10},
	}, DefaultRates)

	m := CalculateMetrics(stats, nil, DefaultRates)

	assert.InDelta(t, 1150, m.TotalRevenue, 1e-9)
	assert.InDelta(t, 786.75, m.GrossProfit, 1e-9)
	assert.InDelta(t, 736.75, m.ContributionMargin, 1e-9)
	assert.InDelta(t, 115, m.AOV, 1e-9)
	assert.InDelta(t, 786.75/1150*100, m.GrossProfitRatio, 1e-9)
	assert.InDelta(t, 736.75/1150*100, m.ContributionMarginRatio, 1e-9)
	assert.InDelta(t, 1150.0/50, m.MER, 1e-9)
}

func TestCalculateMetricsSumsAcrossDays(t *testing.T) {
	stats := map[string]DailyStat{
		"01-06-2025": {Revenue: 100, Spend: 10, Ads: 5, Orders: 2, NewRevenue: 40, NewOrders: 1, NewSpend: 4},
		"02-06-2025": {Revenue: 200, Spend: 20, Ads: 15, Orders: 3, NewRevenue: 60, NewOrders: 2, NewSpend: 6},
	}

	m := CalculateMetrics(stats, []NewCustomer{{CustomerID: "c1"}, {CustomerID: "c2"}}, DefaultRates)

	assert.InDelta(t, 300, m.TotalRevenue, 1e-9)
	assert.InDelta(t, 30, m.TotalSpend, 1e-9)
	assert.InDelta(t, 20, m.Ads, 1e-9)
	assert.Equal(t, 5, m.TotalOrders)
	assert.InDelta(t, 100, m.NewRevenue, 1e-9)
	assert.Equal(t, 3, m.NewOrders)
	assert.InDelta(t, 10, m.NewSpend, 1e-9)
	assert.Equal(t, 2, m.NewCustomers)
	assert.InDelta(t, 10, m.CAC, 1e-9)
}

// MER keys off total spend, not ad spend. A window with ads but no spend
// reports 0 even though revenue/ads is computable; a window with spend but
// no ads also reports 0 instead of surfacing Inf.
func TestMERSpendGuard(t *testing.T) {
	adsNoSpend := map[string]DailyStat{
		"01-06-2025": {Revenue: 500, Spend: 0, Ads: 100, Orders: 1},
	}
	assert.Zero(t, CalculateMetrics(adsNoSpend, nil, DefaultRates).MER)

	spendNoAds := map[string]DailyStat{
		"01-06-2025": {Revenue: 500, Spend: 100, Ads: 0, Orders: 1},
	}
	assert.Zero(t, CalculateMetrics(spendNoAds, nil, DefaultRates).MER)
}

func TestRatiosZeroWhenNoRevenue(t *testing.T) {
	stats := map[string]DailyStat{
		"01-06-2025": {Revenue: 0, Spend: 120, Ads: 30, Orders: 0},
	}
	m := CalculateMetrics(stats, nil, DefaultRates)

	assert.Zero(t, m.GrossProfitRatio)
	assert.Zero(t, m.ContributionMarginRatio)
	assert.Zero(t, m.AOV)
	assert.InDelta(t, -120, m.GrossProfit, 1e-9)
	assert.InDelta(t, -150, m.ContributionMargin, 1e-9)
}

func TestCACGuards(t *testing.T) {
	stats := map[string]DailyStat{
		"01-06-2025": {Revenue: 100, Spend: 10, Ads: 50, Orders: 1},
	}

	assert.Zero(t, CalculateMetrics(stats, nil, DefaultRates).CAC)

	noAds := map[string]DailyStat{
		"01-06-2025": {Revenue: 100, Spend: 10, Ads: 0, Orders: 1},
	}
	assert.Zero(t, CalculateMetrics(noAds, []NewCustomer{{CustomerID: "c"}}, DefaultRates).CAC)
}

func TestCalculateMetricsDoesNotMutateInput(t *testing.T) {
	stats := map[string]DailyStat{
		"01-06-2025": {Revenue: 100, Spend: 10, Ads: 5, Orders: 2},
	}
	CalculateMetrics(stats, nil, DefaultRates)
	assert.Equal(t, DailyStat{Revenue: 100, Spend: 10, Ads: 5, Orders: 2}, stats["01-06-2025"])
}
