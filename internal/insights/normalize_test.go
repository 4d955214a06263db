package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatsConvertsRevenueOnly(t *testing.T) {
	raw := map[string]DailyStat{
		"01-06-2025": {Revenue: 1000, Spend: 300, Ads: 50, Orders: 10, NewRevenue: 200, NewSpend: 30},
	}

	got := NormalizeStats(raw, DefaultRates)

	day := got["01-06-2025"]
	assert.InDelta(t, 1150, day.Revenue, 1e-9)
	assert.InDelta(t, 230, day.NewRevenue, 1e-9)
	// spend and ads are already USD
	assert.InDelta(t, 300, day.Spend, 1e-9)
	assert.InDelta(t, 50, day.Ads, 1e-9)
	assert.InDelta(t, 30, day.NewSpend, 1e-9)
	assert.Equal(t, "01-06-2025", day.Date)
}

func TestNormalizeStatsNewSpendFallback(t *testing.T) {
	// Undifferentiated upstream data: the new-customer slice is the whole
	// day, so new spend inherits the day's spend.
	raw := map[string]DailyStat{
		"01-06-2025": {Revenue: 400, Spend: 120, NewRevenue: 400, NewSpend: 0},
	}

	got := NormalizeStats(raw, DefaultRates)
	assert.InDelta(t, 120, got["01-06-2025"].NewSpend, 1e-9)

	// Differentiated data keeps its zero.
	raw = map[string]DailyStat{
		"01-06-2025": {Revenue: 400, Spend: 120, NewRevenue: 100, NewSpend: 0},
	}
	got = NormalizeStats(raw, DefaultRates)
	assert.Zero(t, got["01-06-2025"].NewSpend)
}

func TestNormalizeStatsDoesNotMutateInput(t *testing.T) {
	raw := map[string]DailyStat{
		"01-06-2025": {Revenue: 1000, NewRevenue: 1000, Spend: 10},
	}

	_ = NormalizeStats(raw, DefaultRates)

	require.InDelta(t, 1000, raw["01-06-2025"].Revenue, 1e-9)
	require.Zero(t, raw["01-06-2025"].NewSpend)
}

func TestNormalizeStatsIsNotIdempotent(t *testing.T) {
	// Applying the conversion twice inflates revenue; this pins down why
	// normalization must happen exactly once per fetch.
	raw := map[string]DailyStat{"01-06-2025": {Revenue: 100}}

	once := NormalizeStats(raw, DefaultRates)
	twice := NormalizeStats(once, DefaultRates)

	assert.InDelta(t, 115, once["01-06-2025"].Revenue, 1e-9)
	assert.InDelta(t, 132.25, twice["01-06-2025"].Revenue, 1e-9)
}
