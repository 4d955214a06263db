package insights

// NormalizeStats converts the EUR revenue figures of every day to USD and
// applies the new-customer spend fallback. It returns a fresh map; the input
// is never mutated. Callers must apply it exactly once per fetched payload:
// the conversion is multiplicative, so a second pass inflates revenue.
func NormalizeStats(stats map[string]DailyStat, rates Rates) map[string]DailyStat {
	out := make(map[string]DailyStat, len(stats))
	for date, day := range stats {
		if day.Date == "" {
			day.Date = date
		}

		// Upstream sometimes reports undifferentiated data where the
		// new-customer slice equals the whole day. In that degenerate
		// case the new-customer spend is the whole day's spend too.
		if day.NewSpend == 0 && day.NewRevenue == day.Revenue {
			day.NewSpend = day.Spend
		}

		day.Revenue *= rates.USDRate
		day.NewRevenue *= rates.USDRate
		out[date] = day
	}
	return out
}
