package insights

// Metrics is the flat KPI record for one period, computed over
// already-normalized daily stats.
type Metrics struct {
	TotalRevenue            float64 `json:"totalRevenue"`
	TotalSpend              float64 `json:"totalSpend"`
	TotalOrders             int     `json:"totalOrders"`
	Ads                     float64 `json:"ads"`
	GrossProfit             float64 `json:"grossProfit"`
	GrossProfitRatio        float64 `json:"grossProfitRatio"`
	ContributionMargin      float64 `json:"contributionMargin"`
	ContributionMarginRatio float64 `json:"contributionMarginRatio"`
	MER                     float64 `json:"mer"`
	AOV                     float64 `json:"aov"`
	CAC                     float64 `json:"cac"`
	NewRevenue              float64 `json:"newRevenue"`
	NewOrders               int     `json:"newOrder"`
	NewSpend                float64 `json:"newSpend"`
	NewCustomers            int     `json:"newCustomers"`
}

// CalculateMetrics reduces a window of daily stats plus the window's
// first-time customers into a single KPI record. Pure and
// order-independent; an empty window yields all zeros. Every ratio is
// zero-guarded so the result always JSON-encodes (no NaN or Inf).
func CalculateMetrics(stats map[string]DailyStat, newCustomers []NewCustomer, rates Rates) Metrics {
	var m Metrics
	for _, day := range stats {
		m.TotalRevenue += day.Revenue
		m.TotalSpend += day.Spend
		m.TotalOrders += day.Orders
		m.Ads += day.Ads
		m.NewRevenue += day.NewRevenue
		m.NewOrders += day.NewOrders
		m.NewSpend += day.NewSpend
	}
	m.NewCustomers = len(newCustomers)

	m.GrossProfit = m.TotalRevenue*rates.FeeRetention - m.TotalSpend
	m.ContributionMargin = m.GrossProfit - m.Ads

	if m.TotalRevenue > 0 {
		m.GrossProfitRatio = m.GrossProfit / m.TotalRevenue * 100
		m.ContributionMarginRatio = m.ContributionMargin / m.TotalRevenue * 100
	}

	// MER historically keys off spend, not ad spend: a window with ads but
	// zero spend reports MER 0. Kept as-is; the extra ads guard only stops
	// a division by zero from leaking Inf into the payload.
	if m.TotalSpend > 0 && m.Ads > 0 {
		m.MER = m.TotalRevenue / m.Ads
	}

	if m.TotalOrders > 0 {
		m.AOV = m.TotalRevenue / float64(m.TotalOrders)
	}

	if m.Ads > 0 && m.NewCustomers > 0 {
		m.CAC = m.Ads / float64(m.NewCustomers)
	}

	return m
}
