package insights

// ChartSeries carries the aligned per-day line series for the overview
// chart. The daily margin lines deliberately use the simple
// revenue-minus-costs form the chart has always shown; the fee-adjusted
// figures live in the aggregate KPIs.
type ChartSeries struct {
	Labels             []string  `json:"labels"`
	Revenue            []float64 `json:"revenue"`
	ContributionMargin []float64 `json:"contributionMargin"`
	GrossProfit        []float64 `json:"grossProfit"`
}

// TransformChart flattens normalized daily stats into sorted chart series.
func TransformChart(stats map[string]DailyStat) ChartSeries {
	days := SortedDays(stats)

	series := ChartSeries{
		Labels:             make([]string, len(days)),
		Revenue:            make([]float64, len(days)),
		ContributionMargin: make([]float64, len(days)),
		GrossProfit:        make([]float64, len(days)),
	}
	for i, day := range days {
		series.Labels[i] = day.Date
		series.Revenue[i] = day.Revenue
		series.ContributionMargin[i] = day.Revenue - day.Spend - day.Ads
		series.GrossProfit[i] = day.Revenue - day.Spend
	}
	return series
}

// BarField selects which daily figure a detail bar chart plots.
type BarField string

const (
	BarRevenue BarField = "revenue"
	BarSpend   BarField = "spend"
	BarAds     BarField = "ads"
	BarOrders  BarField = "orders"
)

// BarSeries carries one labeled value per day for a detail bar chart.
type BarSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// BarSet groups the detail bar series by field.
type BarSet map[BarField]BarSeries

// TransformBars builds the standard detail set.
func TransformBars(stats map[string]DailyStat) BarSet {
	return BarSet{
		BarRevenue: TransformBar(stats, BarRevenue),
		BarSpend:   TransformBar(stats, BarSpend),
		BarAds:     TransformBar(stats, BarAds),
		BarOrders:  TransformBar(stats, BarOrders),
	}
}

// TransformBar extracts a single daily metric as a sorted bar series.
// Unknown fields yield zeroes rather than an error; the chart just renders
// empty.
func TransformBar(stats map[string]DailyStat, field BarField) BarSeries {
	days := SortedDays(stats)

	series := BarSeries{
		Labels: make([]string, len(days)),
		Values: make([]float64, len(days)),
	}
	for i, day := range days {
		series.Labels[i] = day.Date
		switch field {
		case BarRevenue:
			series.Values[i] = day.Revenue
		case BarSpend:
			series.Values[i] = day.Spend
		case BarAds:
			series.Values[i] = day.Ads
		case BarOrders:
			series.Values[i] = float64(day.Orders)
		}
	}
	return series
}
