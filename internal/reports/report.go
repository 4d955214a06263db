package reports

import "github.com/vuapod/orderstats-backend/internal/insights"

// WindowInfo echoes a resolved query window back to the client.
type WindowInfo struct {
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
	App       string `json:"app,omitempty"`
}

// DailyGroup is one accordion row: a day's stats plus its projected orders.
type DailyGroup struct {
	Stats  insights.DailyStat     `json:"stats"`
	Orders []insights.OrderDetail `json:"orders"`
}

// Report is the full dashboard payload for one query window.
type Report struct {
	Window     WindowInfo           `json:"window"`
	Previous   WindowInfo           `json:"previousWindow"`
	Metrics    insights.Metrics     `json:"metrics"`
	PrevValues insights.Metrics     `json:"previousMetrics"`
	Comparison Comparison           `json:"comparison"`
	Chart      insights.ChartSeries `json:"chart"`
	Bars       insights.BarSet      `json:"bars"`
	Days       []DailyGroup         `json:"days"`
}

// KPIDelta pairs a KPI's current and previous values with the percent
// change between them.
type KPIDelta struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"`
}

// Comparison carries the period-over-period deltas for every KPI card.
type Comparison struct {
	ContributionMargin KPIDelta `json:"contributionMargin"`
	GrossProfit        KPIDelta `json:"grossProfit"`
	MER                KPIDelta `json:"mer"`
	AOV                KPIDelta `json:"aov"`
	CAC                KPIDelta `json:"cac"`
	Ads                KPIDelta `json:"ads"`
	Revenue            KPIDelta `json:"revenue"`
}

// Compare derives the KPI deltas between two periods. Margin cards carry
// absolute dollar values but their percent change is computed on the margin
// ratios, matching how the cards have always read.
func Compare(current, previous insights.Metrics) Comparison {
	return Comparison{
		ContributionMargin: KPIDelta{
			Current:  current.ContributionMargin,
			Previous: previous.ContributionMargin,
			Change:   insights.Change(current.ContributionMarginRatio, previous.ContributionMarginRatio),
		},
		GrossProfit: KPIDelta{
			Current:  current.GrossProfit,
			Previous: previous.GrossProfit,
			Change:   insights.Change(current.GrossProfitRatio, previous.GrossProfitRatio),
		},
		MER:     delta(current.MER, previous.MER),
		AOV:     delta(current.AOV, previous.AOV),
		CAC:     delta(current.CAC, previous.CAC),
		Ads:     delta(current.Ads, previous.Ads),
		Revenue: delta(current.TotalRevenue, previous.TotalRevenue),
	}
}

func delta(current, previous float64) KPIDelta {
	return KPIDelta{
		Current:  current,
		Previous: previous,
		Change:   insights.Change(current, previous),
	}
}
