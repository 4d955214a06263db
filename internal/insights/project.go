package insights

import "github.com/shopspring/decimal"

// ProjectorOptions selects the fee model for per-order drill-down rows.
// OrderFeeHaircut applies the variable-fee retention at order granularity,
// matching the aggregate margin formula; with it off, per-order gross profit
// is plain revenue minus spend.
type ProjectorOptions struct {
	Rates           Rates
	OrderFeeHaircut bool
}

// OrderDetail is an order with its derived drill-down figures.
type OrderDetail struct {
	Order
	USDRevenue       float64 `json:"usdRevenue"`
	Spend            float64 `json:"spend"`
	GrossProfit      float64 `json:"grossProfit"`
	GrossProfitRatio float64 `json:"grossProfitRatio"`
}

// ProjectOrder computes the derived per-order fields. Monetary inputs are
// string-encoded decimals; anything unparsable counts as zero rather than
// failing the row.
func ProjectOrder(order Order, opts ProjectorOptions) OrderDetail {
	usd := orderRevenueUSD(order, opts.Rates)

	spend := decimal.NewFromFloat(order.Base)
	if spend.IsZero() {
		spend = parseAmount(order.Cost).Add(parseAmount(order.Shipped))
	}

	gross := usd
	if opts.OrderFeeHaircut {
		gross = gross.Mul(decimal.NewFromFloat(opts.Rates.FeeRetention))
	}
	gross = gross.Sub(spend)

	detail := OrderDetail{
		Order:       order,
		USDRevenue:  usd.InexactFloat64(),
		Spend:       spend.InexactFloat64(),
		GrossProfit: gross.InexactFloat64(),
	}
	if usd.IsPositive() {
		detail.GrossProfitRatio = gross.Div(usd).InexactFloat64()
	}
	return detail
}

// ProjectOrders maps ProjectOrder over a slice, preserving order.
func ProjectOrders(orders []Order, opts ProjectorOptions) []OrderDetail {
	out := make([]OrderDetail, len(orders))
	for i, order := range orders {
		out[i] = ProjectOrder(order, opts)
	}
	return out
}

func orderRevenueUSD(order Order, rates Rates) decimal.Decimal {
	if order.RevenueUSD != "" {
		if usd, err := decimal.NewFromString(order.RevenueUSD); err == nil {
			return usd
		}
	}
	return parseAmount(order.Revenue).Mul(decimal.NewFromFloat(rates.USDRate))
}

func parseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
