package insights

// App tags identifying the two known storefronts. Orders carrying any other
// tag fall back to UTC day bucketing.
const (
	AppParadis    = "Paradis"
	AppPersoliebe = "Persoliebe"
)

// Rates parameterizes the currency and fee model. Revenue arrives in EUR and
// is converted once; margin math then keeps FeeRetention of revenue after
// payment/variable fees.
type Rates struct {
	USDRate      float64
	FeeRetention float64
}

// DefaultRates are the production constants.
var DefaultRates = Rates{
	USDRate:      1.15,
	FeeRetention: 0.945,
}

// DailyStat is one calendar day of summary numbers keyed by a DD-MM-YYYY
// date string in the upstream result map. Revenue and NewRevenue are EUR
// until normalized; Spend and Ads are already USD.
type DailyStat struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	Spend      float64 `json:"spend"`
	Orders     int     `json:"orders"`
	Ads        float64 `json:"ads"`
	NewRevenue float64 `json:"newRevenue"`
	NewOrders  int     `json:"newOrder"`
	NewSpend   float64 `json:"newSpend"`
}

// OrderLineItem is projected unchanged for drill-down display.
type OrderLineItem struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"orderId"`
	ItemID        string  `json:"itemId"`
	SKU           string  `json:"sku"`
	Quantity      int     `json:"quantity"`
	Price         string  `json:"price"`
	Cost          float64 `json:"cost"`
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	GiftCard      bool    `json:"giftCard"`
	TotalDiscount string  `json:"totalDiscount"`
	VendorName    string  `json:"vendorName"`
}

// Order is a single transaction as returned by the orders API. Monetary
// fields are string-encoded decimals; Revenue is EUR, RevenueUSD an optional
// pre-converted override.
type Order struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"orderId"`
	CustomerID     string          `json:"customerId"`
	ShipCountry    string          `json:"shipCountry"`
	ShipDiscount   float64         `json:"shipDiscount"`
	Revenue        string          `json:"revenue"`
	RevenueUSD     string          `json:"revenueUSD,omitempty"`
	PaygateName    string          `json:"paygateName"`
	CreatedAt      string          `json:"createdAt"`
	Cost           string          `json:"cost,omitempty"`
	Shipped        string          `json:"shipped,omitempty"`
	Discount       string          `json:"discount,omitempty"`
	Tax            string          `json:"tax,omitempty"`
	SubTotal       string          `json:"subTotal,omitempty"`
	App            string          `json:"app,omitempty"`
	Base           float64         `json:"base"`
	OrderLineItems []OrderLineItem `json:"orderLineItems,omitempty"`
}

// NewCustomer marks a first-time buyer inside the queried window. Only the
// count participates in KPI math; the identifier is kept for display.
type NewCustomer struct {
	CustomerID string `json:"customerId"`
}

// StatsResponse is the upstream contribution-margin payload.
type StatsResponse struct {
	Result       map[string]DailyStat `json:"result"`
	Orders       []Order              `json:"orders"`
	NewCustomers []NewCustomer        `json:"newCustomer"`
}
