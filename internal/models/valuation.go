package models

// AggregateMode selects which metric Aggregate computes.
type AggregateMode string

const (
	ModeValue       AggregateMode = "value"
	ModeCapitalGain AggregateMode = "capital_gain"
)

// PriceQuote is the result of one successful price lookup.
type PriceQuote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// HoldingValuation is one holding enriched with its live price.
type HoldingValuation struct {
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"price"`
	Value       float64 `json:"value"`
	CapitalGain float64 `json:"capital_gain,omitempty"`
}

// AggregationResult is the reduced outcome of one aggregation request.
// Computed fresh per request, never stored.
type AggregationResult struct {
	Mode             AggregateMode
	Holdings         []HoldingValuation
	TotalValue       float64
	TotalCapitalGain float64
}

// PortfolioValue is the wire shape of GET /portfolio-value.
type PortfolioValue struct {
	Date           string  `json:"date"`
	PortfolioValue float64 `json:"portfolio_value"`
}

// CapitalGains is the wire shape of GET /capital-gains.
type CapitalGains struct {
	TotalCapitalGain float64 `json:"total_capital_gain"`
}

// StockValue is the wire shape of GET /stock-value/{id}.
type StockValue struct {
	Symbol     string  `json:"symbol"`
	Ticker     float64 `json:"ticker"`
	StockValue float64 `json:"stock_value"`
}
