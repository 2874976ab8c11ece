package folio

import "sort"

// Holding is one open position in a holding report. Without a price source
// the position is carried at cost: Price is the average cost, Value equals
// Invested and GainLoss is zero by construction.
type Holding struct {
	Symbol      string
	Quantity    Quantity
	AvgCost     Money
	Invested    Money // remaining cost basis
	Price       Money // current price, or average cost when unpriced
	Value       Money
	GainLoss    Money // unrealized
	GainLossPct Percent
	Allocation  Percent // share of the report's total value
}

// HoldingReport lists the open positions of a ledger on a given date, largest
// value first.
type HoldingReport struct {
	Date              Date
	ReportingCurrency string
	Priced            bool
	Holdings          []Holding
	TotalInvested     Money
	TotalValue        Money
	Skipped           []SkippedSymbol
}

// NewHoldingReport computes the open positions of a ledger at cost.
func NewHoldingReport(ledger *Ledger, on Date, currency string) *HoldingReport {
	return newHoldingReport(newBook(ledger, currency, on), on, currency, nil)
}

// NewPricedHoldingReport computes the open positions of a ledger valued with
// current prices from src. Symbols the source cannot price are recorded in
// the report's Skipped list and left out of the holdings and totals.
func NewPricedHoldingReport(ledger *Ledger, on Date, currency string, src PriceSource) *HoldingReport {
	return newHoldingReport(newBook(ledger, currency, on), on, currency, src)
}

func newHoldingReport(b *book, on Date, currency string, src PriceSource) *HoldingReport {
	report := &HoldingReport{
		Date:              on,
		ReportingCurrency: currency,
		Priced:            src != nil,
		TotalInvested:     M(0, currency),
		TotalValue:        M(0, currency),
	}

	held := b.held()
	var prices map[string]float64
	if src != nil {
		symbols := make([]string, len(held))
		for i, p := range held {
			symbols[i] = p.Symbol
		}
		prices = src.CurrentPrices(symbols)
	}

	for _, p := range held {
		h := Holding{
			Symbol:   p.Symbol,
			Quantity: p.Shares,
			AvgCost:  p.AvgCost(),
			Invested: p.Cost,
		}
		if src == nil {
			h.Price = h.AvgCost
			h.Value = h.Invested
			h.GainLoss = M(0, currency)
		} else {
			quote := prices[p.Symbol]
			if quote <= 0 {
				report.Skipped = append(report.Skipped, SkippedSymbol{Symbol: p.Symbol, Reason: "no price data"})
				continue
			}
			h.Price = M(quote, currency)
			h.Value = h.Price.Mul(h.Quantity)
			h.GainLoss = h.Value.Sub(h.Invested)
		}
		h.GainLossPct = h.GainLoss.PercentOf(h.Invested)
		report.TotalInvested = report.TotalInvested.Add(h.Invested)
		report.TotalValue = report.TotalValue.Add(h.Value)
		report.Holdings = append(report.Holdings, h)
	}

	for i := range report.Holdings {
		report.Holdings[i].Allocation = report.Holdings[i].Value.PercentOf(report.TotalValue)
	}
	// held() is sorted by symbol, so equal values stay alphabetical.
	sort.SliceStable(report.Holdings, func(i, j int) bool {
		return report.Holdings[j].Value.LessThan(report.Holdings[i].Value)
	})
	return report
}
