package folio

import "slices"

// PerformancePoint is the state of the portfolio at one point of a
// performance series.
type PerformancePoint struct {
	Date     Date
	Invested Money
	Value    Money
	GainLoss Money
}

// PerformanceReport tracks invested capital over time. Without a price
// source it is the running net invested amount after each buy and sell; with
// one it holds month-end snapshots of invested cost against market value.
type PerformanceReport struct {
	ReportingCurrency string
	Priced            bool
	Points            []PerformancePoint
}

// NewPerformanceReport computes the running invested amount of a ledger: a
// point per deal, where each buy adds its cost and each sale removes its
// proceeds.
func NewPerformanceReport(ledger *Ledger, currency string) *PerformanceReport {
	report := &PerformanceReport{ReportingCurrency: currency}
	invested := M(0, currency)
	for _, tx := range ledger.Transactions(ByCommand(CmdBuy, CmdSell)) {
		switch v := tx.(type) {
		case Buy:
			if IsSentinel(v.Symbol) {
				continue
			}
			invested = invested.Add(v.Cost())
		case Sell:
			if IsSentinel(v.Symbol) {
				continue
			}
			invested = invested.Sub(v.Proceeds())
		default:
			continue
		}
		report.Points = append(report.Points, PerformancePoint{
			Date:     tx.When(),
			Invested: invested,
			Value:    invested,
			GainLoss: M(0, currency),
		})
	}
	return report
}

// NewPricedPerformanceReport computes month-end snapshots of the portfolio,
// from the month of the first deal up to on. Each point values the shares
// held at that date: invested at the average cost of every buy made so far,
// and worth at current prices, falling back to that cost for symbols the
// source cannot price.
func NewPricedPerformanceReport(ledger *Ledger, on Date, currency string, src PriceSource) *PerformanceReport {
	report := &PerformanceReport{ReportingCurrency: currency, Priced: true}

	var deals []Transaction
	for _, tx := range ledger.Transactions(ByCommand(CmdBuy, CmdSell)) {
		switch v := tx.(type) {
		case Buy:
			if IsSentinel(v.Symbol) {
				continue
			}
		case Sell:
			if IsSentinel(v.Symbol) {
				continue
			}
		}
		deals = append(deals, tx)
	}
	if len(deals) == 0 {
		return report
	}
	prices := src.CurrentPrices(slices.Collect(ledger.Symbols()))

	// Per-symbol running tally. The invested cost of a share is the ratio
	// of everything spent buying the symbol over every share bought, not
	// the lot-accounting basis: a time series wants a smooth cost, not a
	// sale-dependent one.
	type tally struct {
		shares     Quantity
		boughtQty  Quantity
		boughtCost Money
	}
	tallies := make(map[string]*tally)
	at := func(symbol string) *tally {
		t, ok := tallies[symbol]
		if !ok {
			t = &tally{boughtCost: M(0, currency)}
			tallies[symbol] = t
		}
		return t
	}

	i := 0
	for period := range NewRange(deals[0].When(), on).Periods(Monthly) {
		day := period.To
		if on.Before(day) {
			day = on
		}
		for i < len(deals) && !deals[i].When().After(day) {
			switch v := deals[i].(type) {
			case Buy:
				t := at(v.Symbol)
				t.shares = t.shares.Add(v.Quantity)
				t.boughtQty = t.boughtQty.Add(v.Quantity)
				t.boughtCost = t.boughtCost.Add(v.Cost())
			case Sell:
				t := at(v.Symbol)
				t.shares = t.shares.Sub(v.Quantity)
			}
			i++
		}

		invested := M(0, currency)
		value := M(0, currency)
		for symbol, t := range tallies {
			if !t.shares.IsPositive() {
				continue
			}
			costPerShare := t.boughtCost.Div(t.boughtQty)
			invested = invested.Add(costPerShare.Mul(t.shares))
			price := costPerShare
			if quote := prices[symbol]; quote > 0 {
				price = M(quote, currency)
			}
			value = value.Add(price.Mul(t.shares))
		}
		report.Points = append(report.Points, PerformancePoint{
			Date:     day,
			Invested: invested,
			Value:    value,
			GainLoss: value.Sub(invested),
		})
	}
	return report
}
