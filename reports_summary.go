package folio

// Summary is the at-a-glance overview of a portfolio: what it cost, what it
// is worth, and the gains realized and still open. Without a price source the
// portfolio is carried at cost, so Unrealized is zero and Total equals the
// realized gain alone.
type Summary struct {
	Date              Date
	ReportingCurrency string
	Priced            bool
	TotalInvested     Money // cost basis of the open positions
	CurrentValue      Money // market value of the open positions
	Realized          Money // first-in-first-out gain on every sale so far
	Unrealized        Money // gain still open on the held positions
	Total             Money // Realized plus Unrealized
	Positions         int
	Skipped           []SkippedSymbol
}

// NewSummary computes the portfolio summary of a ledger at cost.
func NewSummary(ledger *Ledger, on Date, currency string) *Summary {
	return newSummary(ledger, on, currency, nil)
}

// NewPricedSummary computes the portfolio summary of a ledger valued with
// current prices from src. Symbols the source cannot price are reported in
// Skipped and excluded from the totals.
func NewPricedSummary(ledger *Ledger, on Date, currency string, src PriceSource) *Summary {
	return newSummary(ledger, on, currency, src)
}

func newSummary(ledger *Ledger, on Date, currency string, src PriceSource) *Summary {
	b := newBook(ledger, currency, on)
	holdings := newHoldingReport(b, on, currency, src)

	unrealized := M(0, currency)
	for _, h := range holdings.Holdings {
		unrealized = unrealized.Add(h.GainLoss)
	}
	realized := b.totalRealized()

	return &Summary{
		Date:              on,
		ReportingCurrency: currency,
		Priced:            holdings.Priced,
		TotalInvested:     holdings.TotalInvested,
		CurrentValue:      holdings.TotalValue,
		Realized:          realized,
		Unrealized:        unrealized,
		Total:             realized.Add(unrealized),
		Positions:         len(holdings.Holdings),
		Skipped:           holdings.Skipped,
	}
}
