package folio

import "sort"

// DividendPayment is one dividend cash movement. A withdrawal carries a
// negative amount.
type DividendPayment struct {
	Date   Date
	Symbol string
	Amount Money
}

// DividendReport sums the dividend income of a ledger. Total nets
// withdrawals against payments, Count counts payments only, and History
// lists every movement, most recent first.
type DividendReport struct {
	ReportingCurrency string
	Total             Money
	Count             int
	History           []DividendPayment
}

// NewDividendReport computes the dividend income of a ledger.
func NewDividendReport(ledger *Ledger, currency string) *DividendReport {
	report := &DividendReport{
		ReportingCurrency: currency,
		Total:             M(0, currency),
	}
	for _, tx := range ledger.Transactions(ByCommand(CmdDividend, CmdDividendWithdrawal)) {
		switch v := tx.(type) {
		case Dividend:
			report.Total = report.Total.Add(v.Amount)
			report.Count++
			report.History = append(report.History, DividendPayment{Date: v.When(), Symbol: v.Symbol, Amount: v.Amount})
		case DividendWithdrawal:
			report.Total = report.Total.Sub(v.Amount)
			report.History = append(report.History, DividendPayment{Date: v.When(), Symbol: v.Symbol, Amount: v.Amount.Neg()})
		}
	}
	// The ledger is chronological, so the stable sort keeps same-day
	// payments in ledger order.
	sort.SliceStable(report.History, func(i, j int) bool {
		return report.History[i].Date.After(report.History[j].Date)
	})
	return report
}
