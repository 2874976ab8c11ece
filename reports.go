package folio

import "slices"

// Reports are plain value snapshots computed on demand from a ledger. Each
// builder replays the ledger it is given and never mutates it, so reports can
// be produced repeatedly and in any order. Builders that accept a PriceSource
// never fail: a symbol the source cannot price is set aside in the report's
// skip list instead of aborting the computation.

// SkippedSymbol records a symbol left out of a priced report and why.
type SkippedSymbol struct {
	Symbol string
	Reason string
}

// DataSummary describes the content of a ledger: how many transactions it
// holds, of which kind, over which date range and symbols.
type DataSummary struct {
	Transactions int
	Symbols      []string       // sorted, sentinels excluded
	Range        Range          // zero when the ledger is empty
	Actions      map[string]int // transaction count per normalized action name
}

// NewDataSummary computes the data summary of a ledger.
func NewDataSummary(ledger *Ledger) *DataSummary {
	s := &DataSummary{
		Transactions: ledger.Len(),
		Symbols:      slices.Collect(ledger.Symbols()),
		Actions:      make(map[string]int),
	}
	if ledger.Len() > 0 {
		s.Range = NewRange(ledger.OldestTransactionDate(), ledger.NewestTransactionDate())
	}
	for _, tx := range ledger.Transactions() {
		s.Actions[ActionName(tx.What())]++
	}
	return s
}
