package folio

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Validate checks every transaction for correctness and applies the quick
// fixes validation makes, such as defaulting a missing date to today. Every
// invalid transaction is reported, numbered by its position in the ledger.
func (l *Ledger) Validate() error {
	var errs []error
	for i, tx := range l.transactions {
		fixed, err := tx.Validate()
		if err != nil {
			errs = append(errs, fmt.Errorf("transaction %d: %w", i+1, err))
			continue
		}
		l.transactions[i] = fixed
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	// a defaulted date can land anywhere.
	l.stableSort()
	return nil
}

// Transactions returns an iterator that yields each transaction in
// chronological order. With no filter every transaction is yielded; with
// filters a transaction is yielded if any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// Symbols returns an iterator over the unique symbols that form positions:
// symbols of Buy and Sell transactions, sentinels excluded, in sorted order.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			var symbol string
			switch v := tx.(type) {
			case Buy:
				symbol = v.Symbol
			case Sell:
				symbol = v.Symbol
			default:
				continue
			}
			if IsSentinel(symbol) {
				continue
			}
			visited[symbol] = struct{}{}
		}
		symbols := make([]string, 0, len(visited))
		for s := range visited {
			symbols = append(symbols, s)
		}
		sort.Strings(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// BySymbol returns a predicate that filters transactions by symbol.
func BySymbol(symbol string) func(Transaction) bool {
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Buy:
			return v.Symbol == symbol
		case Sell:
			return v.Symbol == symbol
		case Dividend:
			return v.Symbol == symbol
		case DividendWithdrawal:
			return v.Symbol == symbol
		}
		return false
	}
}

// ByCommand returns a predicate that filters transactions by command type.
func ByCommand(types ...CommandType) func(Transaction) bool {
	return func(tx Transaction) bool {
		for _, t := range types {
			if tx.What() == t {
				return true
			}
		}
		return false
	}
}
