package folio

import "sort"

// position is the per-symbol bookkeeping state while replaying the ledger.
type position struct {
	Symbol   string
	Shares   Quantity
	Cost     Money // remaining cost basis at average cost
	Realized Money // realized gain, first-in-first-out
	openLots lots
}

// AvgCost returns the average cost of one held share.
func (p *position) AvgCost() Money {
	if !p.Shares.IsPositive() {
		return M(0, p.Cost.Currency())
	}
	return p.Cost.Div(p.Shares)
}

// book replays Buy and Sell transactions in chronological order and
// accumulates every symbol's position. Sentinel symbols never enter the book.
type book struct {
	currency  string
	positions map[string]*position
}

// newBook builds the position book of a ledger as of the until date,
// inclusive. Amounts are accumulated in currency.
func newBook(ledger *Ledger, currency string, until Date) *book {
	b := &book{currency: currency, positions: make(map[string]*position)}
	for _, tx := range ledger.Transactions(ByCommand(CmdBuy, CmdSell)) {
		if tx.When().After(until) {
			// the ledger is chronological, nothing later can matter.
			break
		}
		switch v := tx.(type) {
		case Buy:
			if IsSentinel(v.Symbol) {
				continue
			}
			b.buy(v.When(), v.Symbol, v.Quantity, v.Price)
		case Sell:
			if IsSentinel(v.Symbol) {
				continue
			}
			b.sell(v.Symbol, v.Quantity, v.Price)
		}
	}
	return b
}

func (b *book) at(symbol string) *position {
	p, ok := b.positions[symbol]
	if !ok {
		p = &position{Symbol: symbol, Cost: M(0, b.currency), Realized: M(0, b.currency)}
		b.positions[symbol] = p
	}
	return p
}

// buy adds shares to the symbol's position: the share count grows by qty and
// the cost basis by qty times price. The purchase is also recorded as a lot
// for realized gain computations.
func (b *book) buy(day Date, symbol string, qty Quantity, price Money) {
	p := b.at(symbol)
	p.Shares = p.Shares.Add(qty)
	p.Cost = p.Cost.Add(price.Mul(qty))
	p.openLots = append(p.openLots, lot{Date: day, Quantity: qty, Price: price})
}

// sell removes shares from the symbol's position. The cost basis shrinks by
// qty times the average cost before the sale, while the position stays open.
// A sale that closes or overdraws the position leaves the cost basis alone;
// the position is simply no longer held. The realized gain is computed
// against the oldest lots.
func (b *book) sell(symbol string, qty Quantity, price Money) {
	p := b.at(symbol)
	before := p.Shares
	p.Shares = p.Shares.Sub(qty)
	if p.Shares.IsPositive() && before.IsPositive() {
		avg := p.Cost.Div(before)
		p.Cost = p.Cost.Sub(avg.Mul(qty))
	}

	gain, remaining := p.openLots.sell(qty, price)
	p.Realized = p.Realized.Add(gain)
	p.openLots = remaining
}

// symbols returns every symbol seen by the book, sorted.
func (b *book) symbols() []string {
	symbols := make([]string, 0, len(b.positions))
	for s := range b.positions {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// held returns the positions with a positive share count, sorted by symbol.
func (b *book) held() []*position {
	var held []*position
	for _, s := range b.symbols() {
		if p := b.positions[s]; p.Shares.IsPositive() {
			held = append(held, p)
		}
	}
	return held
}

// totalRealized sums the realized gains over every symbol, open or closed.
func (b *book) totalRealized() Money {
	total := M(0, b.currency)
	for _, s := range b.symbols() {
		total = total.Add(b.positions[s].Realized)
	}
	return total
}
