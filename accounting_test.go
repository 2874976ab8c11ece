package folio

import (
	"testing"
	"time"
)

func TestBook_realizedFIFO(t *testing.T) {
	o := NewDate(2024, time.January, 10)

	tests := []struct {
		name         string
		txs          []Transaction
		wantRealized Money
	}{
		{
			name: "full lot",
			txs: []Transaction{
				NewBuy(o, "", "WDS", Q(10), AUD(100)),
				NewSell(o.Add(5), "", "WDS", Q(10), AUD(150)),
			},
			wantRealized: AUD(500),
		},
		{
			name: "partial second lot",
			txs: []Transaction{
				NewBuy(o, "", "WDS", Q(10), AUD(100)),
				NewBuy(o.Add(1), "", "WDS", Q(5), AUD(200)),
				NewSell(o.Add(5), "", "WDS", Q(12), AUD(150)),
			},
			// 10 shares from the first lot gain 500, 2 from the second lose 100.
			wantRealized: AUD(400),
		},
		{
			name: "oversell stops at the empty queue",
			txs: []Transaction{
				NewBuy(o, "", "WDS", Q(10), AUD(100)),
				NewSell(o.Add(5), "", "WDS", Q(15), AUD(150)),
			},
			wantRealized: AUD(500),
		},
		{
			name: "gains accumulate across symbols",
			txs: []Transaction{
				NewBuy(o, "", "WDS", Q(10), AUD(100)),
				NewBuy(o, "", "BHP", Q(10), AUD(50)),
				NewSell(o.Add(5), "", "WDS", Q(10), AUD(150)),
				NewSell(o.Add(5), "", "BHP", Q(10), AUD(40)),
			},
			wantRealized: AUD(400),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewLedger()
			ledger.Append(tt.txs...)

			b := newBook(ledger, "AUD", ledger.NewestTransactionDate())
			if got := b.totalRealized(); !got.Equal(tt.wantRealized) {
				t.Errorf("totalRealized() = %s, want %s", got, tt.wantRealized)
			}
		})
	}
}

func TestBook_averageCost(t *testing.T) {
	o := NewDate(2024, time.January, 10)
	ledger := NewLedger()
	ledger.Append(
		NewBuy(o, "", "WDS", Q(10), AUD(100)),
		NewSell(o.Add(5), "", "WDS", Q(4), AUD(120)),
	)

	b := newBook(ledger, "AUD", ledger.NewestTransactionDate())
	held := b.held()
	if len(held) != 1 {
		t.Fatalf("held() returned %d positions, want 1", len(held))
	}
	p := held[0]
	if !p.Shares.Equal(Q(6)) {
		t.Errorf("Shares = %s, want 6", p.Shares)
	}
	if !p.AvgCost().Equal(AUD(100)) {
		t.Errorf("AvgCost() = %s, want %s", p.AvgCost(), AUD(100))
	}
	if !p.Cost.Equal(AUD(600)) {
		t.Errorf("Cost = %s, want %s", p.Cost, AUD(600))
	}
}

func TestBook_averageCostRaisedBySecondBuy(t *testing.T) {
	o := NewDate(2024, time.January, 10)
	ledger := NewLedger()
	ledger.Append(
		NewBuy(o, "", "WDS", Q(10), AUD(100)),
		NewBuy(o.Add(1), "", "WDS", Q(10), AUD(200)),
	)

	b := newBook(ledger, "AUD", ledger.NewestTransactionDate())
	p := b.held()[0]
	if !p.AvgCost().Equal(AUD(150)) {
		t.Errorf("AvgCost() = %s, want %s", p.AvgCost(), AUD(150))
	}
	if !p.Cost.Equal(AUD(3000)) {
		t.Errorf("Cost = %s, want %s", p.Cost, AUD(3000))
	}
}

func TestBook_asOfDateCutsOffLaterTransactions(t *testing.T) {
	o := NewDate(2024, time.January, 10)
	ledger := NewLedger()
	ledger.Append(
		NewBuy(o, "", "WDS", Q(10), AUD(100)),
		NewSell(o.Add(5), "", "WDS", Q(4), AUD(120)),
	)

	b := newBook(ledger, "AUD", o)
	held := b.held()
	if len(held) != 1 {
		t.Fatalf("held() returned %d positions, want 1", len(held))
	}
	if !held[0].Shares.Equal(Q(10)) {
		t.Errorf("Shares as of the buy date = %s, want 10", held[0].Shares)
	}
	if !b.totalRealized().IsZero() {
		t.Errorf("totalRealized() as of the buy date = %s, want zero", b.totalRealized())
	}
}

func TestBook_closedPositionIsNotHeld(t *testing.T) {
	o := NewDate(2024, time.January, 10)

	tests := []struct {
		name string
		sell Quantity
	}{
		{name: "closed exactly", sell: Q(10)},
		{name: "oversold", sell: Q(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewLedger()
			ledger.Append(
				NewBuy(o, "", "WDS", Q(10), AUD(100)),
				NewSell(o.Add(5), "", "WDS", tt.sell, AUD(150)),
			)

			b := newBook(ledger, "AUD", ledger.NewestTransactionDate())
			if held := b.held(); len(held) != 0 {
				t.Errorf("held() returned %d positions, want none", len(held))
			}
		})
	}
}

func TestBook_ignoresSentinelsAndCash(t *testing.T) {
	o := NewDate(2024, time.January, 10)
	ledger := NewLedger()
	ledger.Append(
		NewDeposit(o, "", AUD(5000)),
		NewBuy(o.Add(1), "", SymbolCommission, Q(1), AUD(9.5)),
		NewBuy(o.Add(1), "", "WDS", Q(10), AUD(100)),
		NewCommission(o.Add(1), "", AUD(9.5)),
		NewWithdraw(o.Add(2), "", AUD(100)),
	)

	b := newBook(ledger, "AUD", ledger.NewestTransactionDate())
	held := b.held()
	if len(held) != 1 || held[0].Symbol != "WDS" {
		t.Fatalf("held() = %v, want the single WDS position", held)
	}
}
