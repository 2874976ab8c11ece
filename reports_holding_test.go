package folio

import (
	"testing"
	"time"
)

// dealLedger builds the ledger shared by the holding report tests:
// 6 WDS held at an average cost of 100, 5 BHP held at 40.
func dealLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger := NewLedger()
	ledger.Append(
		NewDeposit(NewDate(2024, time.January, 2), "", AUD(5000)),
		NewBuy(NewDate(2024, time.January, 10), "", "WDS", Q(10), AUD(100)),
		NewBuy(NewDate(2024, time.January, 12), "", "BHP", Q(5), AUD(40)),
		NewSell(NewDate(2024, time.March, 5), "", "WDS", Q(4), AUD(120)),
		NewDividend(NewDate(2024, time.March, 28), "", "WDS", AUD(50)),
	)
	return ledger
}

func TestNewHoldingReport(t *testing.T) {
	on := NewDate(2024, time.April, 15)
	report := NewHoldingReport(dealLedger(t), on, "AUD")

	if report.Priced {
		t.Errorf("Priced = true, want false")
	}
	if len(report.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", report.Skipped)
	}

	want := []Holding{
		{Symbol: "WDS", Quantity: Q(6), AvgCost: AUD(100), Invested: AUD(600), Price: AUD(100), Value: AUD(600), GainLoss: AUD(0), Allocation: Percent(75)},
		{Symbol: "BHP", Quantity: Q(5), AvgCost: AUD(40), Invested: AUD(200), Price: AUD(40), Value: AUD(200), GainLoss: AUD(0), Allocation: Percent(25)},
	}
	assertHoldings(t, report.Holdings, want)

	if !report.TotalInvested.Equal(AUD(800)) {
		t.Errorf("TotalInvested = %s, want %s", report.TotalInvested, AUD(800))
	}
	if !report.TotalValue.Equal(AUD(800)) {
		t.Errorf("TotalValue = %s, want %s", report.TotalValue, AUD(800))
	}
}

func TestNewPricedHoldingReport(t *testing.T) {
	on := NewDate(2024, time.April, 15)
	src := &StaticSource{Prices: map[string]float64{"WDS": 150, "BHP": 50}}
	report := NewPricedHoldingReport(dealLedger(t), on, "AUD", src)

	if !report.Priced {
		t.Errorf("Priced = false, want true")
	}

	want := []Holding{
		{Symbol: "WDS", Quantity: Q(6), AvgCost: AUD(100), Invested: AUD(600), Price: AUD(150), Value: AUD(900), GainLoss: AUD(300), GainLossPct: Percent(50), Allocation: Percent(900.0 / 1150.0 * 100)},
		{Symbol: "BHP", Quantity: Q(5), AvgCost: AUD(40), Invested: AUD(200), Price: AUD(50), Value: AUD(250), GainLoss: AUD(50), GainLossPct: Percent(25), Allocation: Percent(250.0 / 1150.0 * 100)},
	}
	assertHoldings(t, report.Holdings, want)

	if !report.TotalInvested.Equal(AUD(800)) {
		t.Errorf("TotalInvested = %s, want %s", report.TotalInvested, AUD(800))
	}
	if !report.TotalValue.Equal(AUD(1150)) {
		t.Errorf("TotalValue = %s, want %s", report.TotalValue, AUD(1150))
	}
}

func TestNewPricedHoldingReport_skipsUnpricedSymbols(t *testing.T) {
	on := NewDate(2024, time.April, 15)
	src := &StaticSource{Prices: map[string]float64{"WDS": 150}}
	report := NewPricedHoldingReport(dealLedger(t), on, "AUD", src)

	if len(report.Holdings) != 1 || report.Holdings[0].Symbol != "WDS" {
		t.Fatalf("Holdings = %v, want the single WDS position", report.Holdings)
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("Skipped = %v, want one entry", report.Skipped)
	}
	if s := report.Skipped[0]; s.Symbol != "BHP" || s.Reason != "no price data" {
		t.Errorf("Skipped[0] = %v, want BHP with reason %q", s, "no price data")
	}
	// The skipped symbol does not weigh in the totals.
	if !report.TotalInvested.Equal(AUD(600)) {
		t.Errorf("TotalInvested = %s, want %s", report.TotalInvested, AUD(600))
	}
	if !report.TotalValue.Equal(AUD(900)) {
		t.Errorf("TotalValue = %s, want %s", report.TotalValue, AUD(900))
	}
	if a := report.Holdings[0].Allocation; !a.Equal(Percent(100)) {
		t.Errorf("Allocation = %s, want 100%%", a)
	}
}

func TestNewHoldingReport_sortsByValue(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(NewDate(2024, time.January, 10), "", "AAA", Q(1), AUD(10)),
		NewBuy(NewDate(2024, time.January, 10), "", "BBB", Q(1), AUD(30)),
		NewBuy(NewDate(2024, time.January, 10), "", "CCC", Q(1), AUD(10)),
	)

	report := NewHoldingReport(ledger, NewDate(2024, time.February, 1), "AUD")
	got := make([]string, len(report.Holdings))
	for i, h := range report.Holdings {
		got[i] = h.Symbol
	}
	// Largest value first, ties alphabetical.
	want := []string{"BBB", "AAA", "CCC"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Holdings order = %v, want %v", got, want)
		}
	}
}

func assertHoldings(t *testing.T, got, want []Holding) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(Holdings) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Symbol != w.Symbol {
			t.Errorf("Holdings[%d].Symbol = %s, want %s", i, g.Symbol, w.Symbol)
		}
		if !g.Quantity.Equal(w.Quantity) {
			t.Errorf("Holdings[%d].Quantity = %s, want %s", i, g.Quantity, w.Quantity)
		}
		if !g.AvgCost.Equal(w.AvgCost) {
			t.Errorf("Holdings[%d].AvgCost = %s, want %s", i, g.AvgCost, w.AvgCost)
		}
		if !g.Invested.Equal(w.Invested) {
			t.Errorf("Holdings[%d].Invested = %s, want %s", i, g.Invested, w.Invested)
		}
		if !g.Price.Equal(w.Price) {
			t.Errorf("Holdings[%d].Price = %s, want %s", i, g.Price, w.Price)
		}
		if !g.Value.Equal(w.Value) {
			t.Errorf("Holdings[%d].Value = %s, want %s", i, g.Value, w.Value)
		}
		if !g.GainLoss.Equal(w.GainLoss) {
			t.Errorf("Holdings[%d].GainLoss = %s, want %s", i, g.GainLoss, w.GainLoss)
		}
		if !g.GainLossPct.Equal(w.GainLossPct) {
			t.Errorf("Holdings[%d].GainLossPct = %s, want %s", i, g.GainLossPct, w.GainLossPct)
		}
		if !g.Allocation.Equal(w.Allocation) {
			t.Errorf("Holdings[%d].Allocation = %s, want %s", i, g.Allocation, w.Allocation)
		}
	}
}
