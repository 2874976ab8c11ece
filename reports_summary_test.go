package folio

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	on := NewDate(2024, time.April, 15)
	report := NewSummary(dealLedger(t), on, "AUD")

	if report.Priced {
		t.Errorf("Priced = true, want false")
	}
	if !report.TotalInvested.Equal(AUD(800)) {
		t.Errorf("TotalInvested = %s, want %s", report.TotalInvested, AUD(800))
	}
	// At cost the portfolio is worth what it cost.
	if !report.CurrentValue.Equal(AUD(800)) {
		t.Errorf("CurrentValue = %s, want %s", report.CurrentValue, AUD(800))
	}
	// Sold 4 WDS at 120 against a first-in cost of 100.
	if !report.Realized.Equal(AUD(80)) {
		t.Errorf("Realized = %s, want %s", report.Realized, AUD(80))
	}
	if !report.Unrealized.Equal(AUD(0)) {
		t.Errorf("Unrealized = %s, want %s", report.Unrealized, AUD(0))
	}
	if !report.Total.Equal(AUD(80)) {
		t.Errorf("Total = %s, want %s", report.Total, AUD(80))
	}
	if report.Positions != 2 {
		t.Errorf("Positions = %d, want 2", report.Positions)
	}
}

func TestNewPricedSummary(t *testing.T) {
	on := NewDate(2024, time.April, 15)
	src := &StaticSource{Prices: map[string]float64{"WDS": 150, "BHP": 50}}
	report := NewPricedSummary(dealLedger(t), on, "AUD", src)

	if !report.Priced {
		t.Errorf("Priced = false, want true")
	}
	if !report.CurrentValue.Equal(AUD(1150)) {
		t.Errorf("CurrentValue = %s, want %s", report.CurrentValue, AUD(1150))
	}
	if !report.Realized.Equal(AUD(80)) {
		t.Errorf("Realized = %s, want %s", report.Realized, AUD(80))
	}
	// WDS is up 300 on its 600 basis, BHP up 50 on 200.
	if !report.Unrealized.Equal(AUD(350)) {
		t.Errorf("Unrealized = %s, want %s", report.Unrealized, AUD(350))
	}
	if !report.Total.Equal(AUD(430)) {
		t.Errorf("Total = %s, want %s", report.Total, AUD(430))
	}
}

func TestNewPricedSummary_skippedSymbolKeepsRealized(t *testing.T) {
	on := NewDate(2024, time.April, 15)
	src := &StaticSource{Prices: map[string]float64{"BHP": 50}}
	report := NewPricedSummary(dealLedger(t), on, "AUD", src)

	if len(report.Skipped) != 1 || report.Skipped[0].Symbol != "WDS" {
		t.Fatalf("Skipped = %v, want the WDS entry", report.Skipped)
	}
	if report.Positions != 1 {
		t.Errorf("Positions = %d, want 1", report.Positions)
	}
	// Realized gains come from the ledger, not from quotes: skipping the
	// symbol's valuation does not lose the gain already realized on it.
	if !report.Realized.Equal(AUD(80)) {
		t.Errorf("Realized = %s, want %s", report.Realized, AUD(80))
	}
	if !report.Unrealized.Equal(AUD(50)) {
		t.Errorf("Unrealized = %s, want %s", report.Unrealized, AUD(50))
	}
}

func TestNewSummary_emptyLedger(t *testing.T) {
	report := NewSummary(NewLedger(), NewDate(2024, time.April, 15), "AUD")
	if report.Positions != 0 {
		t.Errorf("Positions = %d, want 0", report.Positions)
	}
	if !report.Total.Equal(AUD(0)) {
		t.Errorf("Total = %s, want %s", report.Total, AUD(0))
	}
}
