package folio

import "sort"

// SectorAllocation is the weight of one sector in the portfolio.
type SectorAllocation struct {
	Sector     string
	Symbols    []string // sorted
	Value      Money
	Allocation Percent
}

// SectorReport groups the priced holdings of a ledger by sector, largest
// value first.
type SectorReport struct {
	Date              Date
	ReportingCurrency string
	TotalValue        Money
	Sectors           []SectorAllocation
	Skipped           []SkippedSymbol
}

// NewSectorReport computes the sector allocation of a ledger, valued with
// current prices from src and grouped by its Sector classification. Symbols
// without a price are reported in Skipped and excluded.
func NewSectorReport(ledger *Ledger, on Date, currency string, src PriceSource) *SectorReport {
	holdings := NewPricedHoldingReport(ledger, on, currency, src)
	report := &SectorReport{
		Date:              on,
		ReportingCurrency: currency,
		TotalValue:        holdings.TotalValue,
		Skipped:           holdings.Skipped,
	}

	bySector := make(map[string]*SectorAllocation)
	for _, h := range holdings.Holdings {
		name := src.Sector(h.Symbol)
		sector, ok := bySector[name]
		if !ok {
			sector = &SectorAllocation{Sector: name, Value: M(0, currency)}
			bySector[name] = sector
		}
		sector.Symbols = append(sector.Symbols, h.Symbol)
		sector.Value = sector.Value.Add(h.Value)
	}

	for _, sector := range bySector {
		sector.Allocation = sector.Value.PercentOf(report.TotalValue)
		sort.Strings(sector.Symbols)
		report.Sectors = append(report.Sectors, *sector)
	}
	sort.Slice(report.Sectors, func(i, j int) bool {
		if !report.Sectors[i].Value.Equal(report.Sectors[j].Value) {
			return report.Sectors[j].Value.LessThan(report.Sectors[i].Value)
		}
		return report.Sectors[i].Sector < report.Sectors[j].Sector
	})
	return report
}
