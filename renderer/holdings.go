package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

func HoldingsMarkdown(r *folio.HoldingReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holdings on %s", r.Date))

	if r.Priced {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Symbol", "Quantity", "Avg Cost", "Invested", "Price", "Value", "Gain / Loss", "Return", "Allocation"},
		}
		for _, h := range r.Holdings {
			table.Rows = append(table.Rows, []string{
				h.Symbol,
				h.Quantity.String(),
				h.AvgCost.String(),
				h.Invested.String(),
				h.Price.String(),
				h.Value.String(),
				h.GainLoss.SignedString(),
				h.GainLossPct.SignedString(),
				h.Allocation.String(),
			})
		}
		doc.Table(table)
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Symbol", "Quantity", "Avg Cost", "Invested", "Allocation"},
		}
		for _, h := range r.Holdings {
			table.Rows = append(table.Rows, []string{
				h.Symbol,
				h.Quantity.String(),
				h.AvgCost.String(),
				h.Invested.String(),
				h.Allocation.String(),
			})
		}
		doc.Table(table)
	}

	totals := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Invested"),
			md.Bold(r.TotalInvested.String()),
		},
	}
	if r.Priced {
		totals.Rows = append(totals.Rows,
			[]string{"Total Value", r.TotalValue.String()},
			[]string{"Unrealized Gain / Loss", r.TotalValue.Sub(r.TotalInvested).SignedString()},
		)
	}
	doc.Table(totals)

	skippedSection(doc, r.Skipped)

	return doc.String()
}
