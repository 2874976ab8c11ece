package renderer

import (
	"bytes"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(r *folio.PerformanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Priced {
		doc.H1("Portfolio Value by Month")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Date", "Invested", "Value", "Gain / Loss"},
			Rows:   [][]string{},
		}
		for _, p := range r.Points {
			table.Rows = append(table.Rows, []string{
				p.Date.String(),
				p.Invested.String(),
				p.Value.String(),
				p.GainLoss.SignedString(),
			})
		}
		doc.Table(table)
	} else {
		doc.H1("Invested Capital over Time")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Invested"},
			Rows:   [][]string{},
		}
		for _, p := range r.Points {
			table.Rows = append(table.Rows, []string{
				p.Date.String(),
				p.Invested.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
