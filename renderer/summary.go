package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *folio.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date))

	valueLabel := "Value at Cost"
	if s.Priced {
		valueLabel = "Current Value"
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold(valueLabel),
			md.Bold(s.CurrentValue.String()),
		},
		Rows: [][]string{
			{"Total Invested", s.TotalInvested.String()},
			{"Open Positions", fmt.Sprintf("%d", s.Positions)},
		},
	})

	doc.H2("Gains")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Gain / Loss"),
			md.Bold(s.Total.SignedString()),
		},
		Rows: [][]string{
			{"Realized", s.Realized.SignedString()},
			{"Unrealized", s.Unrealized.SignedString()},
		},
	})

	skippedSection(doc, s.Skipped)

	return doc.String()
}
