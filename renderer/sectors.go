package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

func SectorsMarkdown(r *folio.SectorReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sector Allocation on %s", r.Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Sector", "Symbols", "Value", "Allocation"},
	}
	for _, s := range r.Sectors {
		table.Rows = append(table.Rows, []string{
			s.Sector,
			strings.Join(s.Symbols, ", "),
			s.Value.String(),
			s.Allocation.String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total value: %s", r.TotalValue))

	skippedSection(doc, r.Skipped)

	return doc.String()
}
