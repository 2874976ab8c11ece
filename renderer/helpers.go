package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// skippedSection appends the skipped symbols of a priced report, if any.
func skippedSection(doc *md.Markdown, skipped []folio.SkippedSymbol) {
	if len(skipped) == 0 {
		return
	}
	doc.H2("Skipped Symbols")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Symbol", "Reason"},
	}
	for _, s := range skipped {
		table.Rows = append(table.Rows, []string{s.Symbol, s.Reason})
	}
	doc.Table(table)
}
