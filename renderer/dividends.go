package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/folio"
)

func DividendsMarkdown(r *folio.DividendReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Dividends\n\n")
	fmt.Fprintf(&b, "Received %s over %d payments.\n", r.Total, r.Count)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## History\n\n")
		fmt.Fprintln(w, "| Date | Symbol | Amount |")
		fmt.Fprintln(w, "|:---|:---|---:|")
		for _, p := range r.History {
			fmt.Fprintf(w, "| %s | %s | %s |\n", p.Date, p.Symbol, p.Amount.SignedString())
		}
		return len(r.History) > 0
	})

	return b.String()
}
