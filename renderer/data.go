package renderer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/folio"
)

// DataSummaryMarkdown renders what a ledger contains: the usual epilogue of
// an import.
func DataSummaryMarkdown(s *folio.DataSummary) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Data Summary\n\n")
	if s.Transactions == 0 {
		fmt.Fprintln(&b, "The ledger is empty.")
		return b.String()
	}

	fmt.Fprintf(&b, "%d transactions from %s to %s.\n\n", s.Transactions, s.Range.From, s.Range.To)
	if len(s.Symbols) > 0 {
		fmt.Fprintf(&b, "Symbols: %s\n\n", strings.Join(s.Symbols, ", "))
	}

	fmt.Fprintln(&b, "| Action | Count |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, action := range slices.Sorted(maps.Keys(s.Actions)) {
		fmt.Fprintf(&b, "| %s | %d |\n", action, s.Actions[action])
	}

	return b.String()
}
