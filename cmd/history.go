package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	date    string
	priced  bool
	refresh bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display how the portfolio evolved over time" }
func (*historyCmd) Usage() string {
	return `fcs history [-d <date>] [-priced]

  Without -priced, displays the cumulative invested capital after each deal.
  With -priced, displays month-end snapshots of invested capital against
  market value up to the given date.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "Last date of the valued history (YYYY-MM-DD).")
	f.BoolVar(&c.priced, "priced", false, "Value month-end snapshots with current quotes.")
	f.BoolVar(&c.refresh, "refresh", false, "Clear the quote cache before fetching.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := folio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	var r *folio.PerformanceReport
	if c.priced {
		src, err := pricedSource(c.refresh)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening price source: %v\n", err)
			return subcommands.ExitFailure
		}
		r = folio.NewPricedPerformanceReport(ledger, on, *currency, src)
	} else {
		r = folio.NewPerformanceReport(ledger, *currency)
	}

	printMarkdown(renderer.HistoryMarkdown(r))
	return subcommands.ExitSuccess
}
