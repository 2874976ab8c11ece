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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date    string
	priced  bool
	refresh bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display invested capital, gains and open positions" }
func (*summaryCmd) Usage() string {
	return `fcs summary [-d <date>] [-priced]

  Displays total invested capital, realized and unrealized gains, and the
  number of open positions. With -priced the holdings are valued with
  current quotes; without, value defaults to cost and unrealized gain to
  zero.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "Date of the summary (YYYY-MM-DD).")
	f.BoolVar(&c.priced, "priced", false, "Value holdings with current quotes.")
	f.BoolVar(&c.refresh, "refresh", false, "Clear the quote cache before fetching.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var s *folio.Summary
	if c.priced {
		src, err := pricedSource(c.refresh)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening price source: %v\n", err)
			return subcommands.ExitFailure
		}
		s = folio.NewPricedSummary(ledger, on, *currency, src)
	} else {
		s = folio.NewSummary(ledger, on, *currency)
	}

	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
