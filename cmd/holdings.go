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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	date    string
	priced  bool
	sectors bool
	refresh bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display open positions and their value" }
func (*holdingsCmd) Usage() string {
	return `fcs holdings [-d <date>] [-priced] [-sectors]

  Displays the open positions with quantity, average cost and invested
  amount. With -priced each position is valued with current quotes. With
  -sectors the valued positions are also grouped by sector; -sectors
  implies -priced.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", folio.Today().String(), "Date of the report (YYYY-MM-DD).")
	f.BoolVar(&c.priced, "priced", false, "Value holdings with current quotes.")
	f.BoolVar(&c.sectors, "sectors", false, "Group the valued holdings by sector; implies -priced.")
	f.BoolVar(&c.refresh, "refresh", false, "Clear the quote cache before fetching.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !c.priced && !c.sectors {
		printMarkdown(renderer.HoldingsMarkdown(folio.NewHoldingReport(ledger, on, *currency)))
		return subcommands.ExitSuccess
	}

	src, err := pricedSource(c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening price source: %v\n", err)
		return subcommands.ExitFailure
	}

	// the sector view shares the holding report's quotes through the cache.
	out := renderer.HoldingsMarkdown(folio.NewPricedHoldingReport(ledger, on, *currency, src))
	if c.sectors {
		out += "\n" + renderer.SectorsMarkdown(folio.NewSectorReport(ledger, on, *currency, src))
	}
	printMarkdown(out)
	return subcommands.ExitSuccess
}
