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

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct{}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display dividend income and its history" }
func (*dividendsCmd) Usage() string {
	return `fcs dividends

  Displays the net dividend income (payments minus reclaims), the payment
  count, and the payment history, most recent first.
`
}

func (*dividendsCmd) SetFlags(f *flag.FlagSet) {}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DividendsMarkdown(folio.NewDividendReport(ledger, *currency)))
	return subcommands.ExitSuccess
}
