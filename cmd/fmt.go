package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// fmtCmd rewrites the ledger file in its canonical form.
type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "validate and format the ledger file into a canonical form" }
func (*fmtCmd) Usage() string {
	return `fcs fmt [-o <file>]

  Reads the ledger, validates every transaction, sorts them by date keeping
  the relative order of same-day transactions, and writes them back one JSON
  object per line with ordered keys. A transaction without a date is stamped
  with today's. By default the ledger file is rewritten in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, or - for stdout; the default rewrites the ledger file in place")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid ledger %q:\n%v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	switch c.output {
	case "":
		if err := EncodeLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Ledger file %q has been formatted.\n", *ledgerFile)
	case "-":
		if err := folio.EncodeLedger(os.Stdout, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		if err := folio.WriteLedgerFile(c.output, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Formatted ledger written to %q.\n", c.output)
	}
	return subcommands.ExitSuccess
}
