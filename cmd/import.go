package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/ig"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// importCmd imports broker export files into the app ledger.
type importCmd struct {
	merge   bool
	verbose bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import broker export files into the ledger" }
func (*importCmd) Usage() string {
	return `fcs import [-merge] [-v] <file.csv> [<file.csv> ...]

  Reads IG share dealing exports or normalized transaction tables and
  replaces the ledger with the transactions found in them. With -merge the
  transactions are appended to the existing ledger instead.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.merge, "merge", false, "append to the existing ledger instead of replacing it")
	f.BoolVar(&c.verbose, "v", false, "print every imported transaction")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one export file is required as argument")
		return subcommands.ExitUsageError
	}

	ledger := folio.NewLedger()
	if c.merge {
		var err error
		ledger, err = DecodeLedger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
	}

	for _, path := range f.Args() {
		imported, warnings, err := importFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, warning)
		}

		var txs []folio.Transaction
		for _, tx := range imported.Transactions() {
			if c.verbose {
				fmt.Println(renderer.Transaction(tx))
			}
			txs = append(txs, tx)
		}
		ledger.Append(txs...)
	}

	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DataSummaryMarkdown(folio.NewDataSummary(ledger)))
	return subcommands.ExitSuccess
}

// importFile reads one export file, routing it by header: a normalized
// transaction table goes to the CSV codec, anything else to the IG importer,
// whose diagnostics name the missing broker columns.
func importFile(path string) (*folio.Ledger, []folio.Warning, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if isNormalizedTable(content) {
		return folio.ReadLedgerCSV(bytes.NewReader(content), *currency)
	}
	return ig.Import(bytes.NewReader(content), *currency)
}

// isNormalizedTable reports whether the first record carries every column of
// the normalized transaction table.
func isNormalizedTable(content []byte) bool {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return false
	}
	cols := make(map[string]bool, len(header))
	for _, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = true
	}
	for _, name := range []string{"date", "symbol", "action", "quantity", "price"} {
		if !cols[name] {
			return false
		}
	}
	return true
}
