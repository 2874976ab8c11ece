// Package cmd implements the CLI application to manage a share dealing ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&dividendsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global vaariables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var symbolsFile = flag.String("symbols-file", "symbols.jsonl", "Path to the symbol directory file (JSONL format)")
var currency = flag.String("currency", "AUD", "Reporting currency for imported amounts")
var quoteSource = flag.String("source", "eodhd", "Price source for valued reports: eodhd, tradegate or static")
var pricesFile = flag.String("prices-file", "prices.jsonl", "Path to the static price table (JSONL format), used with -source=static")

// DecodeLedger reads the app ledger file. A missing file is an empty ledger.
func DecodeLedger() (*folio.Ledger, error) {
	return folio.ReadLedgerFile(*ledgerFile)
}

// EncodeLedger writes the ledger back to the app ledger file.
func EncodeLedger(ledger *folio.Ledger) error {
	return folio.WriteLedgerFile(*ledgerFile, ledger)
}

// DecodeDirectory reads the app symbol directory. A missing file is an empty
// directory, so quote tickers fall back to the ledger symbols.
func DecodeDirectory() (*folio.Directory, error) {
	return folio.ReadDirectoryFile(*symbolsFile)
}

// quotes is the process-wide quote source, built on first use, so that a run
// rendering several valued views fetches each symbol once.
var quotes *folio.Cached

// openPriceSource returns the quote source selected by -source, behind the
// shared quote cache.
func openPriceSource() (*folio.Cached, error) {
	if quotes != nil {
		return quotes, nil
	}

	dir, err := DecodeDirectory()
	if err != nil {
		return nil, fmt.Errorf("cannot read the symbol directory %q: %w", *symbolsFile, err)
	}

	var src folio.PriceSource
	switch *quoteSource {
	case "eodhd":
		key := folio.EodhdApiKey()
		if key == "" {
			return nil, fmt.Errorf("eodhd needs an API key: set -eodhd-api-key or the %s environment variable", "EODHD_API_KEY")
		}
		src = folio.NewEODHD(dir, key)
	case "tradegate":
		src = folio.NewTradegate(dir)
	case "static":
		f, err := os.Open(*pricesFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open the price table: %w", err)
		}
		defer f.Close()
		src, err = folio.DecodeStaticPrices(f)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown price source %q (want eodhd, tradegate or static)", *quoteSource)
	}

	quotes = folio.NewCached(src)
	return quotes, nil
}

// pricedSource opens the quote source for a valued report, clearing the
// cache first when refresh is set.
func pricedSource(refresh bool) (*folio.Cached, error) {
	src, err := openPriceSource()
	if err != nil {
		return nil, err
	}
	if refresh {
		src.Clear()
	}
	return src, nil
}

// printMarkdown renders markdown for the terminal. If styling fails the raw
// markdown is printed as is.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(content)
		return
	}
	out, err := r.Render(content)
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
