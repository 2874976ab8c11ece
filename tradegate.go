package folio

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Tradegate quotes from the Tradegate exchange's refresh endpoint, which
// serves delayed intraday data by ISIN, no API key needed. Only symbols with
// an ISIN in the directory can quote; the service has no sector data, so
// sectors come from directory overrides only.
type Tradegate struct {
	dir *Directory
}

var _ PriceSource = (*Tradegate)(nil)

// NewTradegate returns a price source backed by tradegate.de.
func NewTradegate(dir *Directory) *Tradegate {
	return &Tradegate{dir: dir}
}

// CurrentPrices fetches the last traded price for each symbol. A symbol
// without an ISIN, or whose lookup fails after retries, maps to 0.
func (t *Tradegate) CurrentPrices(symbols []string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		isin := t.dir.ISIN(symbol)
		if isin == "" {
			log.Printf("tradegate: no ISIN for %s in the symbol directory", symbol)
			prices[symbol] = 0
			continue
		}
		var price float64
		err := retry(lookupAttempts, lookupDelay, func() error {
			var err error
			price, err = tradegateLatest(symbol, isin)
			return err
		})
		if err != nil {
			log.Printf("tradegate: no price for %s (%s): %v", symbol, isin, err)
			price = 0
		}
		prices[symbol] = price
	}
	return prices
}

// Sector returns the directory override for symbol, or [DefaultSector].
func (t *Tradegate) Sector(symbol string) string {
	if sector := t.dir.Sector(symbol); sector != "" {
		return sector
	}
	return DefaultSector
}

/*
	{
	    "bid": 4.123,
	    "ask": 4.145,
	    "last": "4,13",
	    "high": 4.16,
	    "low": 4.09,
	    "stueck": 1200,
	    "delta": "0,52%"
	}
*/
func tradegateLatest(name, isin string) (float64, error) {

	base := "https://www.tradegate.de/refresh.php?isin="
	addr := base + isin

	var jobj any

	err := jwget(daily(), addr, &jobj)
	if err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", name, err)
	}
	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	jval, err := jsonpath.Get("$.last", jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", name, err)
	}
	if s, ok := jval.(string); ok && s == "./." {
		// trade gate show's empty last this way, use the bid instead
		log.Println("'last' is empty, falling back to 'bid'")
		jval, err = jsonpath.Get("$.bid", jobj)
		if err != nil {
			return 0, fmt.Errorf("error parsing %q: %w", name, err)
		}
	}

	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return 0, fmt.Errorf("cannot read value from %q: doesn't have a value and neither a float or string", name)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read value from %q: value is an invalid string %q: %w", name, sval, err)
		}
	}
	if val == 0 {
		// sometimes the bid is empty and returns 0
		return 0, fmt.Errorf("empty bid for %s no value to return", name)
	}
	return val, nil
}
