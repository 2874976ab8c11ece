package folio

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// This file contains functions to access the EODHD API.

const eodhd_api_key = "EODHD_API_KEY"

var eodhdApiFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhd_api_key+"\". You can get one at https://eodhd.com/")

// EodhdApiKey returns the API key from the flag, falling back to the
// environment variable.
func EodhdApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdApiFlag == "" {
		*eodhdApiFlag = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiFlag
}

// lookup retry policy for the quote services.
const (
	lookupAttempts = 3
	lookupDelay    = 3 * time.Second
)

// EODHD quotes through the eodhd.com JSON API. Symbols are resolved to
// EODHD tickers through the symbol directory; a symbol without a directory
// entry quotes under its own name.
type EODHD struct {
	dir    *Directory
	apiKey string
}

var _ PriceSource = (*EODHD)(nil)

// NewEODHD returns a price source backed by eodhd.com.
func NewEODHD(dir *Directory, apiKey string) *EODHD {
	return &EODHD{dir: dir, apiKey: apiKey}
}

// CurrentPrices fetches the latest price for each symbol. A symbol whose
// lookup fails after retries maps to 0 and is logged; the call never fails.
func (e *EODHD) CurrentPrices(symbols []string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		ticker := e.dir.Ticker(symbol)
		var price float64
		err := retry(lookupAttempts, lookupDelay, func() error {
			var err error
			price, err = eodhdRealTime(e.apiKey, ticker)
			return err
		})
		if err != nil {
			log.Printf("eodhd: no price for %s (%s): %v", symbol, ticker, err)
			price = 0
		}
		prices[symbol] = price
	}
	return prices
}

// Sector returns the symbol's sector: the directory override wins, then the
// EODHD fundamentals, then [DefaultSector].
func (e *EODHD) Sector(symbol string) string {
	if sector := e.dir.Sector(symbol); sector != "" {
		return sector
	}
	ticker := e.dir.Ticker(symbol)
	var sector string
	err := retry(lookupAttempts, lookupDelay, func() error {
		var err error
		sector, err = eodhdSectorOf(e.apiKey, ticker)
		return err
	})
	if err != nil {
		log.Printf("eodhd: no sector for %s (%s): %v", symbol, ticker, err)
		return DefaultSector
	}
	if sector == "" {
		return DefaultSector
	}
	return sector
}

// eodhdRealTime returns the latest price for a given ticker.
func eodhdRealTime(apiKey, ticker string) (float64, error) {
	// https://eodhd.com/api/real-time/TLS.AU?api_token=...&fmt=json
	// {
	// 	"code": "TLS.AU",
	// 	"timestamp": 1693526400,
	// 	"open": 4.1,
	// 	"high": 4.16,
	// 	"low": 4.09,
	// 	"close": 4.15,
	// 	"previousClose": 4.11,
	// 	"change": 0.04,
	// 	"change_p": 0.9732
	// }

	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", url.PathEscape(ticker), apiKey)
	type Info struct {
		Close         any `json:"close"`
		PreviousClose any `json:"previousClose"`
	}

	// that's the payload
	var content Info
	if err := jwget(daily(), addr, &content); err != nil {
		return 0, err
	}

	// off-hours the close comes back as the string "NA"; the previous close
	// is then the latest value there is.
	if price, ok := asPrice(content.Close); ok {
		return price, nil
	}
	if price, ok := asPrice(content.PreviousClose); ok {
		return price, nil
	}
	return 0, fmt.Errorf("no usable price for %s (close=%v previousClose=%v)", ticker, content.Close, content.PreviousClose)
}

// asPrice reads a price from a JSON value, which this API returns either as
// a number or as a numeric string, and rejects zero.
func asPrice(jval any) (float64, bool) {
	switch v := jval.(type) {
	case float64:
		return v, v > 0
	case string:
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return val, err == nil && val > 0
	}
	return 0, false
}

// eodhdSectorOf returns the GICS sector from the ticker's fundamentals.
func eodhdSectorOf(apiKey, ticker string) (string, error) {
	// https://eodhd.com/api/fundamentals/TLS.AU?api_token=...&fmt=json&filter=General::Sector
	// "Communication Services"

	addr := fmt.Sprintf("https://eodhd.com/api/fundamentals/%s?fmt=json&filter=General::Sector&api_token=%s", url.PathEscape(ticker), apiKey)
	var sector string
	if err := jwget(daily(), addr, &sector); err != nil {
		return "", err
	}
	return sector, nil
}
