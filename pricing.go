package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultSector classifies symbols no source knows anything about.
const DefaultSector = "Unknown"

// PriceSource supplies current prices and sector classifications for the
// priced reports. Implementations resolve symbols (broker display names)
// themselves, usually through the symbol [Directory].
//
// Lookups never fail: a symbol without a price maps to 0 and the reports
// exclude it, a symbol without a sector classifies as [DefaultSector].
type PriceSource interface {
	CurrentPrices(symbols []string) map[string]float64
	Sector(symbol string) string
}

// StaticSource quotes from fixed in-memory tables. It backs tests and
// offline use.
type StaticSource struct {
	Prices  map[string]float64
	Sectors map[string]string
}

var _ PriceSource = (*StaticSource)(nil)

func (s *StaticSource) CurrentPrices(symbols []string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		prices[symbol] = s.Prices[symbol]
	}
	return prices
}

func (s *StaticSource) Sector(symbol string) string {
	if sector := s.Sectors[symbol]; sector != "" {
		return sector
	}
	return DefaultSector
}

// DecodeStaticPrices reads a static price table from its JSONL form: one
// object per line with a "symbol", a "price" and an optional "sector".
func DecodeStaticPrices(r io.Reader) (*StaticSource, error) {
	s := &StaticSource{
		Prices:  make(map[string]float64),
		Sectors: make(map[string]string),
	}

	type jquote struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
		Sector string  `json:"sector"`
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var q jquote
		if err := json.Unmarshal(line, &q); err != nil {
			return nil, fmt.Errorf("cannot parse line of the price table: %q: %w", string(line), err)
		}
		if q.Symbol == "" {
			return nil, fmt.Errorf("price table line %q has no symbol", string(line))
		}
		symbol := strings.ToUpper(q.Symbol)
		s.Prices[symbol] = q.Price
		if q.Sector != "" {
			s.Sectors[symbol] = q.Sector
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read price table: %w", err)
	}
	return s, nil
}

// quoteTTL bounds how long a fetched price or sector is reused.
const quoteTTL = 5 * time.Minute

// Cached decorates a price source with a short-lived quote cache, so that
// reports computed back to back do not hit the service twice.
type Cached struct {
	src   PriceSource
	cache *gocache.Cache
}

var _ PriceSource = (*Cached)(nil)

// NewCached returns src behind a cache that expires after [quoteTTL].
func NewCached(src PriceSource) *Cached {
	return &Cached{src: src, cache: gocache.New(quoteTTL, 2*quoteTTL)}
}

// Clear drops every cached quote; the next lookup hits the source again.
func (c *Cached) Clear() { c.cache.Flush() }

func (c *Cached) CurrentPrices(symbols []string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	var misses []string
	for _, symbol := range symbols {
		if v, ok := c.cache.Get("price:" + symbol); ok {
			prices[symbol] = v.(float64)
			continue
		}
		misses = append(misses, symbol)
	}

	if len(misses) > 0 {
		for symbol, price := range c.src.CurrentPrices(misses) {
			prices[symbol] = price
			if price > 0 {
				// a zero means the lookup failed; leave it uncached so the
				// next call retries.
				c.cache.SetDefault("price:"+symbol, price)
			}
		}
	}
	return prices
}

func (c *Cached) Sector(symbol string) string {
	if v, ok := c.cache.Get("sector:" + symbol); ok {
		return v.(string)
	}
	sector := c.src.Sector(symbol)
	if sector != "" {
		c.cache.SetDefault("sector:"+symbol, sector)
	}
	return sector
}
