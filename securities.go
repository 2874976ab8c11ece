package folio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// This file handles the symbol directory: the mapping from the broker's
// display names to quote tickers. It should remain human readable, single
// file and easy to merge by hand.

// Security links a broker display name to the identifiers quote services
// understand.
type Security struct {
	Symbol string `json:"symbol"`           // broker display name, uppercase
	Ticker string `json:"ticker"`           // quote service ticker, e.g. "TLS.AU"
	ISIN   string `json:"isin,omitempty"`   // for services that quote by ISIN
	Sector string `json:"sector,omitempty"` // manual override, wins over lookups
}

// Directory is the symbol directory, indexed by display name.
type Directory struct {
	securities []*Security
	index      map[string]*Security
}

// NewDirectory returns a new empty symbol directory.
func NewDirectory() *Directory {
	return &Directory{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

// Add records a security, replacing any previous entry for the same symbol.
func (d *Directory) Add(sec Security) {
	sec.Symbol = strings.ToUpper(strings.TrimSpace(sec.Symbol))
	if prev, ok := d.index[sec.Symbol]; ok {
		*prev = sec
		return
	}
	s := &sec
	d.securities = append(d.securities, s)
	d.index[sec.Symbol] = s
}

// Len returns the number of securities in the directory.
func (d *Directory) Len() int { return len(d.securities) }

// Has reports whether symbol has a directory entry.
func (d *Directory) Has(symbol string) bool {
	_, ok := d.index[strings.ToUpper(symbol)]
	return ok
}

// Ticker returns the quote ticker for symbol. Unknown symbols quote under
// their own name.
func (d *Directory) Ticker(symbol string) string {
	if sec, ok := d.index[strings.ToUpper(symbol)]; ok && sec.Ticker != "" {
		return sec.Ticker
	}
	return symbol
}

// ISIN returns the ISIN recorded for symbol, or "".
func (d *Directory) ISIN(symbol string) string {
	if sec, ok := d.index[strings.ToUpper(symbol)]; ok {
		return sec.ISIN
	}
	return ""
}

// Sector returns the sector override recorded for symbol, or "".
func (d *Directory) Sector(symbol string) string {
	if sec, ok := d.index[strings.ToUpper(symbol)]; ok {
		return sec.Sector
	}
	return ""
}

// DecodeDirectory reads a symbol directory from its JSONL form, one
// security per line.
func DecodeDirectory(r io.Reader) (*Directory, error) {
	d := NewDirectory()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var sec Security
		if err := json.Unmarshal(line, &sec); err != nil {
			return nil, fmt.Errorf("cannot parse line of the symbol directory: %q: %w", string(line), err)
		}
		if sec.Symbol == "" {
			return nil, fmt.Errorf("symbol directory line %q has no symbol", string(line))
		}
		d.Add(sec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read symbol directory: %w", err)
	}
	return d, nil
}

// EncodeDirectory writes the directory to w in its JSONL form, sorted by
// symbol. Reading the output back yields an equal directory.
func EncodeDirectory(w io.Writer, d *Directory) error {
	sorted := slices.Clone(d.securities)
	slices.SortFunc(sorted, func(a, b *Security) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})

	for _, sec := range sorted {
		data, err := json.Marshal(sec)
		if err != nil {
			return fmt.Errorf("cannot marshal security %q: %w", sec.Symbol, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write symbol directory: %w", err)
		}
	}
	return nil
}

// ReadDirectoryFile loads the symbol directory stored at path. A missing
// file yields an empty directory: symbols then quote under their own name.
func ReadDirectoryFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDirectory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open symbol directory %q: %w", path, err)
	}
	defer f.Close()

	d, err := DecodeDirectory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode symbol directory %q: %w", path, err)
	}
	return d, nil
}

// WriteDirectoryFile persists the directory to path, creating parent
// directories as needed.
func WriteDirectoryFile(path string, d *Directory) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening symbol directory %q for writing: %w", path, err)
	}
	defer file.Close()

	return EncodeDirectory(file, d)
}
