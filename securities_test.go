package folio

import (
	"bytes"
	"strings"
	"testing"
)

func TestDirectoryLookups(t *testing.T) {
	d := NewDirectory()
	d.Add(Security{Symbol: "wds ", Ticker: "WDS.AU", ISIN: "AU0000224040", Sector: "Energy"})
	d.Add(Security{Symbol: "STO", Ticker: "STO.AU"})

	if !d.Has("WDS") || !d.Has("wds") {
		t.Errorf("Has must match case-insensitively on the normalized symbol")
	}
	if d.Has("BHP") {
		t.Errorf("Has(BHP) = true, want false")
	}

	if got := d.Ticker("wds"); got != "WDS.AU" {
		t.Errorf("Ticker(wds) = %q, want WDS.AU", got)
	}
	// unknown symbols quote under their own name
	if got := d.Ticker("BHP"); got != "BHP" {
		t.Errorf("Ticker(BHP) = %q, want BHP", got)
	}

	if got := d.ISIN("WDS"); got != "AU0000224040" {
		t.Errorf("ISIN(WDS) = %q", got)
	}
	if got := d.ISIN("STO"); got != "" {
		t.Errorf("ISIN(STO) = %q, want empty", got)
	}

	if got := d.Sector("WDS"); got != "Energy" {
		t.Errorf("Sector(WDS) = %q, want Energy", got)
	}
}

func TestDirectoryAddReplaces(t *testing.T) {
	d := NewDirectory()
	d.Add(Security{Symbol: "WDS", Ticker: "WDS.AU"})
	d.Add(Security{Symbol: "WDS", Ticker: "WDS.XETRA", Sector: "Energy"})

	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	if got := d.Ticker("WDS"); got != "WDS.XETRA" {
		t.Errorf("Ticker(WDS) = %q, want the replacing entry", got)
	}
}

func TestDecodeDirectory(t *testing.T) {
	input := `{"symbol":"WDS","ticker":"WDS.AU","isin":"AU0000224040","sector":"Energy"}

{"symbol":"STO","ticker":"STO.AU"}
`
	d, err := DecodeDirectory(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeDirectory() returned an unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if got := d.Ticker("STO"); got != "STO.AU" {
		t.Errorf("Ticker(STO) = %q, want STO.AU", got)
	}
}

func TestDecodeDirectory_RejectsMissingSymbol(t *testing.T) {
	if _, err := DecodeDirectory(strings.NewReader(`{"ticker":"WDS.AU"}`)); err == nil {
		t.Fatal("DecodeDirectory() must reject an entry without a symbol")
	}
}

func TestEncodeDirectory_SortedAndOmitsEmptyFields(t *testing.T) {
	d := NewDirectory()
	d.Add(Security{Symbol: "WDS", Ticker: "WDS.AU", ISIN: "AU0000224040", Sector: "Energy"})
	d.Add(Security{Symbol: "STO", Ticker: "STO.AU"})

	var buffer bytes.Buffer
	if err := EncodeDirectory(&buffer, d); err != nil {
		t.Fatalf("EncodeDirectory() returned an unexpected error: %v", err)
	}

	want := `{"symbol":"STO","ticker":"STO.AU"}
{"symbol":"WDS","ticker":"WDS.AU","isin":"AU0000224040","sector":"Energy"}
`
	if got := buffer.String(); got != want {
		t.Errorf("EncodeDirectory() = %s, want %s", got, want)
	}
}

func TestReadDirectoryFile_MissingFileIsEmpty(t *testing.T) {
	d, err := ReadDirectoryFile("testdata/does-not-exist.jsonl")
	if err != nil {
		t.Fatalf("ReadDirectoryFile() returned an unexpected error: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
}
