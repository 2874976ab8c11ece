// Package ig imports the transaction history exported by the IG share
// dealing platform, and converts it into ledger transactions.
//
// The export is a CSV table whose MarketName column carries free text:
// cash movements ("Card payment", "Returned to card"), dividend lines
// ("<stock> DIVIDEND ..."), commission lines ("COMM"), and share deals
// ("<stock>CONS <qty>@<price> <ref>"). Each row is classified by an
// ordered set of mutually exclusive rules; the first matching rule wins.
package ig

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/folio"
	"github.com/shopspring/decimal"
)

// Columns the export must provide. A header that does not carry the exact
// name is matched by case-insensitive containment instead, so "PL Amount"
// also binds "pl amount (AUD)".
var requiredColumns = []string{"TextDate", "Summary", "MarketName", "Transaction type", "PL Amount"}

const (
	kindDeposit    = "DEPO"
	kindWithdrawal = "WITH"

	// summaryCommissions is the Summary value IG puts on dealing fees. Fee
	// rows sometimes come with an empty Summary; defaultSummary restores it.
	summaryCommissions = "Share Dealing Commissions"

	// unknownStock labels dividend adjustments whose MarketName is blank.
	unknownStock = "UNKNOWN_STOCK"
)

// reconcileTolerance is the allowed gap between a deal's quantity×price and
// the row's PL Amount before the price is re-derived from the PL Amount.
var reconcileTolerance = decimal.NewFromFloat(0.02)

// priceScale converts the price field of a deal line to currency units: IG
// quotes it in hundredths, "527.5" means 5.275.
var priceScale = decimal.NewFromInt(100)

// rawRow is one data row of the export, fields trimmed, amount parsed.
type rawRow struct {
	n       int // 1-based data row number, for diagnostics
	day     folio.Date
	summary string
	market  string
	kind    string // DEPO or WITH
	amount  decimal.Decimal
}

// Import reads an IG transaction export and returns the equivalent ledger,
// denominated in currency, sorted chronologically.
//
// Rows that cannot be classified abort the import with a row-indexed error;
// no row is ever silently dropped. Recoverable defects (a deal whose
// quantity×price does not reconcile with its PL Amount) are corrected and
// collected as warnings.
func Import(r io.Reader, currency string) (*folio.Ledger, []folio.Warning, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // field count checked below, listing every bad row

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, &folio.StructureError{Reason: fmt.Sprintf("unreadable export: %v", err)}
	}
	if len(records) == 0 {
		return nil, nil, &folio.StructureError{Reason: "empty export: no header row"}
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, nil, err
	}

	width := len(records[0])
	var short []string
	for i, record := range records[1:] {
		if len(record) < width {
			short = append(short, strconv.Itoa(i+1))
		}
	}
	if len(short) > 0 {
		return nil, nil, &folio.StructureError{Reason: fmt.Sprintf("rows with missing fields: %s", strings.Join(short, ", "))}
	}

	var txs []folio.Transaction
	var warnings []folio.Warning
	for i, record := range records[1:] {
		row := rawRow{
			n:       i + 1,
			summary: strings.TrimSpace(record[cols["Summary"]]),
			market:  strings.TrimSpace(record[cols["MarketName"]]),
			kind:    strings.TrimSpace(record[cols["Transaction type"]]),
		}

		row.day, err = folio.ParseRowDate(record[cols["TextDate"]])
		if err != nil {
			// a bad date poisons every downstream computation: fatal.
			return nil, nil, &folio.StructureError{Reason: fmt.Sprintf("row %d: %v", row.n, err)}
		}

		row.amount, err = parseAmount(record[cols["PL Amount"]])
		if err != nil {
			return nil, nil, &folio.ParseError{Row: row.n, Err: err}
		}

		if row.kind != kindDeposit && row.kind != kindWithdrawal {
			return nil, nil, &folio.ParseError{Row: row.n, Err: fmt.Errorf("unknown Transaction type %q, want %s or %s", row.kind, kindDeposit, kindWithdrawal)}
		}

		defaultSummary(&row)

		tx, warning, err := classify(row, currency)
		if err != nil {
			return nil, nil, err
		}
		if warning != nil {
			warnings = append(warnings, *warning)
		}
		txs = append(txs, tx)
	}

	ledger := folio.NewLedger()
	ledger.Append(txs...)
	return ledger, warnings, nil
}

// resolveColumns binds each required column to its index in the header:
// exact name first, then the first header containing the name
// case-insensitively. Missing columns are all reported at once.
func resolveColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, want := range requiredColumns {
		idx := -1
		for i, name := range header {
			if strings.TrimSpace(name) == want {
				idx = i
				break
			}
		}
		if idx < 0 {
			for i, name := range header {
				if strings.Contains(strings.ToLower(name), strings.ToLower(want)) {
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			missing = append(missing, want)
			continue
		}
		cols[want] = idx
	}
	if len(missing) > 0 {
		return nil, &folio.StructureError{Reason: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", "))}
	}
	return cols, nil
}

// amountCleaner strips the currency decoration IG puts on amounts.
var amountCleaner = strings.NewReplacer("$", "", "£", "", ",", "", " ", "")

func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountCleaner.Replace(s))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid PL Amount %q", s)
	}
	return d, nil
}

// defaultSummary restores the Summary that IG omits on some dealing fee
// rows: a withdrawal with a negative amount and no Summary is a commission.
func defaultSummary(row *rawRow) {
	if row.summary == "" && row.kind == kindWithdrawal && row.amount.IsNegative() {
		row.summary = summaryCommissions
	}
}

// classify turns one export row into a transaction. Rules are evaluated in
// order and the first match wins; order matters because the patterns are not
// disjoint (a MarketName could contain both "COMM" and "CONS").
func classify(row rawRow, currency string) (folio.Transaction, *folio.Warning, error) {
	abs := folio.M(row.amount.Abs(), currency)

	switch {
	case strings.Contains(row.market, "Card payment"):
		return folio.NewDeposit(row.day, "", abs), nil, nil

	case strings.Contains(row.market, "Returned to card"):
		return folio.NewWithdraw(row.day, "", abs), nil, nil

	case strings.Contains(row.market, "DIVIDEND"):
		name, _, _ := strings.Cut(row.market, "DIVIDEND")
		symbol := strings.ToUpper(strings.TrimSpace(name))
		if symbol == "" {
			return nil, nil, &folio.ParseError{Row: row.n, Err: fmt.Errorf("no stock name before DIVIDEND in %q", row.market)}
		}
		if row.amount.IsNegative() {
			return folio.NewDividendWithdrawal(row.day, "", symbol, abs), nil, nil
		}
		return folio.NewDividend(row.day, "", symbol, abs), nil, nil

	case strings.Contains(row.market, "COMM"):
		return folio.NewCommission(row.day, "", abs), nil, nil

	case strings.Contains(row.market, "CONS"):
		return classifyDeal(row, currency)

	case row.summary == summaryCommissions,
		row.market == "" && row.kind == kindWithdrawal && row.amount.IsNegative():
		return folio.NewCommission(row.day, "", abs), nil, nil

	case row.amount.IsNegative() && strings.EqualFold(row.summary, "DIVIDEND"):
		symbol := strings.ToUpper(row.market)
		if symbol == "" {
			symbol = unknownStock
		}
		return folio.NewDividendWithdrawal(row.day, "", symbol, abs), nil, nil

	default:
		return nil, nil, &folio.ParseError{Row: row.n, Err: fmt.Errorf("unknown MarketName format %q (summary %q)", row.market, row.summary)}
	}
}

// classifyDeal parses a share deal line, `<stock>CONS <qty>@<price> <ref>`,
// and reconciles it against the row's PL Amount. A withdrawal pays for a
// purchase, a deposit is the proceeds of a sale.
func classifyDeal(row rawRow, currency string) (folio.Transaction, *folio.Warning, error) {
	name, qty, price, err := parseCons(row.market)
	if err != nil {
		return nil, nil, &folio.ParseError{Row: row.n, Err: err}
	}
	symbol := strings.ToUpper(name)

	var warning *folio.Warning
	cost := price.Mul(qty)
	paid := row.amount.Abs()
	if cost.Sub(paid).Abs().GreaterThan(reconcileTolerance) {
		// the PL Amount is the broker's own arithmetic: trust it.
		corrected := paid.Div(qty)
		w := folio.Warning{Row: row.n, Msg: fmt.Sprintf("%s: parsed cost %s does not reconcile with PL amount %s, using unit price %s", symbol, cost, paid, corrected)}
		warning = &w
		price = corrected
	}

	if row.kind == kindWithdrawal {
		return folio.NewBuy(row.day, "", symbol, folio.Q(qty), folio.M(price, currency)), warning, nil
	}
	return folio.NewSell(row.day, "", symbol, folio.Q(qty), folio.M(price, currency)), warning, nil
}

// parseCons splits a deal MarketName into stock name, quantity and unit
// price. The price field is quoted in hundredths of a currency unit and is
// scaled down unconditionally.
func parseCons(market string) (name string, qty, price decimal.Decimal, err error) {
	parts := strings.Split(market, "CONS")
	if len(parts) != 2 {
		return "", qty, price, fmt.Errorf("want exactly one CONS token in %q, got %d", market, len(parts)-1)
	}

	name = strings.TrimSpace(parts[0])
	if name == "" {
		return "", qty, price, fmt.Errorf("no stock name before CONS in %q", market)
	}

	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return "", qty, price, fmt.Errorf("no quantity field after CONS in %q", market)
	}
	qtyStr, priceStr, found := strings.Cut(fields[0], "@")
	if !found {
		return "", qty, price, fmt.Errorf("no %q in quantity field %q", "@", fields[0])
	}

	n, err := strconv.Atoi(qtyStr)
	if err != nil {
		return "", qty, price, fmt.Errorf("invalid quantity %q: %v", qtyStr, err)
	}
	if n <= 0 {
		return "", qty, price, fmt.Errorf("quantity must be positive, got %d", n)
	}

	scaled, err := decimal.NewFromString(priceStr)
	if err != nil {
		return "", qty, price, fmt.Errorf("invalid price %q: %v", priceStr, err)
	}
	price = scaled.Div(priceScale)
	if !price.IsPositive() {
		return "", qty, price, fmt.Errorf("price must be positive, got %s", price)
	}

	return name, decimal.NewFromInt(int64(n)), price, nil
}
