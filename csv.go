package folio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file handles the normalized transaction table: a CSV file with the
// columns date, symbol, action, quantity and price. It is the interchange
// format with other tools; the JSONL ledger remains the native store.

// csvHeader is the canonical column order of the normalized table.
var csvHeader = []string{"date", "symbol", "action", "quantity", "price"}

// ActionName returns the canonical action name of a command in the
// normalized table.
func ActionName(cmd CommandType) string {
	switch cmd {
	case CmdBuy:
		return "Buy"
	case CmdSell:
		return "Sell"
	case CmdDividend:
		return "Dividend"
	case CmdDividendWithdrawal:
		return "Dividend_Withdrawal"
	case CmdCommission:
		return "Commission"
	case CmdDeposit:
		return "Cash_In"
	case CmdWithdraw:
		return "Cash_Out"
	default:
		return string(cmd)
	}
}

// ParseAction maps a normalized-table action name, case-insensitively, to a
// command type.
func ParseAction(s string) (CommandType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return CmdBuy, nil
	case "sell":
		return CmdSell, nil
	case "dividend":
		return CmdDividend, nil
	case "dividend_withdrawal":
		return CmdDividendWithdrawal, nil
	case "commission":
		return CmdCommission, nil
	case "cash_in":
		return CmdDeposit, nil
	case "cash_out":
		return CmdWithdraw, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// rowDateFormats are the date forms brokers and exports actually use: ISO
// (with or without a time part) and UK day-first.
var rowDateFormats = []string{
	readDateFormat,
	"2006-01-02 15:04:05",
	"2/1/2006",
	"2-1-2006",
}

// ParseRowDate parses a date cell from a broker export or a normalized table.
func ParseRowDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, format := range rowDateFormats {
		if on, err := time.Parse(format, s); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// numberCleaner strips the currency decoration found in exported amounts.
var numberCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// coerceNumber turns a quantity or price cell into a decimal. It reports
// false when the cell is empty or not numeric.
func coerceNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(numberCleaner.Replace(s))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ReadLedgerCSV reads the normalized transaction table and returns a
// chronologically sorted ledger. Amounts are denominated in currency.
//
// Cleaning applies the table contract: column keys are matched lower-cased,
// symbols are upper-cased and trimmed, actions are matched case-insensitively,
// and quantity/price cells are coerced to numbers after stripping currency
// decoration. An unparseable date aborts the read; an unparseable number
// becomes a zero value and a collected Warning.
func ReadLedgerCSV(r io.Reader, currency string) (*Ledger, []Warning, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, structureErrorf("empty input: no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range csvHeader {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, structureErrorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var txs []Transaction
	var warnings []Warning
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("could not read row %d: %w", row, err)
		}

		day, err := ParseRowDate(record[cols["date"]])
		if err != nil {
			// a bad date poisons every downstream computation: fatal.
			return nil, nil, structureErrorf("row %d: %v", row, err)
		}

		symbol := strings.ToUpper(strings.TrimSpace(record[cols["symbol"]]))

		action, err := ParseAction(record[cols["action"]])
		if err != nil {
			return nil, nil, rowErrorf(row, "%v", err)
		}

		quantity, ok := coerceNumber(record[cols["quantity"]])
		if !ok {
			warnings = append(warnings, warningf(row, "unparseable quantity %q, using 0", record[cols["quantity"]]))
		}
		price, ok := coerceNumber(record[cols["price"]])
		if !ok {
			warnings = append(warnings, warningf(row, "unparseable price %q, using 0", record[cols["price"]]))
		}

		var tx Transaction
		switch action {
		case CmdBuy:
			tx = NewBuy(day, "", symbol, Q(quantity), M(price, currency))
		case CmdSell:
			tx = NewSell(day, "", symbol, Q(quantity), M(price, currency))
		case CmdDividend:
			tx = NewDividend(day, "", symbol, M(price, currency))
		case CmdDividendWithdrawal:
			tx = NewDividendWithdrawal(day, "", symbol, M(price, currency))
		case CmdCommission:
			tx = NewCommission(day, "", M(price, currency))
		case CmdDeposit:
			tx = NewDeposit(day, "", M(price, currency))
		case CmdWithdraw:
			tx = NewWithdraw(day, "", M(price, currency))
		}
		txs = append(txs, tx)
	}

	ledger := NewLedger()
	ledger.Append(txs...)
	return ledger, warnings, nil
}

// WriteLedgerCSV writes the ledger as a normalized transaction table in
// chronological order. Reading the output back and writing it again yields
// byte-identical output.
func WriteLedgerCSV(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	ledger.stableSort()
	for _, tx := range ledger.transactions {
		var symbol string
		quantity := Q(1)
		var price Money

		switch v := tx.(type) {
		case Buy:
			symbol, quantity, price = v.Symbol, v.Quantity, v.Price
		case Sell:
			symbol, quantity, price = v.Symbol, v.Quantity, v.Price
		case Dividend:
			symbol, price = v.Symbol, v.Amount
		case DividendWithdrawal:
			symbol, price = v.Symbol, v.Amount
		case Commission:
			symbol, price = SymbolCommission, v.Amount
		case Deposit:
			symbol, price = SymbolCashDeposit, v.Amount
		case Withdraw:
			symbol, price = SymbolCashWithdrawal, v.Amount
		default:
			return fmt.Errorf("unsupported transaction type for export: %T", tx)
		}

		record := []string{
			tx.When().String(),
			symbol,
			ActionName(tx.What()),
			quantity.String(),
			price.value.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
