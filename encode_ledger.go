package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountCmd is a specialized struct to read a ledger amount in two fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}

// priceCmd is a specialized struct to read a unit price in two fields.
type priceCmd struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

func (a priceCmd) Money() Money {
	return M(a.Price, a.Currency)
}

// DecodeLedger decodes transactions from a stream of JSONL data from an
// io.Reader, decodes each line into the appropriate transaction struct, and
// returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		var decodedTx Transaction

		switch identifier.Command {
		case CmdBuy:
			var temp struct {
				secCmd
				priceCmd
				Quantity Quantity `json:"quantity"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = Buy{
				secCmd:   temp.secCmd,
				Quantity: temp.Quantity,
				Price:    temp.Money(),
			}
		case CmdSell:
			var temp struct {
				secCmd
				priceCmd
				Quantity Quantity `json:"quantity"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = Sell{
				secCmd:   temp.secCmd,
				Quantity: temp.Quantity,
				Price:    temp.Money(),
			}
		case CmdDividend:
			var temp struct {
				secCmd
				amountCmd
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = Dividend{secCmd: temp.secCmd, Amount: temp.Money()}
		case CmdDividendWithdrawal:
			var temp struct {
				secCmd
				amountCmd
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = DividendWithdrawal{secCmd: temp.secCmd, Amount: temp.Money()}
		case CmdCommission:
			var temp struct {
				baseCmd
				amountCmd
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = Commission{baseCmd: temp.baseCmd, Amount: temp.Money()}
		case CmdDeposit:
			var temp struct {
				baseCmd
				amountCmd
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = Deposit{baseCmd: temp.baseCmd, Amount: temp.Money()}
		case CmdWithdraw:
			var temp struct {
				baseCmd
				amountCmd
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = Withdraw{baseCmd: temp.baseCmd, Amount: temp.Money()}
		default:
			return nil, fmt.Errorf("unknown transaction command: %q", identifier.Command)
		}

		ledger.Append(decodedTx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Perform a stable sort on the ledger based on the transaction date.
	ledger.stableSort()

	return ledger, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger reorders transactions by date and persists them to an
// io.Writer in JSONL format. The sort is stable, meaning transactions on the
// same day maintain their original relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	ledger.stableSort()

	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}

	return nil
}
