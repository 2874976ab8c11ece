package renderer

import (
	"fmt"

	"github.com/etnz/folio"
)

// Transaction renders a transaction to a string.
func Transaction(tx folio.Transaction) string {
	switch v := tx.(type) {
	case folio.Buy:
		return fmt.Sprintf("%s: Bought %s %s at %s", v.When(), v.Quantity, v.Symbol, v.Price)
	case folio.Sell:
		return fmt.Sprintf("%s: Sold %s %s at %s", v.When(), v.Quantity, v.Symbol, v.Price)
	case folio.Dividend:
		return fmt.Sprintf("%s: Dividend of %s for %s", v.When(), v.Amount, v.Symbol)
	case folio.DividendWithdrawal:
		return fmt.Sprintf("%s: Dividend of %s reclaimed for %s", v.When(), v.Amount, v.Symbol)
	case folio.Commission:
		return fmt.Sprintf("%s: Commission of %s", v.When(), v.Amount)
	case folio.Deposit:
		return fmt.Sprintf("%s: Deposited %s", v.When(), v.Amount)
	case folio.Withdraw:
		return fmt.Sprintf("%s: Withdrew %s", v.When(), v.Amount)
	default:
		return string(tx.What())
	}
}
