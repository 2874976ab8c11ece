package folio

import (
	"errors"
	"fmt"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy                CommandType = "buy"
	CmdSell               CommandType = "sell"
	CmdDividend           CommandType = "dividend"
	CmdDividendWithdrawal CommandType = "dividend-withdrawal"
	CmdCommission         CommandType = "commission"
	CmdDeposit            CommandType = "deposit"
	CmdWithdraw           CommandType = "withdraw"
)

// Sentinel symbols label cash and fee rows in the normalized transaction
// table. They never form positions.
const (
	SymbolCommission     = "COMMISSION"
	SymbolCashDeposit    = "CASH_DEPOSIT"
	SymbolCashWithdrawal = "CASH_WITHDRAWAL"
)

// IsSentinel reports whether symbol is one of the cash/fee sentinels.
func IsSentinel(symbol string) bool {
	switch symbol {
	case SymbolCommission, SymbolCashDeposit, SymbolCashWithdrawal:
		return true
	}
	return false
}

// Transaction defines the common interface for all types of financial
// transactions that can be recorded in the ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "sell").
	When() Date        // When returns the date on which the transaction occurred.
	Equal(Transaction) bool
	Validate() (Transaction, error)
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction (e.g., "buy", "sell").
	Date    Date        `json:"date"`           // Date is the date when the transaction took place.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional note for the transaction.
}

// What returns the command name for the transaction.
func (t baseCmd) What() CommandType { return t.Command }

// When returns the date of the transaction.
func (t baseCmd) When() Date { return t.Date }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate defaults the date to today if it is zero. It is meant to be
// embedded in other transaction validation methods.
func (t *baseCmd) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// secCmd is a component for symbol-based transactions (buy, sell, dividend).
type secCmd struct {
	baseCmd
	Symbol string `json:"symbol"` // Symbol identifies the security involved in the transaction.
}

// Validate checks the base command fields and ensures a symbol is present.
func (t *secCmd) Validate() error {
	t.baseCmd.Validate()
	if t.Symbol == "" {
		return errors.New("symbol is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for secCmd.
func (t secCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("symbol", t.Symbol)
	return w.MarshalJSON()
}

// Buy represents a transaction where a quantity of a security is purchased
// at a unit price.
type Buy struct {
	secCmd
	Quantity Quantity // Quantity is the number of shares or units bought.
	Price    Money    // Price is the cost of one share.
}

// NewBuy creates a new Buy transaction.
func NewBuy(day Date, memo, symbol string, quantity Quantity, price Money) Buy {
	return Buy{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdBuy, Date: day, Memo: memo}, Symbol: symbol},
		Quantity: quantity,
		Price:    price,
	}
}

// Cost returns the total cost of the purchase.
func (t Buy) Cost() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.Optional("currency", t.Price.cur)
	// the unit price keeps all its digits.
	w.Append("price", t.Price.value)
	return w.MarshalJSON()
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// Validate checks the Buy transaction's fields. It ensures that the quantity
// and the unit price are positive.
func (t Buy) Validate() (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}
	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("buy transaction quantity must be positive, got %s", t.Quantity)
	}
	if !t.Price.IsPositive() {
		return t, fmt.Errorf("buy transaction price must be positive, got %s", t.Price)
	}
	return t, nil
}

// Sell represents a transaction where a quantity of a security is sold at a
// unit price.
type Sell struct {
	secCmd
	Quantity Quantity // Quantity is the number of shares or units sold.
	Price    Money    // Price is the proceeds of one share.
}

// NewSell creates a new Sell transaction.
func NewSell(day Date, memo, symbol string, quantity Quantity, price Money) Sell {
	return Sell{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdSell, Date: day, Memo: memo}, Symbol: symbol},
		Quantity: quantity,
		Price:    price,
	}
}

// Proceeds returns the total proceeds of the sale.
func (t Sell) Proceeds() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.Optional("currency", t.Price.cur)
	w.Append("price", t.Price.value)
	return w.MarshalJSON()
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// Validate checks the Sell transaction's fields. It ensures the quantity and
// the unit price are positive. It does not check the position: selling more
// than is held is accepted here and resolved by the accounting engine.
func (t Sell) Validate() (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}
	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("sell transaction quantity must be positive, got %s", t.Quantity)
	}
	if !t.Price.IsPositive() {
		return t, fmt.Errorf("sell transaction price must be positive, got %s", t.Price)
	}
	return t, nil
}

// Dividend represents a cash dividend received for a held security.
type Dividend struct {
	secCmd
	Amount Money // Amount is the total dividend cash received.
}

// NewDividend creates a new Dividend transaction.
func NewDividend(day Date, memo, symbol string, amount Money) Dividend {
	return Dividend{
		secCmd: secCmd{baseCmd: baseCmd{Command: CmdDividend, Date: day, Memo: memo}, Symbol: symbol},
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Dividend.
func (t Dividend) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Dividend) Equal(other Transaction) bool {
	o, ok := other.(Dividend)
	return ok && t.secCmd == o.secCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Dividend transaction's fields.
func (t Dividend) Validate() (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, errors.New("dividend must have a positive amount")
	}
	return t, nil
}

// DividendWithdrawal represents a dividend adjustment taken back by the
// broker, typically a correction or a reclaimed payment.
type DividendWithdrawal struct {
	secCmd
	Amount Money // Amount is the dividend cash clawed back, as a positive value.
}

// NewDividendWithdrawal creates a new DividendWithdrawal transaction.
func NewDividendWithdrawal(day Date, memo, symbol string, amount Money) DividendWithdrawal {
	return DividendWithdrawal{
		secCmd: secCmd{baseCmd: baseCmd{Command: CmdDividendWithdrawal, Date: day, Memo: memo}, Symbol: symbol},
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for DividendWithdrawal.
func (t DividendWithdrawal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t DividendWithdrawal) Equal(other Transaction) bool {
	o, ok := other.(DividendWithdrawal)
	return ok && t.secCmd == o.secCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the DividendWithdrawal transaction's fields.
func (t DividendWithdrawal) Validate() (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, errors.New("dividend withdrawal must have a positive amount")
	}
	return t, nil
}

// Commission represents a dealing fee charged by the broker.
type Commission struct {
	baseCmd
	Amount Money // Amount is the fee charged, as a positive value.
}

// NewCommission creates a new Commission transaction.
func NewCommission(day Date, memo string, amount Money) Commission {
	return Commission{
		baseCmd: baseCmd{Command: CmdCommission, Date: day, Memo: memo},
		Amount:  amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Commission.
func (t Commission) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Commission) Equal(other Transaction) bool {
	o, ok := other.(Commission)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Commission transaction's fields.
func (t Commission) Validate() (Transaction, error) {
	t.baseCmd.Validate()
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("commission amount must be positive, got %s", t.Amount)
	}
	return t, nil
}

// Deposit represents cash added to the account.
type Deposit struct {
	baseCmd
	Amount Money // Amount is the quantity of cash deposited.
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(day Date, memo string, amount Money) Deposit {
	return Deposit{
		baseCmd: baseCmd{Command: CmdDeposit, Date: day, Memo: memo},
		Amount:  amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Deposit transaction's fields.
func (t Deposit) Validate() (Transaction, error) {
	t.baseCmd.Validate()
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("deposit amount must be positive, got %s", t.Amount)
	}
	return t, nil
}

// Withdraw represents cash returned to the account holder.
type Withdraw struct {
	baseCmd
	Amount Money // Amount is the quantity of cash withdrawn, as a positive value.
}

// NewWithdraw creates a new Withdraw transaction.
func NewWithdraw(day Date, memo string, amount Money) Withdraw {
	return Withdraw{
		baseCmd: baseCmd{Command: CmdWithdraw, Date: day, Memo: memo},
		Amount:  amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Withdraw.
func (t Withdraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Withdraw) Equal(other Transaction) bool {
	o, ok := other.(Withdraw)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Withdraw transaction's fields.
func (t Withdraw) Validate() (Transaction, error) {
	t.baseCmd.Validate()
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("withdraw amount must be positive, got %s", t.Amount)
	}
	return t, nil
}
