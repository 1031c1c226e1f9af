package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// statementDescriptionWidth is the display width a description is truncated to
// on a rendered statement. Stored descriptions are never truncated.
const statementDescriptionWidth = 23

// Transaction is a single immutable ledger entry. A positive amount is a
// credit, a negative amount a debit. Transfer entries represent internal
// movement between categories and are excluded from expense totals.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Transfer    bool
	CreatedAt   time.Time
}

// Category holds a named, append-only transaction history and guarantees the
// balance never goes negative. Methods are not safe for concurrent use; the
// Registry serializes access with a single coarse lock.
type Category struct {
	name    string
	wallet  []Transaction
	balance decimal.Decimal
}

// NewCategory creates an empty category with a zero balance.
func NewCategory(name string) *Category {
	return &Category{
		name:    name,
		balance: decimal.Zero,
	}
}

// Name returns the category name in its stored casing.
func (c *Category) Name() string {
	return c.name
}

// AddRevenue appends a credit for the given amount, rounded to two decimal
// places. Negative amounts are rejected with ErrInvalidAmount.
func (c *Category) AddRevenue(amount decimal.Decimal, description string) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: revenue for %q must not be negative", ErrInvalidAmount, c.name)
	}
	return c.append(amount.Round(2), description, false), nil
}

// AddExpense appends a debit for the magnitude of the given amount. The sign
// of amount is ignored; the stored entry is always negative. Fails with
// ErrInsufficientFunds when the magnitude exceeds the current balance, leaving
// the wallet untouched.
func (c *Category) AddExpense(amount decimal.Decimal, description string) (Transaction, error) {
	magnitude := amount.Abs().Round(2)
	if magnitude.GreaterThan(c.balance) {
		return Transaction{}, fmt.Errorf("%w: cannot withdraw %s from %q (balance %s)",
			ErrInsufficientFunds, magnitude.StringFixed(2), c.name, c.balance.StringFixed(2))
	}
	return c.append(magnitude.Neg(), description, false), nil
}

// TransferMoney debits this category and credits target with the same amount.
// The debit is attempted first; if it fails neither category is mutated. The
// credit cannot fail, so a successful debit always completes the pair.
func (c *Category) TransferMoney(amount decimal.Decimal, target *Category) error {
	if target == c {
		return fmt.Errorf("%w: %q", ErrSelfTransfer, c.name)
	}

	magnitude := amount.Abs().Round(2)
	if magnitude.GreaterThan(c.balance) {
		return fmt.Errorf("%w: cannot send %s from %q (balance %s)",
			ErrInsufficientFunds, magnitude.StringFixed(2), c.name, c.balance.StringFixed(2))
	}

	c.append(magnitude.Neg(), "Send money to "+target.name, true)
	target.append(magnitude, "Send money from "+c.name, true)
	return nil
}

// Balance returns the sum of all stored transaction amounts.
func (c *Category) Balance() decimal.Decimal {
	return c.balance
}

// ExpenseTotal returns the sum of magnitudes of debit entries, excluding
// transfers, rounded to two decimal places.
func (c *Category) ExpenseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range c.wallet {
		if tx.Transfer {
			continue
		}
		if tx.Amount.IsNegative() {
			total = total.Add(tx.Amount.Neg())
		}
	}
	return total.Round(2)
}

// Transactions returns the transaction history in insertion order. The
// returned slice is a copy; appending to it does not affect the category.
func (c *Category) Transactions() []Transaction {
	out := make([]Transaction, len(c.wallet))
	copy(out, c.wallet)
	return out
}

// Statement renders the category as a fixed-width text statement: the name
// centered in a 30-character row of asterisks, one line per transaction with
// the description truncated to 23 characters, and a closing total line.
func (c *Category) Statement() string {
	var b strings.Builder
	b.WriteString(centerIn(c.name, 30, '*'))
	b.WriteByte('\n')

	for _, tx := range c.wallet {
		description := tx.Description
		if len(description) > statementDescriptionWidth {
			description = description[:statementDescriptionWidth]
		}
		fmt.Fprintf(&b, "%-*s%7s\n", statementDescriptionWidth, description, tx.Amount.StringFixed(2))
	}

	b.WriteString("Total: " + c.balance.StringFixed(2))
	return b.String()
}

func (c *Category) append(amount decimal.Decimal, description string, transfer bool) Transaction {
	tx := Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      amount,
		Description: description,
		Transfer:    transfer,
		CreatedAt:   time.Now(),
	}
	c.wallet = append(c.wallet, tx)
	c.balance = c.balance.Add(amount)
	return tx
}

func centerIn(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), right)
}
