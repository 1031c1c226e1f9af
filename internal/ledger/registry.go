package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Registry maps category names to categories and enforces case-insensitive
// name uniqueness. All access goes through a single coarse lock so a transfer,
// which touches two categories, is serialized against every other mutation.
type Registry struct {
	mu         sync.RWMutex
	categories map[string]*Category
	order      []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		categories: make(map[string]*Category),
	}
}

// Create adds a new empty category. The stored name has the first letter of
// each word capitalized, a display convention only; uniqueness is checked
// case-insensitively against every existing name. Returns the stored name.
func (r *Registry) Create(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for existing := range r.categories {
		if strings.EqualFold(existing, name) {
			return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	stored := titleCaser.String(name)
	r.categories[stored] = NewCategory(stored)
	r.order = append(r.order, stored)
	return stored, nil
}

// Names returns all stored category names in creation order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// AddRevenue records a credit against the named category.
func (r *Registry) AddRevenue(name string, amount decimal.Decimal, description string) (Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, err := r.lookup(name)
	if err != nil {
		return Transaction{}, err
	}
	return category.AddRevenue(amount, description)
}

// AddExpense records a debit against the named category.
func (r *Registry) AddExpense(name string, amount decimal.Decimal, description string) (Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, err := r.lookup(name)
	if err != nil {
		return Transaction{}, err
	}
	return category.AddExpense(amount, description)
}

// Transfer moves amount from one named category to another. Both categories
// are resolved before any mutation, so an unknown name on either side leaves
// the ledger untouched.
func (r *Registry) Transfer(from, to string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	source, err := r.lookup(from)
	if err != nil {
		return err
	}
	target, err := r.lookup(to)
	if err != nil {
		return err
	}
	return source.TransferMoney(amount, target)
}

// Balance returns the named category's current balance.
func (r *Registry) Balance(name string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, err := r.lookup(name)
	if err != nil {
		return decimal.Zero, err
	}
	return category.Balance(), nil
}

// ExpenseTotal returns the named category's non-transfer spending total.
func (r *Registry) ExpenseTotal(name string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, err := r.lookup(name)
	if err != nil {
		return decimal.Zero, err
	}
	return category.ExpenseTotal(), nil
}

// Transactions returns the named category's history in insertion order.
func (r *Registry) Transactions(name string) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return category.Transactions(), nil
}

// Statement renders the named category as a fixed-width text statement.
func (r *Registry) Statement(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return category.Statement(), nil
}

// lookup resolves a stored key case-sensitively. Callers hold r.mu.
func (r *Registry) lookup(name string) (*Category, error) {
	category, ok := r.categories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return category, nil
}
