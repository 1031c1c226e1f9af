package category

// Category is the API response model for a category.
type Category struct {
	Name         string `json:"name" doc:"Category name"`
	Balance      string `json:"balance" doc:"Decimal balance"`
	ExpenseTotal string `json:"expenseTotal" doc:"Decimal total of non-transfer expenses"`
}

// Transaction is the API response model for a ledger entry.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Amount      string `json:"amount" doc:"Decimal amount, negative for debits"`
	Description string `json:"description" doc:"Free-form description, untruncated"`
	Transfer    bool   `json:"transfer" doc:"True when the entry is one side of an inter-category transfer"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}
