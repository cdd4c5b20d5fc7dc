package ledger

import "github.com/dmitrijs2005/bookstore/internal/money"

// Repository is the append-only financial ledger: sales are recorded as
// positive amounts, restock purchases as negative ones. Entries are never
// mutated or reordered.
type Repository interface {
	// Append adds one signed entry and persists the ledger.
	Append(a money.Amount) error

	// Size returns the number of entries.
	Size() int

	// Summarize sums the last lastN entries in append order into total
	// income and total expenditure (both non-negative). lastN < 0 or
	// lastN > Size() sums everything.
	Summarize(lastN int) (income, expenditure money.Amount)
}
