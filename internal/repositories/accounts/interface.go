package accounts

import "github.com/dmitrijs2005/bookstore/internal/models"

// Repository describes the account store. Every mutation is persisted in
// full before it returns.
type Repository interface {
	// Get returns the account with the given id.
	Get(id string) (*models.Account, bool)

	// Add inserts a new account. Returns common.ErrDuplicate if the id is
	// already taken.
	Add(a models.Account) error

	// Remove deletes an account. Returns common.ErrNotFound if absent.
	Remove(id string) error

	// UpdatePassword replaces the stored password of an existing account.
	UpdatePassword(id, password string) error
}
