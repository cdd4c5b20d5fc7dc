package books

import "github.com/dmitrijs2005/bookstore/internal/models"

// Repository describes the catalog store. Every mutation is persisted in
// full before it returns.
type Repository interface {
	// Get returns the book with the given ISBN.
	Get(isbn string) (*models.Book, bool)

	// Exists reports whether the ISBN is present.
	Exists(isbn string) bool

	// GetOrCreate returns the book with the given ISBN, inserting and
	// persisting an empty record first if it is new.
	GetOrCreate(isbn string) (models.Book, error)

	// Update replaces an existing record under its current key.
	Update(b models.Book) error

	// Rename removes the record stored under oldISBN and inserts b under
	// its new key in one step, followed by a single persistence call.
	// Returns common.ErrDuplicate if the new key is already taken.
	Rename(oldISBN string, b models.Book) error

	// All returns every book ordered by ISBN ascending.
	All() []models.Book
}
