package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/money"
	"github.com/dmitrijs2005/bookstore/internal/repositories/books"
	"github.com/dmitrijs2005/bookstore/internal/repositories/ledger"
	"github.com/dmitrijs2005/bookstore/internal/session"
	"github.com/dmitrijs2005/bookstore/internal/validate"
)

// FilterKind selects which book field a catalog query matches on.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterISBN
	FilterName
	FilterAuthor
	FilterKeyword
)

// Filter is an optional single-field catalog query.
type Filter struct {
	Kind  FilterKind
	Value string
}

// ModifyField names one assignable book field.
type ModifyField int

const (
	FieldISBN ModifyField = iota
	FieldName
	FieldAuthor
	FieldKeywords
	FieldPrice
)

// Change is one staged field assignment of a modify command.
type Change struct {
	Field ModifyField
	Value string
}

// BookService implements catalog queries and mutations plus the sale and
// restock flows that touch the ledger.
type BookService struct {
	books  books.Repository
	ledger ledger.Repository
	sess   *session.Stack
	vd     *validate.Validator
	log    logging.Logger
}

// NewBookService constructs a BookService.
func NewBookService(b books.Repository, l ledger.Repository, sess *session.Stack, vd *validate.Validator, log logging.Logger) *BookService {
	return &BookService{books: b, ledger: l, sess: sess, vd: vd, log: log}
}

// Search returns the books matching the filter, ordered by ISBN ascending.
// A keyword filter must be a single token.
func (s *BookService) Search(ctx context.Context, f Filter) ([]models.Book, error) {
	switch f.Kind {
	case FilterNone:
	case FilterISBN:
		if !s.vd.ISBN(f.Value) {
			return nil, common.ErrValidation
		}
	case FilterName, FilterAuthor:
		if !s.vd.BookField(f.Value) {
			return nil, common.ErrValidation
		}
	case FilterKeyword:
		if !s.vd.SingleKeyword(f.Value) {
			return nil, common.ErrValidation
		}
	default:
		return nil, common.ErrValidation
	}

	var matched []models.Book
	for _, b := range s.books.All() {
		if matches(&b, f) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func matches(b *models.Book, f Filter) bool {
	switch f.Kind {
	case FilterISBN:
		return b.ISBN == f.Value
	case FilterName:
		return b.Name == f.Value
	case FilterAuthor:
		return b.Author == f.Value
	case FilterKeyword:
		return b.HasKeyword(f.Value)
	default:
		return true
	}
}

// Select makes the given ISBN the top frame's selection, creating and
// persisting an empty record first if the ISBN is new.
func (s *BookService) Select(ctx context.Context, isbn string) error {
	if !s.vd.ISBN(isbn) {
		return common.ErrValidation
	}
	if _, err := s.books.GetOrCreate(isbn); err != nil {
		return fmt.Errorf("select %s: %w", isbn, err)
	}
	s.sess.SetSelection(isbn)
	s.log.Debug(ctx, "book selected", "isbn", isbn)
	return nil
}

// Buy sells qty copies of the given book: stock is decremented, the cost
// (qty × unit price) is appended to the ledger as income, and the cost is
// returned for printing.
func (s *BookService) Buy(ctx context.Context, isbn, qtyStr string) (money.Amount, error) {
	qty, ok := validate.ParseQuantity(qtyStr)
	if !s.vd.ISBN(isbn) || !ok || qty <= 0 {
		return 0, common.ErrValidation
	}
	b, found := s.books.Get(isbn)
	if !found {
		return 0, common.ErrNotFound
	}
	if b.Stock < qty {
		return 0, common.ErrInsufficientStock
	}
	cost, err := b.Price.MulInt(qty)
	if err != nil {
		return 0, common.ErrValidation
	}
	b.Stock -= qty
	if err := s.books.Update(*b); err != nil {
		return 0, fmt.Errorf("buy %s: %w", isbn, err)
	}
	if err := s.ledger.Append(cost); err != nil {
		return 0, fmt.Errorf("buy %s: record income: %w", isbn, err)
	}
	s.log.Info(ctx, "sale", "isbn", isbn, "qty", qty, "cost", cost.String())
	return cost, nil
}

// Import restocks the selected book by qty copies and records the supplied
// total cost as ledger expenditure. Both values must be strictly positive.
func (s *BookService) Import(ctx context.Context, qtyStr, totalStr string) error {
	isbn := s.sess.Selection()
	if isbn == "" {
		return common.ErrNoSelection
	}
	qty, ok := validate.ParseQuantity(qtyStr)
	if !ok || qty <= 0 {
		return common.ErrValidation
	}
	total, err := money.Parse(totalStr)
	if err != nil || !total.IsPositive() {
		return common.ErrValidation
	}
	b, found := s.books.Get(isbn)
	if !found {
		return common.ErrNotFound
	}
	b.Stock += qty
	if err := s.books.Update(*b); err != nil {
		return fmt.Errorf("import %s: %w", isbn, err)
	}
	if err := s.ledger.Append(total.Neg()); err != nil {
		return fmt.Errorf("import %s: record expenditure: %w", isbn, err)
	}
	s.log.Info(ctx, "restock", "isbn", isbn, "qty", qty, "total", total.String())
	return nil
}

// Modify stages the given field assignments against the selected book,
// validates them together, and applies them atomically. An ISBN change
// rekeys the record and retargets the current selection; nothing is
// persisted if any single change is invalid.
func (s *BookService) Modify(ctx context.Context, changes []Change) error {
	if len(changes) == 0 {
		return common.ErrValidation
	}
	isbn := s.sess.Selection()
	if isbn == "" {
		return common.ErrNoSelection
	}
	b, found := s.books.Get(isbn)
	if !found {
		return common.ErrNotFound
	}

	staged := *b
	seen := make(map[ModifyField]struct{}, len(changes))
	for _, c := range changes {
		if _, dup := seen[c.Field]; dup {
			return common.ErrValidation
		}
		seen[c.Field] = struct{}{}

		switch c.Field {
		case FieldISBN:
			if !s.vd.ISBN(c.Value) || c.Value == b.ISBN {
				return common.ErrValidation
			}
			if s.books.Exists(c.Value) {
				return common.ErrDuplicate
			}
			staged.ISBN = c.Value
		case FieldName:
			if !s.vd.BookField(c.Value) {
				return common.ErrValidation
			}
			staged.Name = c.Value
		case FieldAuthor:
			if !s.vd.BookField(c.Value) {
				return common.ErrValidation
			}
			staged.Author = c.Value
		case FieldKeywords:
			if !s.vd.KeywordSet(c.Value) {
				return common.ErrValidation
			}
			staged.Keywords = c.Value
		case FieldPrice:
			price, err := money.Parse(c.Value)
			if err != nil {
				return common.ErrValidation
			}
			staged.Price = price
		default:
			return common.ErrValidation
		}
	}

	if staged.ISBN != b.ISBN {
		if err := s.books.Rename(b.ISBN, staged); err != nil {
			return fmt.Errorf("modify %s: %w", b.ISBN, err)
		}
		s.sess.RetargetSelection(b.ISBN, staged.ISBN)
	} else {
		if err := s.books.Update(staged); err != nil {
			return fmt.Errorf("modify %s: %w", b.ISBN, err)
		}
	}
	s.log.Info(ctx, "book modified", "isbn", staged.ISBN)
	return nil
}
