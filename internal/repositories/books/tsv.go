package books

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/money"
	"github.com/dmitrijs2005/bookstore/internal/tsv"
)

// Record layout: isbn, name, author, keywords, price, stock.
const recordArity = 6

// TSVRepository keeps the whole catalog in memory, mirrored to a
// tab-separated file rewritten in full after each mutation.
type TSVRepository struct {
	path   string
	byISBN map[string]models.Book
}

// NewTSVRepository loads the catalog file at path.
func NewTSVRepository(path string) (*TSVRepository, error) {
	r := &TSVRepository{path: path, byISBN: make(map[string]models.Book)}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TSVRepository) load() error {
	lines, err := tsv.ReadLines(r.path)
	if err != nil {
		return fmt.Errorf("load books: %w", err)
	}
	for _, line := range lines {
		f := tsv.Split(line)
		if len(f) != recordArity {
			continue
		}
		price, err := money.Parse(f[4])
		if err != nil {
			continue
		}
		stock, err := strconv.ParseInt(f[5], 10, 64)
		if err != nil {
			continue
		}
		r.byISBN[f[0]] = models.Book{
			ISBN: f[0], Name: f[1], Author: f[2], Keywords: f[3],
			Price: price, Stock: stock,
		}
	}
	return nil
}

func (r *TSVRepository) flush() error {
	all := r.All()
	lines := make([]string, 0, len(all))
	for _, b := range all {
		lines = append(lines, tsv.Join(
			b.ISBN, b.Name, b.Author, b.Keywords,
			b.Price.String(), strconv.FormatInt(b.Stock, 10),
		))
	}
	if err := tsv.WriteFile(r.path, lines); err != nil {
		return fmt.Errorf("flush books: %w", err)
	}
	return nil
}

func (r *TSVRepository) Get(isbn string) (*models.Book, bool) {
	b, ok := r.byISBN[isbn]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (r *TSVRepository) Exists(isbn string) bool {
	_, ok := r.byISBN[isbn]
	return ok
}

func (r *TSVRepository) GetOrCreate(isbn string) (models.Book, error) {
	if b, ok := r.byISBN[isbn]; ok {
		return b, nil
	}
	b := models.Book{ISBN: isbn}
	r.byISBN[isbn] = b
	if err := r.flush(); err != nil {
		return models.Book{}, err
	}
	return b, nil
}

func (r *TSVRepository) Update(b models.Book) error {
	if _, ok := r.byISBN[b.ISBN]; !ok {
		return common.ErrNotFound
	}
	r.byISBN[b.ISBN] = b
	return r.flush()
}

func (r *TSVRepository) Rename(oldISBN string, b models.Book) error {
	if _, ok := r.byISBN[oldISBN]; !ok {
		return common.ErrNotFound
	}
	if _, ok := r.byISBN[b.ISBN]; ok {
		return common.ErrDuplicate
	}
	delete(r.byISBN, oldISBN)
	r.byISBN[b.ISBN] = b
	return r.flush()
}

func (r *TSVRepository) All() []models.Book {
	all := make([]models.Book, 0, len(r.byISBN))
	for _, b := range r.byISBN {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ISBN < all[j].ISBN })
	return all
}
