package ledger

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/money"
	"github.com/dmitrijs2005/bookstore/internal/tsv"
)

// TSVRepository keeps the ledger in memory, mirrored to a text file with one
// signed fixed-point amount per line, in append order.
type TSVRepository struct {
	path    string
	entries []money.Amount
}

// NewTSVRepository loads the ledger file at path.
func NewTSVRepository(path string) (*TSVRepository, error) {
	r := &TSVRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TSVRepository) load() error {
	lines, err := tsv.ReadLines(r.path)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	for _, line := range lines {
		s, neg := strings.CutPrefix(line, "-")
		a, err := money.Parse(s)
		if err != nil {
			continue
		}
		if neg {
			a = a.Neg()
		}
		r.entries = append(r.entries, a)
	}
	return nil
}

func (r *TSVRepository) flush() error {
	lines := make([]string, 0, len(r.entries))
	for _, a := range r.entries {
		lines = append(lines, a.String())
	}
	if err := tsv.WriteFile(r.path, lines); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return nil
}

func (r *TSVRepository) Append(a money.Amount) error {
	r.entries = append(r.entries, a)
	return r.flush()
}

func (r *TSVRepository) Size() int { return len(r.entries) }

func (r *TSVRepository) Summarize(lastN int) (income, expenditure money.Amount) {
	start := 0
	if lastN >= 0 && lastN <= len(r.entries) {
		start = len(r.entries) - lastN
	}
	for _, a := range r.entries[start:] {
		if a.IsNegative() {
			expenditure += a.Abs()
		} else {
			income += a
		}
	}
	return income, expenditure
}
