package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/money"
)

func TestSelectCreatesBook(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)

	require.NoError(t, e.book.Select(ctx, "001"))
	assert.Equal(t, "001", e.sess.Selection())
	assert.True(t, e.books.Exists("001"))

	assert.ErrorIs(t, e.book.Select(ctx, ""), common.ErrValidation)
}

func TestModifyFields(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)

	// No selection yet.
	assert.ErrorIs(t, e.book.Modify(ctx, []Change{{FieldName, "X"}}), common.ErrNoSelection)

	require.NoError(t, e.book.Select(ctx, "001"))
	require.NoError(t, e.book.Modify(ctx, []Change{
		{FieldName, "Book One"},
		{FieldAuthor, "A. Uthor"},
		{FieldKeywords, "scifi|space"},
		{FieldPrice, "9.99"},
	}))

	b, ok := e.books.Get("001")
	require.True(t, ok)
	assert.Equal(t, "Book One", b.Name)
	assert.Equal(t, "A. Uthor", b.Author)
	assert.Equal(t, "scifi|space", b.Keywords)
	assert.Equal(t, money.Amount(999), b.Price)
}

func TestModifyRejectsWithoutPartialEffect(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)
	require.NoError(t, e.book.Select(ctx, "001"))

	// One bad field fails the whole command.
	err := e.book.Modify(ctx, []Change{
		{FieldName, "Good Name"},
		{FieldKeywords, "dup|dup"},
	})
	assert.ErrorIs(t, err, common.ErrValidation)
	b, _ := e.books.Get("001")
	assert.Equal(t, "", b.Name)

	// Duplicate flag keys fail.
	err = e.book.Modify(ctx, []Change{
		{FieldName, "A"},
		{FieldName, "B"},
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	// Empty change set fails.
	assert.ErrorIs(t, e.book.Modify(ctx, nil), common.ErrValidation)
}

func TestModifyRename(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)

	require.NoError(t, e.book.Select(ctx, "002"))
	require.NoError(t, e.book.Select(ctx, "001"))
	require.NoError(t, e.book.Modify(ctx, []Change{{FieldName, "Book One"}}))

	// Renaming onto itself or onto a taken key fails.
	assert.ErrorIs(t, e.book.Modify(ctx, []Change{{FieldISBN, "001"}}), common.ErrValidation)
	assert.ErrorIs(t, e.book.Modify(ctx, []Change{{FieldISBN, "002"}}), common.ErrDuplicate)

	require.NoError(t, e.book.Modify(ctx, []Change{{FieldISBN, "100"}, {FieldAuthor, "New A."}}))
	assert.False(t, e.books.Exists("001"))
	b, ok := e.books.Get("100")
	require.True(t, ok)
	assert.Equal(t, "Book One", b.Name)
	assert.Equal(t, "New A.", b.Author)

	// The selection follows the rename.
	assert.Equal(t, "100", e.sess.Selection())
	require.NoError(t, e.book.Modify(ctx, []Change{{FieldPrice, "5"}}))
}

func TestBuy(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)

	require.NoError(t, e.book.Select(ctx, "001"))
	require.NoError(t, e.book.Modify(ctx, []Change{{FieldPrice, "9.99"}}))
	require.NoError(t, e.book.Import(ctx, "10", "50.00"))

	cost, err := e.book.Buy(ctx, "001", "3")
	require.NoError(t, err)
	assert.Equal(t, "29.97", cost.String())

	b, _ := e.books.Get("001")
	assert.Equal(t, int64(7), b.Stock)

	// Errors: unknown ISBN, over-buy, zero qty.
	_, err = e.book.Buy(ctx, "ghost", "1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = e.book.Buy(ctx, "001", "8")
	assert.ErrorIs(t, err, common.ErrInsufficientStock)
	_, err = e.book.Buy(ctx, "001", "0")
	assert.ErrorIs(t, err, common.ErrValidation)

	b, _ = e.books.Get("001")
	assert.Equal(t, int64(7), b.Stock)
}

func TestImport(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)

	assert.ErrorIs(t, e.book.Import(ctx, "10", "50.00"), common.ErrNoSelection)

	require.NoError(t, e.book.Select(ctx, "001"))
	assert.ErrorIs(t, e.book.Import(ctx, "0", "50.00"), common.ErrValidation)
	assert.ErrorIs(t, e.book.Import(ctx, "10", "0"), common.ErrValidation)

	require.NoError(t, e.book.Import(ctx, "10", "50.00"))
	b, _ := e.books.Get("001")
	assert.Equal(t, int64(10), b.Stock)

	_, expenditure := e.ledger.Summarize(-1)
	assert.Equal(t, "50.00", expenditure.String())
}

func TestSearch(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)

	require.NoError(t, e.book.Select(ctx, "002"))
	require.NoError(t, e.book.Modify(ctx, []Change{{FieldName, "Second"}, {FieldAuthor, "B"}, {FieldKeywords, "space"}}))
	require.NoError(t, e.book.Select(ctx, "001"))
	require.NoError(t, e.book.Modify(ctx, []Change{{FieldName, "First"}, {FieldAuthor, "A"}, {FieldKeywords, "scifi|space"}}))

	all, err := e.book.Search(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "001", all[0].ISBN)
	assert.Equal(t, "002", all[1].ISBN)

	byKw, err := e.book.Search(ctx, Filter{Kind: FilterKeyword, Value: "space"})
	require.NoError(t, err)
	assert.Len(t, byKw, 2)

	byName, err := e.book.Search(ctx, Filter{Kind: FilterName, Value: "Second"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "002", byName[0].ISBN)

	none, err := e.book.Search(ctx, Filter{Kind: FilterISBN, Value: "404"})
	require.NoError(t, err)
	assert.Empty(t, none)

	// keyword filter cannot carry multiple tokens.
	_, err = e.book.Search(ctx, Filter{Kind: FilterKeyword, Value: "a|b"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestFinanceSummary(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.loginRoot(t)

	require.NoError(t, e.book.Select(ctx, "001"))
	require.NoError(t, e.book.Modify(ctx, []Change{{FieldPrice, "9.99"}}))
	require.NoError(t, e.book.Import(ctx, "10", "50.00"))
	_, err := e.book.Buy(ctx, "001", "3")
	require.NoError(t, err)

	income, expenditure, err := e.finance.Summary(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, "29.97", income.String())
	assert.Equal(t, "50.00", expenditure.String())

	// Only the last entry.
	income, expenditure, err = e.finance.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "29.97", income.String())
	assert.Equal(t, "0.00", expenditure.String())

	// Window larger than the ledger fails.
	_, _, err = e.finance.Summary(ctx, 3)
	assert.ErrorIs(t, err, common.ErrValidation)
}
