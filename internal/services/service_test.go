package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/repositories/accounts"
	"github.com/dmitrijs2005/bookstore/internal/repositories/books"
	"github.com/dmitrijs2005/bookstore/internal/repositories/ledger"
	"github.com/dmitrijs2005/bookstore/internal/session"
	"github.com/dmitrijs2005/bookstore/internal/validate"
)

// env bundles a full service stack over temp-file repositories.
type env struct {
	accounts *accounts.TSVRepository
	books    *books.TSVRepository
	ledger   *ledger.TSVRepository
	sess     *session.Stack

	account *AccountService
	book    *BookService
	finance *FinanceService
}

func setup(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()

	ar, err := accounts.NewTSVRepository(filepath.Join(dir, "accounts.tsv"))
	require.NoError(t, err)
	br, err := books.NewTSVRepository(filepath.Join(dir, "books.tsv"))
	require.NoError(t, err)
	lr, err := ledger.NewTSVRepository(filepath.Join(dir, "finance.tsv"))
	require.NoError(t, err)

	sess := session.NewStack()
	vd := validate.New()
	log := logging.New(io.Discard, "error")

	return &env{
		accounts: ar,
		books:    br,
		ledger:   lr,
		sess:     sess,
		account:  NewAccountService(ar, sess, vd, log),
		book:     NewBookService(br, lr, sess, vd, log),
		finance:  NewFinanceService(lr, log),
	}
}

// loginRoot pushes the bootstrap root frame.
func (e *env) loginRoot(t *testing.T) {
	t.Helper()
	require.NoError(t, e.account.Login(context.Background(), "root", "sjtu"))
}
