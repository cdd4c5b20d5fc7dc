package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/dmitrijs2005/bookstore/internal/config"
	"github.com/dmitrijs2005/bookstore/internal/filex"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/repositories/accounts"
	"github.com/dmitrijs2005/bookstore/internal/repositories/books"
	"github.com/dmitrijs2005/bookstore/internal/repositories/ledger"
	"github.com/dmitrijs2005/bookstore/internal/services"
	"github.com/dmitrijs2005/bookstore/internal/session"
	"github.com/dmitrijs2005/bookstore/internal/validate"
)

// Record file names inside the data directory.
const (
	accountsFile = "accounts.tsv"
	booksFile    = "books.tsv"
	financeFile  = "finance.tsv"
)

// isTerminalFn is a test seam for TTY detection. When stdin is a pipe the
// interpreter stays quiet so its output is exactly the command replies.
var isTerminalFn = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// App wires the persistent stores, the session stack and the services
// behind the command interpreter.
type App struct {
	config   *config.Config
	log      logging.Logger
	sess     *session.Stack
	accounts *services.AccountService
	books    *services.BookService
	finance  *services.FinanceService
}

// NewApp prepares the data directory, opens the record stores and builds
// the service layer.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("preparing data dir: %w", err)
	}

	accountRepo, err := accounts.NewTSVRepository(filepath.Join(dir, accountsFile))
	if err != nil {
		return nil, fmt.Errorf("opening account store: %w", err)
	}
	bookRepo, err := books.NewTSVRepository(filepath.Join(dir, booksFile))
	if err != nil {
		return nil, fmt.Errorf("opening book store: %w", err)
	}
	ledgerRepo, err := ledger.NewTSVRepository(filepath.Join(dir, financeFile))
	if err != nil {
		return nil, fmt.Errorf("opening ledger store: %w", err)
	}

	vd := validate.New()
	sess := session.NewStack()

	return &App{
		config:   cfg,
		log:      log,
		sess:     sess,
		accounts: services.NewAccountService(accountRepo, sess, vd, log),
		books:    services.NewBookService(bookRepo, ledgerRepo, sess, vd, log),
		finance:  services.NewFinanceService(ledgerRepo, log),
	}, nil
}

// Run drives the interpreter over stdin until EOF or quit. On a terminal a
// short banner and a prompt are shown; piped input gets neither.
func (a *App) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var promptFn func()
	if isTerminalFn() {
		fmt.Println("Bookstore command interpreter (type 'quit' to leave)")
		promptFn = func() { fmt.Print("bookstore> ") }
	}
	a.log.Info(ctx, "interpreter started", "data_dir", a.config.DataDir)
	return runREPL(ctx, a, scanner, os.Stdout, promptFn)
}
