package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/services"
	"github.com/dmitrijs2005/bookstore/internal/tsv"
	"github.com/dmitrijs2005/bookstore/internal/validate"
)

// invalidReply is printed whenever a command cannot be carried out, whatever
// the reason.
const invalidReply = "Invalid"

// handlerFunc runs one parsed command. args excludes the command word.
// The returned slice holds the lines to print; nil means print nothing.
type handlerFunc func(ctx context.Context, args []string) ([]string, error)

type command struct {
	minPrivilege int
	run          handlerFunc
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"register": {0, a.cmdRegister},
		"su":       {0, a.cmdLogin},
		"logout":   {models.PrivilegeCustomer, a.cmdLogout},
		"passwd":   {models.PrivilegeCustomer, a.cmdPasswd},
		"useradd":  {models.PrivilegeClerk, a.cmdUserAdd},
		"delete":   {models.PrivilegeOwner, a.cmdDelete},
		"show":     {models.PrivilegeCustomer, a.cmdShow},
		"buy":      {models.PrivilegeCustomer, a.cmdBuy},
		"select":   {models.PrivilegeClerk, a.cmdSelect},
		"modify":   {models.PrivilegeClerk, a.cmdModify},
		"import":   {models.PrivilegeClerk, a.cmdImport},
		"log":      {models.PrivilegeOwner, a.cmdLog},
		"report":   {models.PrivilegeOwner, a.cmdLog},
	}
}

// Dispatch routes one tokenized command. quit reports that the interpreter
// should stop reading input.
func (a *App) Dispatch(ctx context.Context, tokens []string) (lines []string, quit bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	name, args := tokens[0], tokens[1:]

	if name == "quit" || name == "exit" {
		return nil, true
	}

	// "show finance" shares the command word with the catalog query but is
	// gated at owner privilege, so it is routed before the generic lookup.
	if name == "show" && len(args) >= 1 && args[0] == "finance" {
		out, err := a.cmdShowFinance(ctx, args[1:])
		return a.reply(ctx, name, out, err)
	}

	cmd, ok := a.commands()[name]
	if !ok {
		return []string{invalidReply}, false
	}
	if a.sess.Privilege() < cmd.minPrivilege {
		return []string{invalidReply}, false
	}
	out, err := cmd.run(ctx, args)
	return a.reply(ctx, name, out, err)
}

// reply converts a handler result into printable lines. Any error collapses
// into the single failure reply; callers never see error details on stdout.
func (a *App) reply(ctx context.Context, name string, out []string, err error) ([]string, bool) {
	if err != nil {
		a.log.Debug(ctx, "command rejected", "cmd", name, "reason", err)
		return []string{invalidReply}, false
	}
	return out, false
}

func (a *App) cmdRegister(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 3 {
		return nil, common.ErrValidation
	}
	return nil, a.accounts.Register(ctx, args[0], args[1], args[2])
}

func (a *App) cmdLogin(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, common.ErrValidation
	}
	password := ""
	if len(args) == 2 {
		password = args[1]
	}
	return nil, a.accounts.Login(ctx, args[0], password)
}

func (a *App) cmdLogout(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 0 {
		return nil, common.ErrValidation
	}
	return nil, a.accounts.Logout(ctx)
}

func (a *App) cmdPasswd(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, common.ErrValidation
	}
	if a.sess.Privilege() == models.PrivilegeOwner {
		// The owner may omit the current password; with both supplied only
		// the last token is taken as the new password.
		return nil, a.accounts.ResetPassword(ctx, args[0], args[len(args)-1])
	}
	if len(args) != 3 {
		return nil, common.ErrValidation
	}
	return nil, a.accounts.UpdatePassword(ctx, args[0], args[1], args[2])
}

func (a *App) cmdUserAdd(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 4 {
		return nil, common.ErrValidation
	}
	return nil, a.accounts.CreateAccount(ctx, args[0], args[1], args[2], args[3])
}

func (a *App) cmdDelete(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, common.ErrValidation
	}
	return nil, a.accounts.DeleteAccount(ctx, args[0])
}

func (a *App) cmdShow(ctx context.Context, args []string) ([]string, error) {
	var f services.Filter
	switch len(args) {
	case 0:
	case 1:
		var err error
		if f, err = parseFilter(args[0]); err != nil {
			return nil, err
		}
	default:
		return nil, common.ErrValidation
	}

	found, err := a.books.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return []string{""}, nil
	}
	lines := make([]string, 0, len(found))
	for _, b := range found {
		lines = append(lines, tsv.Join(b.ISBN, b.Name, b.Author, b.Keywords, b.Price.String(), strconv.FormatInt(b.Stock, 10)))
	}
	return lines, nil
}

func (a *App) cmdShowFinance(ctx context.Context, args []string) ([]string, error) {
	if a.sess.Privilege() < models.PrivilegeOwner {
		return nil, common.ErrUnauthorized
	}
	lastN := -1
	switch len(args) {
	case 0:
	case 1:
		n, ok := validate.ParseQuantity(args[0])
		if !ok {
			return nil, common.ErrValidation
		}
		if n == 0 {
			return []string{""}, nil
		}
		lastN = int(n)
	default:
		return nil, common.ErrValidation
	}
	income, expenditure, err := a.finance.Summary(ctx, lastN)
	if err != nil {
		return nil, err
	}
	return []string{"+ " + income.String() + " - " + expenditure.String()}, nil
}

func (a *App) cmdBuy(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 2 {
		return nil, common.ErrValidation
	}
	cost, err := a.books.Buy(ctx, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return []string{cost.String()}, nil
}

func (a *App) cmdSelect(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, common.ErrValidation
	}
	return nil, a.books.Select(ctx, args[0])
}

func (a *App) cmdModify(ctx context.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, common.ErrValidation
	}
	changes := make([]services.Change, 0, len(args))
	for _, arg := range args {
		c, err := parseChange(arg)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	return nil, a.books.Modify(ctx, changes)
}

func (a *App) cmdImport(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 2 {
		return nil, common.ErrValidation
	}
	return nil, a.books.Import(ctx, args[0], args[1])
}

// cmdLog answers both log and report. Neither keeps structured history yet,
// so an authorized call prints a single empty line.
func (a *App) cmdLog(ctx context.Context, args []string) ([]string, error) {
	return []string{""}, nil
}

// parseFilter maps a -key=value token onto a catalog filter. Value
// validation stays with the book service.
func parseFilter(arg string) (services.Filter, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return services.Filter{}, common.ErrValidation
	}
	switch key {
	case "-ISBN":
		return services.Filter{Kind: services.FilterISBN, Value: value}, nil
	case "-name":
		return services.Filter{Kind: services.FilterName, Value: value}, nil
	case "-author":
		return services.Filter{Kind: services.FilterAuthor, Value: value}, nil
	case "-keyword":
		return services.Filter{Kind: services.FilterKeyword, Value: value}, nil
	default:
		return services.Filter{}, common.ErrValidation
	}
}

// parseChange maps a -key=value token onto a staged book field assignment.
func parseChange(arg string) (services.Change, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return services.Change{}, common.ErrValidation
	}
	switch key {
	case "-ISBN":
		return services.Change{Field: services.FieldISBN, Value: value}, nil
	case "-name":
		return services.Change{Field: services.FieldName, Value: value}, nil
	case "-author":
		return services.Change{Field: services.FieldAuthor, Value: value}, nil
	case "-keyword":
		return services.Change{Field: services.FieldKeywords, Value: value}, nil
	case "-price":
		return services.Change{Field: services.FieldPrice, Value: value}, nil
	default:
		return services.Change{}, common.ErrValidation
	}
}
