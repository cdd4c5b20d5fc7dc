package services

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/money"
	"github.com/dmitrijs2005/bookstore/internal/repositories/ledger"
)

// FinanceService aggregates the ledger for reporting.
type FinanceService struct {
	ledger ledger.Repository
	log    logging.Logger
}

// NewFinanceService constructs a FinanceService.
func NewFinanceService(l ledger.Repository, log logging.Logger) *FinanceService {
	return &FinanceService{ledger: l, log: log}
}

// Summary sums the last lastN ledger entries into total income and total
// expenditure. lastN < 0 covers the whole ledger; lastN greater than the
// ledger size is rejected.
func (s *FinanceService) Summary(ctx context.Context, lastN int) (income, expenditure money.Amount, err error) {
	if lastN > s.ledger.Size() {
		return 0, 0, common.ErrValidation
	}
	income, expenditure = s.ledger.Summarize(lastN)
	s.log.Debug(ctx, "finance summary", "lastN", lastN, "income", income.String(), "expenditure", expenditure.String())
	return income, expenditure, nil
}
