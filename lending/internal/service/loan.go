package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"go.uber.org/zap"
)

type UserFinder interface {
	FindByID(id string) (model.User, error)
}

// ItemCatalog is the availability view of one media collection.
type ItemCatalog interface {
	Available(id string) (bool, error)
	SetAvailable(ctx context.Context, id string, available bool) error
}

type UnpaidChecker interface {
	HasUnpaid(userID string) bool
}

var (
	_ ItemCatalog   = (*repository.Books)(nil)
	_ ItemCatalog   = (*repository.CDs)(nil)
	_ UserFinder    = (*repository.Users)(nil)
	_ UnpaidChecker = (Ledgers)(nil)
)

// LoanEngine runs borrow and return for a single media type.
type LoanEngine struct {
	media    model.MediaType
	users    UserFinder
	items    ItemCatalog
	loans    *repository.Loans
	ledger   *FineLedger
	unpaid   UnpaidChecker
	strategy FineStrategy

	// mu makes the eligibility checks and the writes that follow one step.
	mu  sync.Mutex
	log *zap.Logger
	now func() time.Time
}

type LoanEngineParams struct {
	Media  model.MediaType
	Users  UserFinder
	Items  ItemCatalog
	Loans  *repository.Loans
	Ledger *FineLedger
	// Unpaid gates borrowing; it defaults to Ledger alone.
	Unpaid UnpaidChecker
}

func NewLoanEngine(p LoanEngineParams, log *zap.Logger, opts ...Option) *LoanEngine {
	o := newOptions(opts)
	unpaid := p.Unpaid
	if unpaid == nil {
		unpaid = p.Ledger
	}
	return &LoanEngine{
		media:    p.Media,
		users:    p.Users,
		items:    p.Items,
		loans:    p.Loans,
		ledger:   p.Ledger,
		unpaid:   unpaid,
		strategy: StrategyFor(p.Media),
		log:      log.Named("loans").With(zap.Stringer("media", p.Media)),
		now:      o.now,
	}
}

func (e *LoanEngine) Media() model.MediaType { return e.media }

// Borrow lends the item to the user. Preconditions are checked in a fixed
// order and the first failure wins; nothing is written unless all pass.
func (e *LoanEngine) Borrow(ctx context.Context, userID, itemID string) (model.Loan, error) {
	const op = "loan.Borrow"
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(itemID) == "" {
		return model.Loan{}, errs.Validation(op, errs.ErrBlankID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.users.FindByID(userID)
	if err != nil {
		return model.Loan{}, err
	}
	if !user.Active {
		return model.Loan{}, errs.Policy(op, errs.ErrUserInactive)
	}
	available, err := e.items.Available(itemID)
	if err != nil {
		return model.Loan{}, err
	}
	if !available {
		return model.Loan{}, errs.Policy(op, errs.ErrItemUnavailable)
	}
	if e.unpaid.HasUnpaid(userID) {
		return model.Loan{}, errs.Policy(op, errs.ErrUnpaidFines)
	}
	now := e.now()
	if len(e.loans.FindOverdueByUserID(userID, now)) > 0 {
		return model.Loan{}, errs.Policy(op, errs.ErrOverdueLoans)
	}

	loan, err := e.loans.Save(ctx, model.NewLoan(userID, itemID, e.media, now))
	if err != nil {
		return model.Loan{}, err
	}
	if err := e.items.SetAvailable(ctx, itemID, false); err != nil {
		if derr := e.loans.Delete(ctx, loan.ID); derr != nil {
			e.log.Error("compensate borrow", zap.String("loan", loan.ID), zap.Error(derr))
		}
		return model.Loan{}, err
	}

	e.log.Info("borrowed",
		zap.String("loan", loan.ID),
		zap.String("user", userID),
		zap.String("item", itemID),
		zap.Time("due", loan.DueDate),
	)
	return loan, nil
}

// Return closes the loan, releases the item and issues a fine when the loan
// was overdue. The returned loan reflects the persisted state even when the
// fine could not be issued.
func (e *LoanEngine) Return(ctx context.Context, loanID string) (model.Loan, error) {
	const op = "loan.Return"
	if strings.TrimSpace(loanID) == "" {
		return model.Loan{}, errs.Validation(op, errs.ErrBlankID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	loan, err := e.loans.FindByID(loanID)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Returned {
		return model.Loan{}, errs.Policy(op, errs.ErrAlreadyReturned)
	}
	if _, err := e.items.Available(loan.ItemID); err != nil {
		return model.Loan{}, err
	}

	now := e.now()
	days := loan.OverdueDays(now)
	amount := e.strategy.CalculateFine(days)

	returned := loan
	returned.MarkReturned(now, amount)
	returned, err = e.loans.Update(ctx, returned)
	if err != nil {
		return model.Loan{}, err
	}
	if err := e.items.SetAvailable(ctx, loan.ItemID, true); err != nil {
		if _, rerr := e.loans.Update(ctx, loan); rerr != nil {
			e.log.Error("compensate return", zap.String("loan", loan.ID), zap.Error(rerr))
		}
		return model.Loan{}, err
	}

	e.log.Info("returned",
		zap.String("loan", loan.ID),
		zap.Int("overdueDays", days),
		zap.String("fine", amount.StringFixed(2)),
	)
	if !amount.IsPositive() {
		return returned, nil
	}
	if _, err := e.ledger.Create(ctx, loan.UserID, loan.ID, amount); err != nil {
		e.log.Error("issue fine", zap.String("loan", loan.ID), zap.Error(err))
		return returned, errs.Persistence(op, fmt.Errorf("%w: %w", errs.ErrFineNotIssued, err))
	}
	return returned, nil
}

// HasOverdue reports whether the user holds an unreturned loan past its due date.
func (e *LoanEngine) HasOverdue(userID string) bool {
	return len(e.loans.FindOverdueByUserID(userID, e.now())) > 0
}

func (e *LoanEngine) UserLoans(userID string) []model.Loan {
	return e.loans.FindByUserID(userID)
}

func (e *LoanEngine) UserOverdueLoans(userID string) []model.Loan {
	return e.loans.FindOverdueByUserID(userID, e.now())
}

func (e *LoanEngine) OverdueLoans() []model.Loan {
	return e.loans.FindOverdue(e.now())
}

func (e *LoanEngine) ActiveLoans() []model.Loan {
	return e.loans.FindActive()
}

func (e *LoanEngine) Loan(id string) (model.Loan, error) {
	return e.loans.FindByID(id)
}

// WithItemLock runs fn while no borrow or return of this media type can
// interleave with it.
func (e *LoanEngine) WithItemLock(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn()
}

// OnLoan reports whether the item is referenced by an unreturned loan.
func (e *LoanEngine) OnLoan(itemID string) bool {
	return len(e.loans.FindActiveByItemID(itemID)) > 0
}
