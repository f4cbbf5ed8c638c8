package service

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FineLedger issues and collects the fines of one media type.
type FineLedger struct {
	media model.MediaType
	fines *repository.Fines
	log   *zap.Logger
	now   func() time.Time
}

func NewFineLedger(media model.MediaType, fines *repository.Fines, log *zap.Logger, opts ...Option) *FineLedger {
	o := newOptions(opts)
	return &FineLedger{
		media: media,
		fines: fines,
		log:   log.Named("ledger").With(zap.Stringer("media", media)),
		now:   o.now,
	}
}

func (l *FineLedger) Media() model.MediaType { return l.media }

func (l *FineLedger) Create(ctx context.Context, userID, loanID string, amount decimal.Decimal) (model.Fine, error) {
	const op = "ledger.Create"
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(loanID) == "" {
		return model.Fine{}, errs.Validation(op, errs.ErrBlankID)
	}
	if !amount.IsPositive() {
		return model.Fine{}, errs.Validation(op, errs.ErrInvalidAmount)
	}

	fine, err := l.fines.Save(ctx, model.NewFine(userID, loanID, amount, l.now()))
	if err != nil {
		return model.Fine{}, err
	}
	l.log.Info("fine issued",
		zap.String("fine", fine.ID),
		zap.String("user", userID),
		zap.String("amount", amount.StringFixed(2)),
	)
	return fine, nil
}

// Pay books a partial or full payment and returns the updated fine.
func (l *FineLedger) Pay(ctx context.Context, fineID string, amount decimal.Decimal) (model.Fine, error) {
	const op = "ledger.Pay"
	if strings.TrimSpace(fineID) == "" {
		return model.Fine{}, errs.Validation(op, errs.ErrBlankID)
	}

	fine, err := l.fines.Mutate(ctx, fineID, func(f *model.Fine) error {
		return f.Apply(amount, l.now())
	})
	switch {
	case errors.Is(err, model.ErrFinePaid):
		return model.Fine{}, errs.Policy(op, errs.ErrAlreadyPaid)
	case errors.Is(err, model.ErrPaymentInvalid):
		return model.Fine{}, errs.Validation(op, errors.Wrap(errs.ErrInvalidAmount, err.Error()))
	case err != nil:
		return model.Fine{}, err
	}
	l.log.Info("fine payment",
		zap.String("fine", fine.ID),
		zap.String("paid", amount.StringFixed(2)),
		zap.Bool("settled", fine.Paid),
	)
	return fine, nil
}

func (l *FineLedger) HasUnpaid(userID string) bool {
	return len(l.fines.FindUnpaidByUserID(userID)) > 0
}

// TotalUnpaid sums the remaining amount over the user's unpaid fines.
func (l *FineLedger) TotalUnpaid(userID string) decimal.Decimal {
	total := decimal.Zero
	for _, f := range l.fines.FindUnpaidByUserID(userID) {
		total = total.Add(f.Remaining())
	}
	return total
}

func (l *FineLedger) UserFines(userID string) []model.Fine {
	return l.fines.FindByUserID(userID)
}

func (l *FineLedger) UnpaidFines() []model.Fine {
	return l.fines.FindUnpaid()
}

func (l *FineLedger) Fine(id string) (model.Fine, error) {
	return l.fines.FindByID(id)
}

// Ledgers answers balance questions across every media type.
type Ledgers []*FineLedger

func (ls Ledgers) HasUnpaid(userID string) bool {
	for _, l := range ls {
		if l.HasUnpaid(userID) {
			return true
		}
	}
	return false
}

func (ls Ledgers) TotalUnpaid(userID string) decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		total = total.Add(l.TotalUnpaid(userID))
	}
	return total
}
