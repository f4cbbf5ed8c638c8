package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"go.uber.org/zap"
)

type Loans struct {
	*Store[model.Loan, *model.Loan]
}

// NewLoans opens the loan document of the given media type.
func NewLoans(ctx context.Context, io DocumentIO, media model.MediaType, log *zap.Logger, opts ...StoreOption) *Loans {
	prefix, _ := media.Prefixes()
	return &Loans{NewStore[model.Loan](ctx, io, loansDocument(media), prefix, log, opts...)}
}

func loansDocument(media model.MediaType) string {
	if media == model.MediaCD {
		return CDLoansDocument
	}
	return LoansDocument
}

func (r *Loans) FindByUserID(userID string) []model.Loan {
	return r.Filter(func(l *model.Loan) bool { return l.UserID == userID })
}

func (r *Loans) FindByItemID(itemID string) []model.Loan {
	return r.Filter(func(l *model.Loan) bool { return l.ItemID == itemID })
}

func (r *Loans) FindActive() []model.Loan {
	return r.Filter(func(l *model.Loan) bool { return !l.Returned })
}

func (r *Loans) FindActiveByItemID(itemID string) []model.Loan {
	return r.Filter(func(l *model.Loan) bool { return !l.Returned && l.ItemID == itemID })
}

func (r *Loans) FindOverdue(now time.Time) []model.Loan {
	return r.Filter(func(l *model.Loan) bool { return l.IsOverdue(now) })
}

func (r *Loans) FindOverdueByUserID(userID string, now time.Time) []model.Loan {
	return r.Filter(func(l *model.Loan) bool { return l.UserID == userID && l.IsOverdue(now) })
}
