package repository

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"go.uber.org/zap"
)

type Fines struct {
	*Store[model.Fine, *model.Fine]
}

// NewFines opens the fine document of the given media type.
func NewFines(ctx context.Context, io DocumentIO, media model.MediaType, log *zap.Logger, opts ...StoreOption) *Fines {
	_, prefix := media.Prefixes()
	name := FinesDocument
	if media == model.MediaCD {
		name = CDFinesDocument
	}
	return &Fines{NewStore[model.Fine](ctx, io, name, prefix, log, opts...)}
}

func (r *Fines) FindByUserID(userID string) []model.Fine {
	return r.Filter(func(f *model.Fine) bool { return f.UserID == userID })
}

func (r *Fines) FindByLoanID(loanID string) []model.Fine {
	return r.Filter(func(f *model.Fine) bool { return f.LoanID == loanID })
}

func (r *Fines) FindUnpaid() []model.Fine {
	return r.Filter(func(f *model.Fine) bool { return !f.Paid })
}

func (r *Fines) FindUnpaidByUserID(userID string) []model.Fine {
	return r.Filter(func(f *model.Fine) bool { return !f.Paid && f.UserID == userID })
}
