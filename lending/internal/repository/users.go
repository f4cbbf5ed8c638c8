package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const UserPrefix = "USER"

type Users struct {
	*Store[model.User, *model.User]
}

func NewUsers(ctx context.Context, io DocumentIO, log *zap.Logger, opts ...StoreOption) *Users {
	return &Users{NewStore[model.User](ctx, io, UsersDocument, UserPrefix, log, opts...)}
}

// FindByEmail matches case-insensitively over active and inactive users.
func (r *Users) FindByEmail(email string) (model.User, error) {
	email = strings.TrimSpace(email)
	found := r.Filter(func(u *model.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if len(found) == 0 {
		return model.User{}, errs.NotFound(UsersDocument, errors.Wrap(errs.ErrNotFound, email))
	}
	return found[0], nil
}

func (r *Users) FindActive() []model.User {
	return r.Filter(func(u *model.User) bool { return u.Active })
}
