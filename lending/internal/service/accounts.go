package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/validate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterParams is the self-service sign-up; accounts always start as USER.
type RegisterParams struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Accounts registers and authenticates users.
type Accounts struct {
	// mu holds the email check and the save together.
	mu        sync.Mutex
	users     *repository.Users
	cost      int
	validator *validate.CustomValidator
	log       *zap.Logger
	now       func() time.Time
}

func NewAccounts(users *repository.Users, bcryptCost int, log *zap.Logger, opts ...Option) *Accounts {
	o := newOptions(opts)
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Accounts{
		users:     users,
		cost:      bcryptCost,
		validator: validate.NewCustomValidator(),
		log:       log.Named("accounts"),
		now:       o.now,
	}
}

func (a *Accounts) Register(ctx context.Context, p RegisterParams) (model.User, error) {
	const op = "accounts.Register"
	p.Name, p.Email = strings.TrimSpace(p.Name), strings.TrimSpace(p.Email)
	if err := a.validator.Validate(p); err != nil {
		return model.User{}, errs.Validation(op, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), a.cost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.users.FindByEmail(p.Email); err == nil {
		return model.User{}, errs.Policy(op, errors.Wrapf(errs.ErrDuplicate, "email %s", p.Email))
	}
	user, err := a.users.Save(ctx, model.NewUser(p.Name, p.Email, string(hash), model.RoleUser, a.now()))
	if err != nil {
		return model.User{}, err
	}
	a.log.Info("user registered", zap.String("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Login checks the credentials of an active user.
func (a *Accounts) Login(_ context.Context, email, password string) (model.User, error) {
	const op = "accounts.Login"
	user, err := a.users.FindByEmail(email)
	if err != nil {
		return model.User{}, errs.Unauthenticated(op, errs.ErrBadCredentials)
	}
	if !user.Active {
		return model.User{}, errs.Policy(op, errs.ErrUserInactive)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.log.Warn("login failed", zap.String("user", user.ID))
		return model.User{}, errs.Unauthenticated(op, errs.ErrBadCredentials)
	}
	return user, nil
}

// Deactivate flips the active flag; users are never removed.
func (a *Accounts) Deactivate(ctx context.Context, userID string) (model.User, error) {
	user, err := a.users.Mutate(ctx, userID, func(u *model.User) error {
		u.Active = false
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	a.log.Info("user deactivated", zap.String("id", userID))
	return user, nil
}

// SetRole grants or revokes the admin role. Only admins and the CLI reach it.
func (a *Accounts) SetRole(ctx context.Context, userID string, role model.Role) (model.User, error) {
	const op = "accounts.SetRole"
	if role != model.RoleAdmin && role != model.RoleUser {
		return model.User{}, errs.Validation(op, errors.Errorf("unknown role %q", role))
	}
	user, err := a.users.Mutate(ctx, userID, func(u *model.User) error {
		u.Role = role
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	a.log.Info("role changed", zap.String("id", userID), zap.String("role", string(role)))
	return user, nil
}

func (a *Accounts) User(id string) (model.User, error) { return a.users.FindByID(id) }
func (a *Accounts) Users() []model.User                { return a.users.FindAll() }

func (a *Accounts) UserByEmail(email string) (model.User, error) {
	return a.users.FindByEmail(email)
}
