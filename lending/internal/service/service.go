package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/notify"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Settings struct {
	BcryptCost int
}

// Service wires the lending engines over one document backend and fronts
// them for the transport layer.
type Service struct {
	log      *zap.Logger
	accounts *Accounts
	catalog  *Catalog
	engines  map[model.MediaType]*LoanEngine
	ledgers  map[model.MediaType]*FineLedger
	notifier *Notifier
}

func NewService(ctx context.Context, io repository.DocumentIO, sender notify.Sender, cfg Settings, log *zap.Logger, opts ...Option) *Service {
	o := newOptions(opts)
	storeOpts := []repository.StoreOption{repository.WithClock(o.now)}

	users := repository.NewUsers(ctx, io, log, storeOpts...)
	books := repository.NewBooks(ctx, io, log, storeOpts...)
	cds := repository.NewCDs(ctx, io, log, storeOpts...)
	bookLoans := repository.NewLoans(ctx, io, model.MediaBook, log, storeOpts...)
	cdLoans := repository.NewLoans(ctx, io, model.MediaCD, log, storeOpts...)

	bookLedger := NewFineLedger(model.MediaBook, repository.NewFines(ctx, io, model.MediaBook, log, storeOpts...), log, opts...)
	cdLedger := NewFineLedger(model.MediaCD, repository.NewFines(ctx, io, model.MediaCD, log, storeOpts...), log, opts...)
	all := Ledgers{bookLedger, cdLedger}

	bookEngine := NewLoanEngine(LoanEngineParams{
		Media:  model.MediaBook,
		Users:  users,
		Items:  books,
		Loans:  bookLoans,
		Ledger: bookLedger,
		Unpaid: all,
	}, log, opts...)
	cdEngine := NewLoanEngine(LoanEngineParams{
		Media:  model.MediaCD,
		Users:  users,
		Items:  cds,
		Loans:  cdLoans,
		Ledger: cdLedger,
		Unpaid: all,
	}, log, opts...)

	catalog := NewCatalog(books, cds, bookEngine, cdEngine, log, opts...)
	return &Service{
		log:      log.Named("service"),
		accounts: NewAccounts(users, cfg.BcryptCost, log, opts...),
		catalog:  catalog,
		engines:  map[model.MediaType]*LoanEngine{model.MediaBook: bookEngine, model.MediaCD: cdEngine},
		ledgers:  map[model.MediaType]*FineLedger{model.MediaBook: bookLedger, model.MediaCD: cdLedger},
		notifier: NewNotifier(sender, users, catalog, bookEngine, cdEngine, all, log, opts...),
	}
}

func (s *Service) Accounts() *Accounts                  { return s.accounts }
func (s *Service) Catalog() *Catalog                    { return s.catalog }
func (s *Service) Notifier() *Notifier                  { return s.notifier }
func (s *Service) Engine(m model.MediaType) *LoanEngine { return s.engines[m] }
func (s *Service) Ledger(m model.MediaType) *FineLedger { return s.ledgers[m] }
func (s *Service) Ledgers() Ledgers                     { return Ledgers{s.ledgers[model.MediaBook], s.ledgers[model.MediaCD]} }

// ParseMedia is the strict counterpart of model.ParseMediaType used for
// caller input: unknown tags are rejected instead of defaulting to books.
func ParseMedia(tag string) (model.MediaType, error) {
	m := model.MediaType(strings.ToUpper(strings.TrimSpace(tag)))
	if !m.Valid() {
		return "", errs.Validation("media", errors.Errorf("unknown media type %q", tag))
	}
	return m, nil
}

func (s *Service) Register(ctx context.Context, p RegisterParams) (model.User, error) {
	u, err := s.accounts.Register(ctx, p)
	if err != nil {
		return model.User{}, err
	}
	s.notifier.Welcome(ctx, u)
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (model.User, error) {
	return s.accounts.Login(ctx, email, password)
}

func (s *Service) Deactivate(ctx context.Context, userID string) (model.User, error) {
	return s.accounts.Deactivate(ctx, userID)
}

func (s *Service) SetRole(ctx context.Context, userID string, role model.Role) (model.User, error) {
	return s.accounts.SetRole(ctx, userID, role)
}

func (s *Service) AddBook(ctx context.Context, p BookParams) (model.Book, error) {
	return s.catalog.AddBook(ctx, p)
}

func (s *Service) AddCD(ctx context.Context, p CDParams) (model.CD, error) {
	return s.catalog.AddCD(ctx, p)
}

func (s *Service) Book(id string) (model.Book, error)    { return s.catalog.Book(id) }
func (s *Service) CD(id string) (model.CD, error)        { return s.catalog.CD(id) }
func (s *Service) SearchBooks(query string) []model.Book { return s.catalog.SearchBooks(query) }

// SearchCDs narrows by artist or genre when given, otherwise by free text.
func (s *Service) SearchCDs(query, artist, genre string) []model.CD {
	switch {
	case artist != "":
		return s.catalog.CDsByArtist(artist)
	case genre != "":
		return s.catalog.CDsByGenre(genre)
	default:
		return s.catalog.SearchCDs(query)
	}
}

func (s *Service) DeleteBook(ctx context.Context, id string) error { return s.catalog.DeleteBook(ctx, id) }
func (s *Service) DeleteCD(ctx context.Context, id string) error   { return s.catalog.DeleteCD(ctx, id) }

func (s *Service) Borrow(ctx context.Context, media model.MediaType, userID, itemID string) (model.Loan, error) {
	return s.engines[media].Borrow(ctx, userID, itemID)
}

func (s *Service) Return(ctx context.Context, media model.MediaType, loanID string) (model.Loan, error) {
	return s.engines[media].Return(ctx, loanID)
}

func (s *Service) Loan(media model.MediaType, loanID string) (model.Loan, error) {
	return s.engines[media].Loan(loanID)
}

type UserLoans struct {
	Books      []model.Loan `json:"books"`
	CDs        []model.Loan `json:"cds"`
	HasOverdue bool         `json:"hasOverdue"`
}

func (s *Service) UserLoans(userID string) UserLoans {
	books, cds := s.engines[model.MediaBook], s.engines[model.MediaCD]
	return UserLoans{
		Books:      books.UserLoans(userID),
		CDs:        cds.UserLoans(userID),
		HasOverdue: books.HasOverdue(userID) || cds.HasOverdue(userID),
	}
}

func (s *Service) OverdueLoans(media model.MediaType) []model.Loan {
	return s.engines[media].OverdueLoans()
}

func (s *Service) Fine(media model.MediaType, fineID string) (model.Fine, error) {
	return s.ledgers[media].Fine(fineID)
}

// PayFine books the payment and confirms it to the fine's owner.
func (s *Service) PayFine(ctx context.Context, media model.MediaType, fineID string, amount decimal.Decimal) (model.Fine, error) {
	fine, err := s.ledgers[media].Pay(ctx, fineID, amount)
	if err != nil {
		return model.Fine{}, err
	}
	if u, err := s.accounts.User(fine.UserID); err == nil {
		s.notifier.PaymentConfirmation(ctx, u, amount)
	} else {
		s.log.Warn("payment confirmation: unknown user", zap.String("user", fine.UserID))
	}
	return fine, nil
}

type UserFines struct {
	Books       []model.Fine    `json:"books"`
	CDs         []model.Fine    `json:"cds"`
	TotalUnpaid decimal.Decimal `json:"totalUnpaid"`
}

func (s *Service) UserFines(userID string) UserFines {
	return UserFines{
		Books:       s.ledgers[model.MediaBook].UserFines(userID),
		CDs:         s.ledgers[model.MediaCD].UserFines(userID),
		TotalUnpaid: s.Ledgers().TotalUnpaid(userID),
	}
}

type ReminderReport struct {
	Overdue int `json:"overdue"`
	Return  int `json:"return"`
}

// SendReminders sends the overdue reminders and, when daysBefore is positive,
// the return reminders for loans due within that many days.
func (s *Service) SendReminders(ctx context.Context, daysBefore int) ReminderReport {
	r := ReminderReport{Overdue: s.notifier.SendOverdueReminders(ctx)}
	if daysBefore > 0 {
		r.Return = s.notifier.SendReturnReminders(ctx, daysBefore)
	}
	return r
}
