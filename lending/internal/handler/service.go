package handler

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	Register(ctx context.Context, p service.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, error)
	Deactivate(ctx context.Context, userID string) (model.User, error)
	SetRole(ctx context.Context, userID string, role model.Role) (model.User, error)

	AddBook(ctx context.Context, p service.BookParams) (model.Book, error)
	AddCD(ctx context.Context, p service.CDParams) (model.CD, error)
	Book(id string) (model.Book, error)
	CD(id string) (model.CD, error)
	SearchBooks(query string) []model.Book
	SearchCDs(query, artist, genre string) []model.CD
	DeleteBook(ctx context.Context, id string) error
	DeleteCD(ctx context.Context, id string) error

	Borrow(ctx context.Context, media model.MediaType, userID, itemID string) (model.Loan, error)
	Return(ctx context.Context, media model.MediaType, loanID string) (model.Loan, error)
	Loan(media model.MediaType, loanID string) (model.Loan, error)
	UserLoans(userID string) service.UserLoans
	OverdueLoans(media model.MediaType) []model.Loan

	Fine(media model.MediaType, fineID string) (model.Fine, error)
	PayFine(ctx context.Context, media model.MediaType, fineID string, amount decimal.Decimal) (model.Fine, error)
	UserFines(userID string) service.UserFines

	SendReminders(ctx context.Context, daysBefore int) service.ReminderReport
}

var _ LendingService = (*service.Service)(nil)
