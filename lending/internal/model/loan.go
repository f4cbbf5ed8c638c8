package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanOverdue  LoanStatus = "OVERDUE"
	LoanReturned LoanStatus = "RETURNED"
)

// Loan is shared by book and CD lending. Each media type keeps its loans in a
// separate document.
type Loan struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	ItemID     string          `json:"itemId"`
	BorrowDate time.Time       `json:"borrowDate"`
	DueDate    time.Time       `json:"dueDate"`
	ReturnDate *time.Time      `json:"returnDate,omitempty"`
	Returned   bool            `json:"returned"`
	FineAmount decimal.Decimal `json:"fineAmount"`
}

func (l *Loan) GetID() string   { return l.ID }
func (l *Loan) SetID(id string) { l.ID = id }

// Touch is a no-op, loans carry no update stamp.
func (l *Loan) Touch(time.Time) {}

func NewLoan(userID, itemID string, media MediaType, now time.Time) Loan {
	return Loan{
		UserID:     userID,
		ItemID:     itemID,
		BorrowDate: now,
		DueDate:    now.Add(media.LoanPeriod()),
		FineAmount: decimal.Zero,
	}
}

// Status derives the logical state; OVERDUE is never persisted.
func (l *Loan) Status(now time.Time) LoanStatus {
	switch {
	case l.Returned:
		return LoanReturned
	case now.After(l.DueDate):
		return LoanOverdue
	default:
		return LoanActive
	}
}

func (l *Loan) IsOverdue(now time.Time) bool {
	return l.Status(now) == LoanOverdue
}

// OverdueDays counts whole days past the due date, measured at the return date
// for returned loans. It is at least 1 once the due date has passed.
func (l *Loan) OverdueDays(now time.Time) int {
	ref := now
	if l.Returned && l.ReturnDate != nil {
		ref = *l.ReturnDate
	}
	if !ref.After(l.DueDate) {
		return 0
	}
	days := int(ref.Sub(l.DueDate) / day)
	if days < 1 {
		days = 1
	}
	return days
}

// MarkReturned closes the loan and stamps the fine owed, if any.
func (l *Loan) MarkReturned(now time.Time, fine decimal.Decimal) {
	rd := now
	l.ReturnDate = &rd
	l.Returned = true
	l.FineAmount = fine
}
