package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrFinePaid       = errors.New("fine already paid")
	ErrPaymentInvalid = errors.New("payment must be positive and not exceed the remaining amount")
)

// Fine is shared by book and CD lending. Each media type keeps its fines in a
// separate document.
type Fine struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	LoanID     string          `json:"loanId"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	IssuedDate time.Time       `json:"issuedDate"`
	PaidDate   *time.Time      `json:"paidDate,omitempty"`
	Paid       bool            `json:"paid"`
}

func (f *Fine) GetID() string   { return f.ID }
func (f *Fine) SetID(id string) { f.ID = id }
func (f *Fine) Touch(time.Time) {}

func NewFine(userID, loanID string, amount decimal.Decimal, now time.Time) Fine {
	return Fine{
		UserID:     userID,
		LoanID:     loanID,
		Amount:     amount,
		PaidAmount: decimal.Zero,
		IssuedDate: now,
	}
}

func (f *Fine) Remaining() decimal.Decimal {
	return f.Amount.Sub(f.PaidAmount)
}

// Apply books a payment. The fine is settled once the paid amount reaches the
// face value; 0 <= PaidAmount <= Amount always holds.
func (f *Fine) Apply(payment decimal.Decimal, now time.Time) error {
	if f.Paid {
		return ErrFinePaid
	}
	if !payment.IsPositive() || payment.GreaterThan(f.Remaining()) {
		return ErrPaymentInvalid
	}
	f.PaidAmount = f.PaidAmount.Add(payment)
	if f.PaidAmount.GreaterThanOrEqual(f.Amount) {
		pd := now
		f.Paid = true
		f.PaidDate = &pd
	}
	return nil
}
