package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/notify"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const signature = "Best regards,\nLibrary Management System"

const (
	KindOverdue = "overdue"
	KindReturn  = "return"
	KindPayment = "payment"
	KindWelcome = "welcome"
)

// Notifier composes user emails from lending state and hands them to a Sender.
type Notifier struct {
	sender  notify.Sender
	users   *repository.Users
	catalog *Catalog
	books   *LoanEngine
	cds     *LoanEngine
	ledgers Ledgers
	log     *zap.Logger
	now     func() time.Time
}

func NewNotifier(sender notify.Sender, users *repository.Users, catalog *Catalog, books, cds *LoanEngine, ledgers Ledgers, log *zap.Logger, opts ...Option) *Notifier {
	o := newOptions(opts)
	return &Notifier{
		sender:  sender,
		users:   users,
		catalog: catalog,
		books:   books,
		cds:     cds,
		ledgers: ledgers,
		log:     log.Named("notifier"),
		now:     o.now,
	}
}

// SendOverdueReminders sends one combined reminder to every active user with
// overdue books or CDs and returns how many were accepted by the sender.
func (n *Notifier) SendOverdueReminders(ctx context.Context) int {
	sent := 0
	for _, u := range n.users.FindActive() {
		books := len(n.books.UserOverdueLoans(u.ID))
		cds := len(n.cds.UserOverdueLoans(u.ID))
		if books == 0 && cds == 0 {
			continue
		}
		body := fmt.Sprintf("Dear %s,\n\nYou have:\n- %d overdue book(s)\n- %d overdue CD(s)\nTotal fines: $%s\n\n"+
			"Please return the items as soon as possible to avoid additional charges.\n\n%s",
			u.Name, books, cds, n.ledgers.TotalUnpaid(u.ID).StringFixed(2), signature)
		if n.send(ctx, notify.Email{
			To:      u.Email,
			Subject: "Library Overdue Items Reminder",
			Body:    body,
			Kind:    KindOverdue,
		}) {
			sent++
		}
	}
	n.log.Info("overdue reminders", zap.Int("sent", sent))
	return sent
}

// SendReturnReminders reminds borrowers of active loans due within daysBefore days.
func (n *Notifier) SendReturnReminders(ctx context.Context, daysBefore int) int {
	deadline := n.now().AddDate(0, 0, daysBefore)
	sent := 0
	for _, e := range []*LoanEngine{n.books, n.cds} {
		for _, l := range e.ActiveLoans() {
			if l.DueDate.After(deadline) {
				continue
			}
			u, err := n.users.FindByID(l.UserID)
			if err != nil || !u.Active {
				continue
			}
			body := fmt.Sprintf("Dear %s,\n\nThis is a friendly reminder that your %s \"%s\" is due on %s.\n\n"+
				"Please return it on time to avoid overdue fines.\n\n%s",
				u.Name, itemNoun(e.Media()), n.catalog.Title(e.Media(), l.ItemID), l.DueDate.Format(time.DateOnly), signature)
			if n.send(ctx, notify.Email{
				To:      u.Email,
				Subject: "Return Reminder",
				Body:    body,
				Kind:    KindReturn,
			}) {
				sent++
			}
		}
	}
	n.log.Info("return reminders", zap.Int("days", daysBefore), zap.Int("sent", sent))
	return sent
}

func (n *Notifier) PaymentConfirmation(ctx context.Context, user model.User, paid decimal.Decimal) bool {
	body := fmt.Sprintf("Dear %s,\n\nYour payment of $%s has been received successfully.\nRemaining balance: $%s\n\n"+
		"Thank you for your payment.\n\n%s",
		user.Name, paid.StringFixed(2), n.ledgers.TotalUnpaid(user.ID).StringFixed(2), signature)
	return n.send(ctx, notify.Email{
		To:      user.Email,
		Subject: "Fine Payment Confirmation",
		Body:    body,
		Kind:    KindPayment,
	})
}

func (n *Notifier) Welcome(ctx context.Context, user model.User) bool {
	body := fmt.Sprintf("Dear %s,\n\nWelcome to our Library Management System!\n\n"+
		"Your account has been successfully created.\nEmail: %s\nRole: %s\n\n"+
		"You can now login and start using our library services.\n\n%s",
		user.Name, user.Email, user.Role, signature)
	return n.send(ctx, notify.Email{
		To:      user.Email,
		Subject: "Welcome to Library Management System",
		Body:    body,
		Kind:    KindWelcome,
	})
}

func (n *Notifier) send(ctx context.Context, msg notify.Email) bool {
	if err := n.sender.Send(ctx, msg); err != nil {
		n.log.Warn("send", zap.String("to", msg.To), zap.String("kind", msg.Kind), zap.Error(err))
		return false
	}
	return true
}

func itemNoun(m model.MediaType) string {
	if m == model.MediaCD {
		return "CD"
	}
	return "book"
}
