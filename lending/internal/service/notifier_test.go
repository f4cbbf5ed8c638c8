package service_test

import (
	"testing"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/stretchr/testify/require"
)

func TestNotifier_OverdueReminders(t *testing.T) {
	f := newFixture(t)
	late := f.user(t, "late@example.com")
	onTime := f.user(t, "ontime@example.com")
	gone := f.user(t, "gone@example.com")

	b1, b2, b3 := f.book(t, "1"), f.book(t, "2"), f.book(t, "3")
	cd := f.cd(t, "Blue")

	for _, borrow := range []struct {
		media  model.MediaType
		user   string
		itemID string
	}{
		{model.MediaBook, late.ID, b1.ID},
		{model.MediaCD, late.ID, cd.ID},
		{model.MediaBook, gone.ID, b2.ID},
	} {
		_, err := f.svc.Borrow(f.ctx, borrow.media, borrow.user, borrow.itemID)
		require.NoError(t, err)
	}
	_, err := f.svc.Deactivate(f.ctx, gone.ID)
	require.NoError(t, err)

	f.clock.Advance(30 * day)
	_, err = f.svc.Borrow(f.ctx, model.MediaBook, onTime.ID, b3.ID)
	require.NoError(t, err)

	report := f.svc.SendReminders(f.ctx, 0)
	require.Equal(t, 1, report.Overdue)
	require.Zero(t, report.Return)

	msgs := f.mail.byKind(service.KindOverdue)
	require.Len(t, msgs, 1)
	require.Equal(t, late.Email, msgs[0].To)
	require.Contains(t, msgs[0].Body, "- 1 overdue book(s)")
	require.Contains(t, msgs[0].Body, "- 1 overdue CD(s)")
	require.Contains(t, msgs[0].Body, "Total fines: $0.00")
}

func TestNotifier_ReturnReminders(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	b := f.book(t, "1")
	cd := f.cd(t, "Kind of Blue")

	_, err := f.svc.Borrow(f.ctx, model.MediaBook, u.ID, b.ID)
	require.NoError(t, err)
	_, err = f.svc.Borrow(f.ctx, model.MediaCD, u.ID, cd.ID)
	require.NoError(t, err)

	// the CD is due in 7 days, the book in 28
	require.Equal(t, 1, f.svc.Notifier().SendReturnReminders(f.ctx, 7))
	msgs := f.mail.byKind(service.KindReturn)
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0].Body, `your CD "Kind of Blue"`)

	require.Equal(t, 2, f.svc.Notifier().SendReturnReminders(f.ctx, 28))
}
