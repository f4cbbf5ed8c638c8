package errs_test

import (
	"testing"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := errs.Policy("loan.Borrow", errs.ErrUnpaidFines)
	wrapped := errors.Wrap(err, "handler")

	require.Equal(t, errs.KindPolicy, errs.KindOf(wrapped))
	require.ErrorIs(t, wrapped, errs.ErrUnpaidFines)
	require.Equal(t, "loan.Borrow: user has unpaid fines", err.Error())

	require.Equal(t, errs.KindUnknown, errs.KindOf(errors.New("boom")))
	require.Equal(t, errs.KindUnknown, errs.KindOf(nil))
}
