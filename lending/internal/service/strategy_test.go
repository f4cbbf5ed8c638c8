package service_test

import (
	"testing"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFineStrategy(t *testing.T) {
	tests := []struct {
		name  string
		media model.MediaType
		days  int
		want  int64
		rate  int64
	}{
		{name: "book zero", media: model.MediaBook, days: 0, want: 0, rate: 10},
		{name: "book five", media: model.MediaBook, days: 5, want: 50, rate: 10},
		{name: "cd zero", media: model.MediaCD, days: 0, want: 0, rate: 20},
		{name: "cd five", media: model.MediaCD, days: 5, want: 100, rate: 20},
		{name: "negative days", media: model.MediaCD, days: -3, want: 0, rate: 20},
		{name: "unknown falls back to book", media: model.MediaType("VHS"), days: 2, want: 20, rate: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := service.StrategyFor(tt.media)
			require.True(t, s.CalculateFine(tt.days).Equal(decimal.NewFromInt(tt.want)))
			require.True(t, s.DailyRate().Equal(decimal.NewFromInt(tt.rate)))
		})
	}
}

func TestParseMedia(t *testing.T) {
	m, err := service.ParseMedia("cd")
	require.NoError(t, err)
	require.Equal(t, model.MediaCD, m)

	_, err = service.ParseMedia("vinyl")
	require.Error(t, err)
}
