package service

import (
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/shopspring/decimal"
)

// FineStrategy converts overdue days into a fine.
type FineStrategy interface {
	CalculateFine(overdueDays int) decimal.Decimal
	DailyRate() decimal.Decimal
}

type dailyRate struct {
	rate decimal.Decimal
}

func (s dailyRate) DailyRate() decimal.Decimal { return s.rate }

func (s dailyRate) CalculateFine(overdueDays int) decimal.Decimal {
	if overdueDays <= 0 {
		return decimal.Zero
	}
	return s.rate.Mul(decimal.NewFromInt(int64(overdueDays)))
}

var (
	BookFineStrategy FineStrategy = dailyRate{rate: decimal.NewFromInt(10)}
	CDFineStrategy   FineStrategy = dailyRate{rate: decimal.NewFromInt(20)}
)

func StrategyFor(media model.MediaType) FineStrategy {
	switch media {
	case model.MediaCD:
		return CDFineStrategy
	case model.MediaBook:
		return BookFineStrategy
	default:
		return BookFineStrategy
	}
}
