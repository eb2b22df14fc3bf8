package l1_service

import (
	"context"
	"networthdash/internal/domain"
	"networthdash/pkg/bankfeed"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBankTransactions(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)

	t.Run("bank amounts pass through unchanged", func(t *testing.T) {
		account := domain.ConnectedAccount{
			ConnectedAccountID: uuid.New(),
			AccountType:        domain.AccountType_Bank,
		}
		out := NormalizeBankTransactions(ctx, []bankfeed.Transaction{
			{TransactionID: "t1", Amount: decimal.NewFromInt(100), Date: date, Description: "paycheck"},
			{TransactionID: "t2", Amount: decimal.NewFromInt(-40), Date: date, Description: "groceries"},
		}, account)

		require.Len(t, out, 2)
		require.Equal(t, "100", out[0].Amount.String())
		require.Equal(t, "-40", out[1].Amount.String())
		require.Equal(t, account.ConnectedAccountID, out[0].AccountID)
		require.Equal(t, domain.AccountType_Bank, out[0].AccountType)
	})

	t.Run("card amounts invert", func(t *testing.T) {
		account := domain.ConnectedAccount{
			ConnectedAccountID: uuid.New(),
			AccountType:        domain.AccountType_Card,
		}
		out := NormalizeBankTransactions(ctx, []bankfeed.Transaction{
			// a charge: debt grows, net worth shrinks
			{TransactionID: "t1", Amount: decimal.NewFromInt(100), Date: date, Description: "restaurant"},
			// a payment: debt shrinks, net worth grows
			{TransactionID: "t2", Amount: decimal.NewFromInt(-250), Date: date, Description: "card payment"},
		}, account)

		require.Len(t, out, 2)
		require.Equal(t, "-100", out[0].Amount.String())
		require.Equal(t, "250", out[1].Amount.String())
	})

	t.Run("malformed records are skipped, not fatal", func(t *testing.T) {
		account := domain.ConnectedAccount{
			ConnectedAccountID: uuid.New(),
			AccountType:        domain.AccountType_Bank,
		}
		out := NormalizeBankTransactions(ctx, []bankfeed.Transaction{
			{TransactionID: "bad", Amount: decimal.NewFromInt(10)},
			{TransactionID: "good", Amount: decimal.NewFromInt(20), Date: date},
		}, account)

		require.Len(t, out, 1)
		require.Equal(t, "20", out[0].Amount.String())
	})
}

func TestNormalizeBrokerageActivities(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 8, 21, 14, 30, 0, 0, time.UTC)

	account := domain.ConnectedAccount{
		ConnectedAccountID: uuid.New(),
		AccountType:        domain.AccountType_Brokerage,
	}

	out := NormalizeBrokerageActivities(ctx, []alpaca.AccountActivity{
		{ID: "a1", TransactionTime: ts, NetAmount: decimal.NewFromFloat(-512.25), Symbol: "VTI"},
		{ID: "a2", TransactionTime: ts, NetAmount: decimal.NewFromFloat(12.4), Symbol: "VTI"},
		{ID: "bad", NetAmount: decimal.NewFromInt(5)},
	}, account)

	require.Len(t, out, 2)
	// net amounts are already portfolio-signed
	require.Equal(t, "-512.25", out[0].Amount.String())
	require.Equal(t, "12.4", out[1].Amount.String())
	require.Equal(t, domain.AccountType_Brokerage, out[0].AccountType)
}
