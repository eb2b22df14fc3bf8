package l1_service

import (
	"context"
	"networthdash/internal/domain"
	"networthdash/internal/logger"
	"networthdash/pkg/bankfeed"
	"strings"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

// NormalizeBankTransactions converts raw bank-aggregator records into
// canonical portfolio-signed transactions.
//
// Sign rules: bank accounts report inflows as positive, which already
// matches portfolio impact. Card accounts report charges as positive;
// a charge grows debt and shrinks net worth, so the sign flips. Getting
// this inversion backward produces a mirror-image chart with no error
// signal anywhere, so it lives here and nowhere else.
func NormalizeBankTransactions(ctx context.Context, transactions []bankfeed.Transaction, account domain.ConnectedAccount) []domain.NormalizedTransaction {
	log := logger.FromContext(ctx)

	out := make([]domain.NormalizedTransaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Date.IsZero() {
			log.Warnf("skipping malformed transaction %s on account %s: missing date", txn.TransactionID, account.ConnectedAccountID)
			continue
		}

		amount := txn.Amount
		if account.AccountType == domain.AccountType_Card {
			amount = amount.Neg()
		}

		out = append(out, domain.NormalizedTransaction{
			Date:        txn.Date.UTC(),
			Amount:      amount,
			Description: txn.Description,
			AccountID:   account.ConnectedAccountID,
			AccountType: account.AccountType,
		})
	}

	return out
}

// NormalizeBrokerageActivities converts brokerage activities. Net amounts
// are already signed by portfolio impact, so they pass through unchanged.
func NormalizeBrokerageActivities(ctx context.Context, activities []alpaca.AccountActivity, account domain.ConnectedAccount) []domain.NormalizedTransaction {
	log := logger.FromContext(ctx)

	out := make([]domain.NormalizedTransaction, 0, len(activities))
	for _, activity := range activities {
		if activity.TransactionTime.IsZero() {
			log.Warnf("skipping malformed activity %s on account %s: missing transaction time", activity.ID, account.ConnectedAccountID)
			continue
		}

		out = append(out, domain.NormalizedTransaction{
			Date:        activity.TransactionTime.UTC(),
			Amount:      activity.NetAmount,
			Description: strings.TrimSpace(string(activity.ActivityType) + " " + activity.Symbol),
			AccountID:   account.ConnectedAccountID,
			AccountType: account.AccountType,
		})
	}

	return out
}
