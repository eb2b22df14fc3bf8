package repository

import (
	"context"
	"fmt"
	"net/http"
	"networthdash/pkg/bankfeed"
	"time"
)

// BankDataProvider fetches raw transactions from the bank aggregator for
// bank and card accounts. Sign conventions are the provider's own; the
// normalizer is the only component that interprets them.
type BankDataProvider interface {
	FetchTransactions(ctx context.Context, externalAccountID string, lookbackDays int) ([]bankfeed.Transaction, error)
}

func NewBankDataProvider(apiKey, endpoint string) BankDataProvider {
	return bankDataProviderHandler{
		Client: bankfeed.Client{
			HttpClient: &http.Client{Timeout: 30 * time.Second},
			ApiKey:     apiKey,
			BaseUrl:    endpoint,
		},
	}
}

type bankDataProviderHandler struct {
	Client bankfeed.Client
}

func (h bankDataProviderHandler) FetchTransactions(ctx context.Context, externalAccountID string, lookbackDays int) ([]bankfeed.Transaction, error) {
	since := time.Now().UTC().AddDate(0, 0, -lookbackDays)
	transactions, err := h.Client.GetTransactions(ctx, externalAccountID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bank transactions for %s: %w", externalAccountID, err)
	}
	return transactions, nil
}
