package repository

import (
	"context"
	"fmt"
	"networthdash/internal/logger"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

// BrokerageDataProvider fetches account activities from the brokerage
// aggregator. Activity net amounts are already signed by portfolio
// impact, so they pass through normalization unchanged.
type BrokerageDataProvider interface {
	FetchActivities(ctx context.Context, externalAccountID string, start, end time.Time) ([]alpaca.AccountActivity, error)
}

const (
	activityPageSize = 100

	// hard cap so a runaway activity feed can't blow up latency or memory
	maxActivityPages = 20
)

// alpacaActivityClient is the slice of the SDK client the provider uses.
type alpacaActivityClient interface {
	GetAccountActivities(req alpaca.GetAccountActivitiesRequest) ([]alpaca.AccountActivity, error)
}

func NewBrokerageDataProvider(apiKey, apiSecret, endpoint string) BrokerageDataProvider {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return brokerageDataProviderHandler{Client: client}
}

type brokerageDataProviderHandler struct {
	Client alpacaActivityClient
}

// FetchActivities pages through the account's activities between start
// and end until it runs out of pages or hits the page cap. The API
// returns pages newest-first and continues from the last activity's ID
// via the page token.
func (h brokerageDataProviderHandler) FetchActivities(ctx context.Context, externalAccountID string, start, end time.Time) ([]alpaca.AccountActivity, error) {
	log := logger.FromContext(ctx)

	// the client is scoped to the linked account's credentials, so
	// externalAccountID is informational here
	out := []alpaca.AccountActivity{}
	pageToken := ""
	for page := 0; page < maxActivityPages; page++ {
		activities, err := h.Client.GetAccountActivities(alpaca.GetAccountActivitiesRequest{
			After:     start,
			Until:     end,
			PageSize:  activityPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch activities for %s: %w", externalAccountID, err)
		}

		out = append(out, activities...)

		// a short page means the feed is exhausted
		if len(activities) < activityPageSize {
			return out, nil
		}
		pageToken = activities[len(activities)-1].ID
	}

	log.Warnf("hit page cap (%d) fetching activities for account %s", maxActivityPages, externalAccountID)
	return out, nil
}
