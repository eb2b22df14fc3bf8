package bankfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"networthdash/internal/logger"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to the bank aggregator's transactions API. Results come
// back newest-first with cursor pagination.
type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

const (
	// hard caps so a runaway feed can't blow up latency or memory
	maxPages = 20
	pageSize = 500

	rateLimitBackoff = 30 * time.Second
)

type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Pending       bool            `json:"pending"`
}

type transactionsPage struct {
	Transactions []Transaction `json:"transactions"`
	NextCursor   string        `json:"next_cursor"`
}

type errResponse struct {
	Error string `json:"error"`
}

// GetTransactions pages through an account's feed until it sees a
// transaction older than since, runs out of pages, or hits the page cap.
// Pending transactions are dropped; their amounts aren't settled yet.
func (c Client) GetTransactions(ctx context.Context, externalAccountID string, since time.Time) ([]Transaction, error) {
	log := logger.FromContext(ctx)

	out := []Transaction{}
	cursor := ""
	for page := 0; page < maxPages; page++ {
		result, err := c.getPage(ctx, externalAccountID, cursor)
		if err != nil {
			return nil, err
		}

		for _, txn := range result.Transactions {
			if txn.Date.Before(since) {
				return out, nil
			}
			if txn.Pending {
				continue
			}
			out = append(out, txn)
		}

		if result.NextCursor == "" {
			return out, nil
		}
		cursor = result.NextCursor
	}

	log.Warnf("hit page cap (%d) fetching transactions for account %s", maxPages, externalAccountID)
	return out, nil
}

func (c Client) getPage(ctx context.Context, externalAccountID, cursor string) (*transactionsPage, error) {
	endpoint := fmt.Sprintf("%s/v1/accounts/%s/transactions?count=%d", c.BaseUrl, url.PathEscape(externalAccountID), pageSize)
	if cursor != "" {
		endpoint += "&cursor=" + url.QueryEscape(cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.ApiKey)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusTooManyRequests {
		logger.Debug("bank feed rate limit hit. backing off...")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(rateLimitBackoff):
		}
		return c.getPage(ctx, externalAccountID, cursor)
	} else if response.StatusCode != http.StatusOK {
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	var result transactionsPage
	err = json.Unmarshal(responseBytes, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
