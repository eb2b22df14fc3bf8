package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/stretchr/testify/require"
)

type stubActivityClient struct {
	pages      [][]alpaca.AccountActivity
	pageTokens []string
	err        error
}

func (c *stubActivityClient) GetAccountActivities(req alpaca.GetAccountActivitiesRequest) ([]alpaca.AccountActivity, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.pageTokens = append(c.pageTokens, req.PageToken)
	if len(c.pages) == 0 {
		return nil, nil
	}
	page := c.pages[0]
	c.pages = c.pages[1:]
	return page, nil
}

func activityPage(prefix string, n int) []alpaca.AccountActivity {
	out := make([]alpaca.AccountActivity, n)
	for i := range out {
		out[i] = alpaca.AccountActivity{ID: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return out
}

func TestFetchActivities(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 5, 26, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	t.Run("follows page tokens until a short page", func(t *testing.T) {
		client := &stubActivityClient{
			pages: [][]alpaca.AccountActivity{
				activityPage("a", activityPageSize),
				activityPage("b", activityPageSize),
				activityPage("c", 3),
			},
		}
		handler := brokerageDataProviderHandler{Client: client}

		activities, err := handler.FetchActivities(ctx, "acct-1", start, end)
		require.NoError(t, err)
		require.Len(t, activities, 2*activityPageSize+3)

		// each request continues from the last activity of the previous page
		require.Equal(t, []string{
			"",
			fmt.Sprintf("a-%d", activityPageSize-1),
			fmt.Sprintf("b-%d", activityPageSize-1),
		}, client.pageTokens)
	})

	t.Run("single short page needs no follow-up request", func(t *testing.T) {
		client := &stubActivityClient{
			pages: [][]alpaca.AccountActivity{activityPage("a", 5)},
		}
		handler := brokerageDataProviderHandler{Client: client}

		activities, err := handler.FetchActivities(ctx, "acct-1", start, end)
		require.NoError(t, err)
		require.Len(t, activities, 5)
		require.Equal(t, []string{""}, client.pageTokens)
	})

	t.Run("stops at the page cap on a never-ending feed", func(t *testing.T) {
		pages := make([][]alpaca.AccountActivity, maxActivityPages+5)
		for i := range pages {
			pages[i] = activityPage(fmt.Sprintf("p%d", i), activityPageSize)
		}
		client := &stubActivityClient{pages: pages}
		handler := brokerageDataProviderHandler{Client: client}

		activities, err := handler.FetchActivities(ctx, "acct-1", start, end)
		require.NoError(t, err)
		require.Len(t, activities, maxActivityPages*activityPageSize)
		require.Len(t, client.pageTokens, maxActivityPages)
	})

	t.Run("surfaces client errors", func(t *testing.T) {
		client := &stubActivityClient{err: fmt.Errorf("boom")}
		handler := brokerageDataProviderHandler{Client: client}

		_, err := handler.FetchActivities(ctx, "acct-1", start, end)
		require.ErrorContains(t, err, "failed to fetch activities for acct-1")
	})
}
