package l3_service

import (
	"context"
	"fmt"
	"networthdash/internal/domain"
	"networthdash/internal/logger"
	"networthdash/internal/repository"
	l1_service "networthdash/internal/service/l1"
	l2_service "networthdash/internal/service/l2"
	"networthdash/internal/util"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// bounded fan-out so we don't trip provider rate limits
	numWorkers = 4

	// a hanging provider call must not stall the other accounts; a
	// timed-out account is treated the same as a failed fetch
	accountFetchTimeout = 15 * time.Second
)

type PortfolioHistoryService interface {
	GenerateHistory(ctx context.Context, userID uuid.UUID, period domain.Period) ([]domain.HistoricalDataPoint, error)
}

func NewPortfolioHistoryService(
	accountStore repository.AccountStore,
	bankProvider repository.BankDataProvider,
	brokerageProvider repository.BrokerageDataProvider,
) PortfolioHistoryService {
	return portfolioHistoryServiceHandler{
		AccountStore:      accountStore,
		BankProvider:      bankProvider,
		BrokerageProvider: brokerageProvider,
	}
}

type portfolioHistoryServiceHandler struct {
	AccountStore      repository.AccountStore
	BankProvider      repository.BankDataProvider
	BrokerageProvider repository.BrokerageDataProvider
}

// transactionSource is the single fetch contract every provider family
// implements. Adding a provider means adding a variant and a case in
// sourceForAccount; the orchestrator never branches on provider identity.
type transactionSource interface {
	fetchNormalized(ctx context.Context, account domain.ConnectedAccount, cfg domain.PeriodConfig, now time.Time) ([]domain.NormalizedTransaction, error)
}

type bankSource struct {
	provider repository.BankDataProvider
}

func (s bankSource) fetchNormalized(ctx context.Context, account domain.ConnectedAccount, cfg domain.PeriodConfig, now time.Time) ([]domain.NormalizedTransaction, error) {
	raw, err := s.provider.FetchTransactions(ctx, account.ExternalAccountID, cfg.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bank transactions for account %s: %w", account.ConnectedAccountID, err)
	}
	return l1_service.NormalizeBankTransactions(ctx, raw, account), nil
}

type brokerageSource struct {
	provider repository.BrokerageDataProvider
}

func (s brokerageSource) fetchNormalized(ctx context.Context, account domain.ConnectedAccount, cfg domain.PeriodConfig, now time.Time) ([]domain.NormalizedTransaction, error) {
	start := now.AddDate(0, 0, -cfg.LookbackDays)
	raw, err := s.provider.FetchActivities(ctx, account.ExternalAccountID, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities for account %s: %w", account.ConnectedAccountID, err)
	}
	return l1_service.NormalizeBrokerageActivities(ctx, raw, account), nil
}

func (h portfolioHistoryServiceHandler) sourceForAccount(account domain.ConnectedAccount) (transactionSource, error) {
	switch account.Provider {
	case domain.Provider_BankAggregator:
		return bankSource{provider: h.BankProvider}, nil
	case domain.Provider_BrokerageAggregator:
		return brokerageSource{provider: h.BrokerageProvider}, nil
	}
	return nil, fmt.Errorf("no data source for provider %s", account.Provider)
}

// GenerateHistory produces the user's aggregate net-worth series for the
// selected period: bucketCount+1 chronological points on a fixed grid,
// values rounded to 2 decimal places.
//
// Failure containment: a single account failing to fetch is logged and
// omitted from the aggregate. Failing to resolve accounts at all degrades
// to an empty series - the chart treats a short series as "not enough
// data", which beats a hard error for the caller.
func (h portfolioHistoryServiceHandler) GenerateHistory(ctx context.Context, userID uuid.UUID, period domain.Period) ([]domain.HistoricalDataPoint, error) {
	log := logger.FromContext(ctx)

	cfg := domain.ConfigForPeriod(period)
	now := time.Now().UTC()
	nowFloored := util.FloorToInterval(now, cfg.BucketInterval)
	grid := l2_service.BuildGrid(cfg, nowFloored)

	accounts, err := h.AccountStore.GetConnectedAccounts(ctx, userID)
	if err != nil {
		log.Errorf("failed to resolve connected accounts for user %s: %v", userID, err)
		return []domain.HistoricalDataPoint{}, nil
	}
	if len(accounts) == 0 {
		return []domain.HistoricalDataPoint{}, nil
	}

	type accountResult struct {
		account domain.ConnectedAccount
		series  []domain.HistoricalDataPoint
		err     error
	}

	inputCh := make(chan domain.ConnectedAccount, len(accounts))
	resultCh := make(chan accountResult, len(accounts))
	var wg sync.WaitGroup
	for _, account := range accounts {
		wg.Add(1)
		inputCh <- account
	}
	close(inputCh)

	workers := numWorkers
	if len(accounts) < workers {
		workers = len(accounts)
	}
	for i := 0; i < workers; i++ {
		go func() {
			for account := range inputCh {
				series, err := h.accountSeries(ctx, account, cfg, grid, now)
				resultCh <- accountResult{account: account, series: series, err: err}
				wg.Done()
			}
		}()
	}
	wg.Wait()
	close(resultCh)

	// every series is keyed to the shared grid, so summing by index is
	// summing by timestamp; reducing after the workers finish means no
	// locks on the accumulator
	totals := make([]decimal.Decimal, len(grid))
	for result := range resultCh {
		if result.err != nil {
			log.Warnf("omitting account %s (%s) from aggregate: %v",
				result.account.ConnectedAccountID, result.account.Provider, result.err)
			continue
		}
		for i, point := range result.series {
			totals[i] = totals[i].Add(point.Value)
		}
	}

	out := make([]domain.HistoricalDataPoint, len(grid))
	for i, ts := range grid {
		out[i] = domain.HistoricalDataPoint{
			Timestamp: ts,
			Value:     totals[i].Round(2),
		}
	}

	return out, nil
}

func (h portfolioHistoryServiceHandler) accountSeries(ctx context.Context, account domain.ConnectedAccount, cfg domain.PeriodConfig, grid []time.Time, now time.Time) ([]domain.HistoricalDataPoint, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, accountFetchTimeout)
	defer cancel()

	source, err := h.sourceForAccount(account)
	if err != nil {
		return nil, err
	}

	transactions, err := source.fetchNormalized(fetchCtx, account, cfg, now)
	if err != nil {
		return nil, err
	}

	if len(transactions) == 0 {
		// no activity in the window: best knowledge is that the balance
		// held flat at its current value
		return l2_service.FlatSeries(grid, account.CurrentBalance), nil
	}

	points, startingBalance := l1_service.ReconstructBalances(transactions, account.CurrentBalance, now)
	return l2_service.Bucketize(points, startingBalance, grid), nil
}
