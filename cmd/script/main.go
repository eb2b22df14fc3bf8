package main

import (
	"context"
	"fmt"
	"log"
	"networthdash/cmd"
	"networthdash/internal/domain"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "networthdash-admin",
		Short: "admin utilities for the networthdash backend",
	}
	rootCmd.AddCommand(seedAccountsCmd())
	rootCmd.AddCommand(historyCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

type accountRow struct {
	UserID            string `csv:"user_id"`
	Provider          string `csv:"provider"`
	ExternalAccountID string `csv:"external_account_id"`
	AccountType       string `csv:"account_type"`
	Name              string `csv:"name"`
	Currency          string `csv:"currency"`
	CurrentBalance    string `csv:"current_balance"`
}

func seedAccountsCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "seed-accounts",
		Short: "load connected accounts from a csv into the account store",
		RunE: func(c *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			rows := []accountRow{}
			if err := gocsv.UnmarshalFile(f, &rows); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			ctx := context.Background()
			for _, row := range rows {
				account, err := accountFromRow(row)
				if err != nil {
					return err
				}
				if err := handler.AccountStore.Add(ctx, *account); err != nil {
					return err
				}
				fmt.Printf("added %s (%s %s)\n", account.Name, account.Provider, account.AccountType)
			}

			return nil
		},
	}
	c.Flags().StringVar(&file, "file", "accounts.csv", "csv file of accounts to load")

	return c
}

func accountFromRow(row accountRow) (*domain.ConnectedAccount, error) {
	userID, err := uuid.Parse(row.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id %q: %w", row.UserID, err)
	}
	provider, err := domain.NewProvider(row.Provider)
	if err != nil {
		return nil, err
	}
	accountType, err := domain.NewAccountType(row.AccountType)
	if err != nil {
		return nil, err
	}
	balance, err := decimal.NewFromString(row.CurrentBalance)
	if err != nil {
		return nil, fmt.Errorf("invalid current_balance %q: %w", row.CurrentBalance, err)
	}

	return &domain.ConnectedAccount{
		ConnectedAccountID: uuid.New(),
		UserID:             userID,
		Provider:           *provider,
		ExternalAccountID:  row.ExternalAccountID,
		AccountType:        *accountType,
		Name:               row.Name,
		Currency:           row.Currency,
		CurrentBalance:     balance,
	}, nil
}

func historyCmd() *cobra.Command {
	var (
		user   string
		period string
	)

	c := &cobra.Command{
		Use:   "history",
		Short: "print a user's aggregated net worth series",
		RunE: func(c *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", user, err)
			}
			p, err := domain.NewPeriod(period)
			if err != nil {
				return err
			}

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			series, err := handler.PortfolioHistoryService.GenerateHistory(context.Background(), userID, *p)
			if err != nil {
				return err
			}

			for _, point := range series {
				fmt.Printf("%s  %s\n", point.Timestamp.Format(time.RFC3339), point.Value.StringFixed(2))
			}

			return nil
		},
	}
	c.Flags().StringVar(&user, "user", "", "user id")
	c.Flags().StringVar(&period, "period", "1M", "chart period (1D, 1W, 1M, 3M, 1Y)")

	return c
}
