package repository

import (
	"context"
	"database/sql"
	"fmt"
	"networthdash/internal/domain"

	"github.com/google/uuid"
)

// AccountStore is the read model over the account-management subsystem's
// connected_account table. The history engine only reads from it; Add
// exists for the admin seeding script.
type AccountStore interface {
	GetConnectedAccounts(ctx context.Context, userID uuid.UUID) ([]domain.ConnectedAccount, error)
	Add(ctx context.Context, account domain.ConnectedAccount) error
}

func NewAccountStore(db *sql.DB) AccountStore {
	return accountStoreHandler{Db: db}
}

type accountStoreHandler struct {
	Db *sql.DB
}

func (h accountStoreHandler) GetConnectedAccounts(ctx context.Context, userID uuid.UUID) ([]domain.ConnectedAccount, error) {
	query := `
		SELECT connected_account_id, user_id, provider, external_account_id,
		       account_type, name, currency, current_balance
		FROM connected_account
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := h.Db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connected accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.ConnectedAccount{}
	for rows.Next() {
		var (
			account     domain.ConnectedAccount
			provider    string
			accountType string
		)
		err = rows.Scan(
			&account.ConnectedAccountID,
			&account.UserID,
			&provider,
			&account.ExternalAccountID,
			&accountType,
			&account.Name,
			&account.Currency,
			&account.CurrentBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connected account: %w", err)
		}

		p, err := domain.NewProvider(provider)
		if err != nil {
			return nil, err
		}
		t, err := domain.NewAccountType(accountType)
		if err != nil {
			return nil, err
		}
		account.Provider = *p
		account.AccountType = *t

		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read connected accounts: %w", err)
	}

	return accounts, nil
}

func (h accountStoreHandler) Add(ctx context.Context, account domain.ConnectedAccount) error {
	query := `
		INSERT INTO connected_account (
			connected_account_id, user_id, provider, external_account_id,
			account_type, name, currency, current_balance, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`

	_, err := h.Db.ExecContext(
		ctx,
		query,
		account.ConnectedAccountID,
		account.UserID,
		string(account.Provider),
		account.ExternalAccountID,
		string(account.AccountType),
		account.Name,
		account.Currency,
		account.CurrentBalance,
	)
	if err != nil {
		return fmt.Errorf("failed to insert connected account %s: %w", account.ConnectedAccountID, err)
	}

	return nil
}
