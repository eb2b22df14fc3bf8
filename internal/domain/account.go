package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Provider string

const (
	Provider_BankAggregator      Provider = "BANK_AGGREGATOR"
	Provider_BrokerageAggregator Provider = "BROKERAGE_AGGREGATOR"
)

func NewProvider(s string) (*Provider, error) {
	p := Provider(s)
	switch p {
	case Provider_BankAggregator, Provider_BrokerageAggregator:
		return &p, nil
	}
	return nil, fmt.Errorf("unknown provider %q", s)
}

type AccountType string

const (
	AccountType_Bank      AccountType = "BANK"
	AccountType_Card      AccountType = "CARD"
	AccountType_Brokerage AccountType = "BROKERAGE"
)

func NewAccountType(s string) (*AccountType, error) {
	t := AccountType(s)
	switch t {
	case AccountType_Bank, AccountType_Card, AccountType_Brokerage:
		return &t, nil
	}
	return nil, fmt.Errorf("unknown account type %q", s)
}

// ConnectedAccount is owned by the account-management subsystem; the
// history engine only ever reads it.
type ConnectedAccount struct {
	ConnectedAccountID uuid.UUID
	UserID             uuid.UUID
	Provider           Provider
	ExternalAccountID  string
	AccountType        AccountType
	Name               string
	Currency           string
	CurrentBalance     decimal.Decimal
}
