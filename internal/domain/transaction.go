package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NormalizedTransaction is the canonical, provider-agnostic transaction
// record. Amount sign is already portfolio-value-correct: positive grows
// net worth, negative shrinks it. Nothing downstream re-interprets
// account type.
type NormalizedTransaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	AccountID   uuid.UUID
	AccountType AccountType
}
