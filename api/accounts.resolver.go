package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type connectedAccountResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Provider       string  `json:"provider"`
	AccountType    string  `json:"accountType"`
	Currency       string  `json:"currency"`
	CurrentBalance float64 `json:"currentBalance"`
}

func (m ApiHandler) accounts(c *gin.Context) {
	userID, err := m.resolveUserID(c, c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}

	ctx := requestContext(c)
	accounts, err := m.AccountStore.GetConnectedAccounts(ctx, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]connectedAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, connectedAccountResponse{
			ID:             account.ConnectedAccountID.String(),
			Name:           account.Name,
			Provider:       string(account.Provider),
			AccountType:    string(account.AccountType),
			Currency:       account.Currency,
			CurrentBalance: account.CurrentBalance.InexactFloat64(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"accounts": out})
}
