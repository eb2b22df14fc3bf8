package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"networthdash/api"
	"networthdash/internal/repository"
	l3_service "networthdash/internal/service/l3"
	"networthdash/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	accountStore := repository.NewAccountStore(dbConn)
	bankProvider := repository.NewBankDataProvider(secrets.BankFeed.ApiKey, secrets.BankFeed.Endpoint)
	brokerageProvider := repository.NewBrokerageDataProvider(
		secrets.Alpaca.ApiKey,
		secrets.Alpaca.ApiSecret,
		secrets.Alpaca.Endpoint,
	)

	portfolioHistoryService := l3_service.NewPortfolioHistoryService(
		accountStore,
		bankProvider,
		brokerageProvider,
	)

	apiHandler := &api.ApiHandler{
		Db:                      dbConn,
		PortfolioHistoryService: portfolioHistoryService,
		AccountStore:            accountStore,
		JwtSecret:               secrets.Jwt,
	}

	return apiHandler, nil
}
