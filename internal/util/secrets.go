package util

import (
	"encoding/json"
	"fmt"
	"os"
)

type DbSecrets struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"databaseName"`
	SslMode      string `json:"sslMode"`
}

func (d DbSecrets) ToConnectionStr() string {
	sslMode := d.SslMode
	if sslMode == "" {
		sslMode = "require"
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		d.Username, d.Password, d.Host, d.Port, d.DatabaseName, sslMode,
	)
}

type BankFeedSecrets struct {
	ApiKey   string `json:"apiKey"`
	Endpoint string `json:"endpoint"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type Secrets struct {
	Db       DbSecrets       `json:"db"`
	BankFeed BankFeedSecrets `json:"bankFeed"`
	Alpaca   AlpacaSecrets   `json:"alpaca"`
	Jwt      string          `json:"jwt"`
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("NWD_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("NWD_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets.json: %w", err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}
