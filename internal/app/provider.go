package app

import (
	"database/sql"
	"net/http"

	"github.com/ferdiebergado/inflowkit/internal/config"
	"github.com/ferdiebergado/inflowkit/internal/country"
	"github.com/ferdiebergado/inflowkit/internal/platform/db"
	"github.com/ferdiebergado/inflowkit/internal/platform/hash"
	"github.com/ferdiebergado/inflowkit/internal/platform/jwt"
	"github.com/ferdiebergado/inflowkit/internal/platform/router"
	"github.com/ferdiebergado/inflowkit/internal/platform/validation"
)

type Provider struct {
	DB            *sql.DB
	Signer        jwt.Signer
	Validator     validation.Validator
	Hasher        hash.Hasher
	Router        router.Router
	TxMgr         db.TxManager
	CountryLookup country.Lookup
}

func newProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) *Provider {
	countryClient := country.NewClient(cfg.Country, &http.Client{Timeout: cfg.Country.Timeout.Duration})

	return &Provider{
		DB:            dbConn,
		Signer:        jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Hasher:        hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:        router.NewGoexpressRouter(),
		Validator:     validation.NewGoPlaygroundValidator(),
		TxMgr:         db.NewSQLTxManager(dbConn),
		CountryLookup: country.NewCachedLookup(countryClient, cfg.Country.CacheTTL.Duration),
	}
}
