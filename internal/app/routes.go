package app

import (
	"net/http"

	"github.com/ferdiebergado/inflowkit/internal/auth"
	"github.com/ferdiebergado/inflowkit/internal/country"
	"github.com/ferdiebergado/inflowkit/internal/middleware"
	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
	"github.com/ferdiebergado/inflowkit/internal/platform/jwt"
	"github.com/ferdiebergado/inflowkit/internal/platform/router"
	"github.com/ferdiebergado/inflowkit/internal/platform/validation"
	"github.com/ferdiebergado/inflowkit/internal/product"
	"github.com/ferdiebergado/inflowkit/internal/user"
)

func (a *App) setupRoutes() {
	p := a.provider

	userRepo := user.NewRepository(a.db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)
	mountUserRoutes(p.Router, userHandler, p.Signer)

	authProviders := &auth.Providers{
		Hasher: p.Hasher,
		Signer: p.Signer,
	}
	authService := auth.NewService(userService, authProviders, a.config)
	authHandler := auth.NewHandler(authService)
	mountAuthRoutes(p.Router, authHandler, p.Validator, a.config.Server.MaxBodyBytes)

	productRepo := product.NewRepository(a.db)
	productService := product.NewService(productRepo, p.TxMgr)
	productHandler := product.NewHandler(productService)
	mountProductRoutes(p.Router, productHandler, p.Validator, p.Signer, a.config.Server.MaxBodyBytes)

	countryHandler := country.NewHandler(p.CountryLookup)
	p.Router.Get("/api/country", countryHandler.FindCountry)

	p.Router.Get("/{$}", a.handleRoot)
}

type rootResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

func (a *App) handleRoot(w http.ResponseWriter, _ *http.Request) {
	web.RespondOK(w, nil, &rootResponse{Service: "inflowkit", Status: "ok"})
}

func mountProductRoutes(r router.Router, handler *product.Handler, validator validation.Validator, signer jwt.Signer, maxBodySize int64) {
	r.Get("/api/products", handler.ListProducts)
	r.Get("/api/hs-codes", handler.HSCode)
	r.Get("/export.csv", handler.ExportCSV)
	r.Get("/export.json", handler.ExportJSON)

	r.Post("/api/products", handler.CreateProduct,
		auth.RequireToken(signer),
		middleware.CheckContentType,
		middleware.DecodePayload[product.CreateProductRequest](maxBodySize),
		middleware.ValidateInput[product.CreateProductRequest](validator))
	r.Delete("/api/products/{id}", handler.DeleteProduct, auth.RequireToken(signer))
	r.Post("/api/products/import", handler.ImportCSV, auth.RequireToken(signer))
}

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/auth", func(gr router.Router) {
		gr.Post("/register", handler.RegisterUser,
			middleware.CheckContentType,
			middleware.DecodePayload[auth.RegisterUserRequest](maxBodySize),
			middleware.ValidateInput[auth.RegisterUserRequest](validator))
		gr.Post("/login", handler.LoginUser,
			middleware.CheckContentType,
			middleware.DecodePayload[auth.UserLoginRequest](maxBodySize),
			middleware.ValidateInput[auth.UserLoginRequest](validator))
		gr.Post("/refresh", handler.RefreshToken,
			middleware.CheckContentType,
			middleware.DecodePayload[auth.RefreshTokenRequest](maxBodySize),
			middleware.ValidateInput[auth.RefreshTokenRequest](validator))
	})
}

func mountUserRoutes(r router.Router, handler *user.Handler, signer jwt.Signer) {
	r.Group("/users", func(gr router.Router) {
		gr.Get("/", handler.ListUsers)
	}, auth.RequireToken(signer))
}
