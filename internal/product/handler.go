package product

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ferdiebergado/inflowkit/internal/pkg/message"
	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
)

// Service is the product operations contract consumed by the handler.
type Service interface {
	ListProducts(ctx context.Context, filters Filters) ([]Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type CreateProductRequest struct {
	Country       string  `json:"country" validate:"required"`
	ProductName   string  `json:"product_name" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	HSCode        string  `json:"hs_code,omitempty"`
	Quantity      int     `json:"quantity" validate:"required,gte=1"`
	DeclaredValue float64 `json:"declared_value" validate:"gte=0"`
	RiskLevel     int     `json:"risk_level" validate:"required,gte=1,lte=5"`
	Notes         string  `json:"notes,omitempty"`
}

type ListProductsResponse struct {
	Items []Product `json:"items"`
	KPIs  KPIs      `json:"kpis"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromQuery(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	products, err := h.svc.ListProducts(r.Context(), filters)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	if products == nil {
		products = []Product{}
	}

	data := &ListProductsResponse{
		Items: products,
		KPIs:  ComputeKPIs(products),
	}
	web.RespondOK(w, nil, data)
}

func filtersFromQuery(r *http.Request) (Filters, error) {
	query := r.URL.Query()
	filters := Filters{
		Country:  query.Get("country"),
		Category: query.Get("category"),
	}

	for name, dst := range map[string]**int{"risk_min": &filters.RiskMin, "risk_max": &filters.RiskMax} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		level, err := strconv.Atoi(raw)
		if err != nil {
			return Filters{}, errors.New("invalid " + name)
		}
		*dst = &level
	}

	return filters, nil
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateProductRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := CreateProductParams{
		Country:       req.Country,
		ProductName:   req.ProductName,
		Category:      req.Category,
		HSCode:        req.HSCode,
		Quantity:      req.Quantity,
		DeclaredValue: req.DeclaredValue,
		RiskLevel:     req.RiskLevel,
		Notes:         req.Notes,
	}
	created, err := h.svc.CreateProduct(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidRiskLevel) {
			web.RespondBadRequest(w, err, "risk_level must be 1..5", nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Product recorded."
	web.RespondCreated(w, &msg, &created)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Product deleted."
	web.RespondOK(w, &msg, &struct{}{})
}

type ImportResponse struct {
	Inserted int `json:"inserted"`
}

func (h *Handler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		web.RespondBadRequest(w, err, "file required", nil)
		return
	}
	defer file.Close()

	inserted, err := h.svc.ImportCSV(r.Context(), file)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := "Import complete."
	web.RespondOK(w, &msg, &ImportResponse{Inserted: inserted})
}

const headerDisposition = "Content-Disposition"

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context(), Filters{})
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	w.Header().Set(web.HeaderContentType, "text/csv")
	w.Header().Set(headerDisposition, `attachment; filename=dataset.csv`)
	if err := WriteCSV(w, products); err != nil {
		slog.Error("failed to write csv export", "reason", err)
	}
}

func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context(), Filters{})
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	if products == nil {
		products = []Product{}
	}

	w.Header().Set(web.HeaderContentType, web.MimeJSON)
	w.Header().Set(headerDisposition, `attachment; filename=dataset.json`)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(products); err != nil {
		slog.Error("failed to write json export", "reason", err)
	}
}
