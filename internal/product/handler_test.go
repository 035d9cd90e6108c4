package product_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/inflowkit/internal/pkg/message"
	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
	"github.com/ferdiebergado/inflowkit/internal/product"
)

func TestHandler_ListProducts(t *testing.T) {
	t.Parallel()

	rows := []product.Product{
		{ID: 1, Country: "China", ProductName: "Mobile phones", Category: "Electronics", Quantity: 100, DeclaredValue: 500000, RiskLevel: 3},
		{ID: 2, Country: "India", ProductName: "Rice", Category: "Food & Beverages", Quantity: 200, DeclaredValue: 80000, RiskLevel: 1},
	}

	var gotFilters product.Filters
	svc := &product.StubService{
		ListProductsFunc: func(_ context.Context, filters product.Filters) ([]product.Product, error) {
			gotFilters = filters
			return rows, nil
		},
	}
	handler := product.NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products?country=China&risk_min=2&risk_max=4", nil)
	rec := httptest.NewRecorder()
	handler.ListProducts(rec, req)

	if got, want := rec.Code, http.StatusOK; got != want {
		t.Fatalf(message.FmtErrStatusCode, got, want)
	}

	if gotFilters.Country != "China" {
		t.Errorf("filters.Country = %q, want: %q", gotFilters.Country, "China")
	}
	if gotFilters.RiskMin == nil || *gotFilters.RiskMin != 2 {
		t.Errorf("filters.RiskMin = %v, want: 2", gotFilters.RiskMin)
	}
	if gotFilters.RiskMax == nil || *gotFilters.RiskMax != 4 {
		t.Errorf("filters.RiskMax = %v, want: 4", gotFilters.RiskMax)
	}

	var apiRes web.OKResponse[*product.ListProductsResponse]
	if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
		t.Fatal(err)
	}

	if got, want := len(apiRes.Data.Items), 2; got != want {
		t.Errorf("len(apiRes.Data.Items) = %d, want: %d", got, want)
	}

	if got, want := apiRes.Data.KPIs.TotalQuantity, 300; got != want {
		t.Errorf("apiRes.Data.KPIs.TotalQuantity = %d, want: %d", got, want)
	}
}

func TestHandler_ListProducts_BadRiskFilter(t *testing.T) {
	t.Parallel()

	handler := product.NewHandler(&product.StubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/products?risk_min=high", nil)
	rec := httptest.NewRecorder()
	handler.ListProducts(rec, req)

	if got, want := rec.Code, http.StatusBadRequest; got != want {
		t.Errorf(message.FmtErrStatusCode, got, want)
	}
}

func TestHandler_CreateProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		createFunc func(ctx context.Context, params product.CreateProductParams) (product.Product, error)
		code       int
	}{
		{"Successful creation",
			func(_ context.Context, params product.CreateProductParams) (product.Product, error) {
				return product.Product{ID: 1, Country: params.Country, ProductName: params.ProductName}, nil
			},
			http.StatusCreated},
		{"Risk level out of range",
			func(_ context.Context, _ product.CreateProductParams) (product.Product, error) {
				return product.Product{}, product.ErrInvalidRiskLevel
			},
			http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &product.StubService{CreateProductFunc: tt.createFunc}
			handler := product.NewHandler(svc)

			params := product.CreateProductRequest{
				Country:       "China",
				ProductName:   "Mobile phones",
				Category:      "Electronics",
				Quantity:      100,
				DeclaredValue: 500000,
				RiskLevel:     3,
			}
			paramsCtx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/api/products", nil)
			rec := httptest.NewRecorder()
			handler.CreateProduct(rec, req)

			if got, want := rec.Code, tt.code; got != want {
				t.Errorf(message.FmtErrStatusCode, got, want)
			}
		})
	}
}

func TestHandler_DeleteProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		code int
	}{
		{"Existing id", "42", http.StatusOK},
		{"Malformed id", "abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID int64
			svc := &product.StubService{
				DeleteProductFunc: func(_ context.Context, id int64) error {
					gotID = id
					return nil
				},
			}
			handler := product.NewHandler(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/products/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			handler.DeleteProduct(rec, req)

			if got, want := rec.Code, tt.code; got != want {
				t.Fatalf(message.FmtErrStatusCode, got, want)
			}

			if tt.code == http.StatusOK && gotID != 42 {
				t.Errorf("svc received id %d, want: 42", gotID)
			}
		})
	}
}

func TestHandler_ImportCSV(t *testing.T) {
	t.Parallel()

	svc := &product.StubService{
		ImportCSVFunc: func(_ context.Context, r io.Reader) (int, error) {
			if _, err := io.ReadAll(r); err != nil {
				return 0, err
			}
			return 3, nil
		},
	}
	handler := product.NewHandler(svc)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "products.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("country,product_name\n")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/products/import", &body)
	req.Header.Set(web.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ImportCSV(rec, req)

	if got, want := rec.Code, http.StatusOK; got != want {
		t.Fatalf(message.FmtErrStatusCode, got, want)
	}

	var apiRes web.OKResponse[*product.ImportResponse]
	if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
		t.Fatal(err)
	}

	if got, want := apiRes.Data.Inserted, 3; got != want {
		t.Errorf("apiRes.Data.Inserted = %d, want: %d", got, want)
	}
}

func TestHandler_ImportCSV_MissingFile(t *testing.T) {
	t.Parallel()

	handler := product.NewHandler(&product.StubService{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/products/import", &body)
	req.Header.Set(web.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ImportCSV(rec, req)

	if got, want := rec.Code, http.StatusBadRequest; got != want {
		t.Errorf(message.FmtErrStatusCode, got, want)
	}
}

func TestHandler_ExportCSV(t *testing.T) {
	t.Parallel()

	svc := &product.StubService{
		ListProductsFunc: func(_ context.Context, _ product.Filters) ([]product.Product, error) {
			return []product.Product{{ID: 1, Country: "China", ProductName: "Rice", Category: "Food & Beverages", Quantity: 1, DeclaredValue: 100, RiskLevel: 1}}, nil
		},
	}
	handler := product.NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/export.csv", nil)
	rec := httptest.NewRecorder()
	handler.ExportCSV(rec, req)

	if got, want := rec.Code, http.StatusOK; got != want {
		t.Fatalf(message.FmtErrStatusCode, got, want)
	}

	if got, want := rec.Header().Get("Content-Disposition"), "attachment; filename=dataset.csv"; got != want {
		t.Errorf("Content-Disposition = %q, want: %q", got, want)
	}

	if got, want := rec.Header().Get(web.HeaderContentType), "text/csv"; got != want {
		t.Errorf("Content-Type = %q, want: %q", got, want)
	}
}

func TestHandler_HSCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		code   int
		hsCode string
	}{
		{"Known product", "?product=Mobile+Phone", http.StatusOK, "8517.12"},
		{"Unknown product", "?product=submarine", http.StatusNotFound, ""},
		{"Missing query param", "", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := product.NewHandler(&product.StubService{})

			req := httptest.NewRequest(http.MethodGet, "/api/hs-codes"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.HSCode(rec, req)

			if got, want := rec.Code, tt.code; got != want {
				t.Fatalf(message.FmtErrStatusCode, got, want)
			}

			if tt.hsCode == "" {
				return
			}

			var apiRes web.OKResponse[*product.HSCodeResponse]
			if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
				t.Fatal(err)
			}

			if got, want := apiRes.Data.HSCode, tt.hsCode; got != want {
				t.Errorf("apiRes.Data.HSCode = %q, want: %q", got, want)
			}
		})
	}
}
