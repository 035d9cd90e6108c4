package product_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ferdiebergado/inflowkit/internal/product"
)

func TestService_CreateProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  product.CreateProductParams
		wantErr error
	}{
		{"Valid product", product.CreateProductParams{
			Country: " China ", ProductName: "Mobile phones", Category: "Electronics",
			Quantity: 100, DeclaredValue: 500000, RiskLevel: 3,
		}, nil},
		{"Risk level too high", product.CreateProductParams{
			Country: "China", ProductName: "Mobile phones", Category: "Electronics",
			Quantity: 100, DeclaredValue: 500000, RiskLevel: 6,
		}, product.ErrInvalidRiskLevel},
		{"Risk level too low", product.CreateProductParams{
			Country: "China", ProductName: "Mobile phones", Category: "Electronics",
			Quantity: 100, DeclaredValue: 500000, RiskLevel: 0,
		}, product.ErrInvalidRiskLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotParams product.CreateProductParams
			repo := &product.StubRepository{
				CreateFunc: func(_ context.Context, params product.CreateProductParams) (product.Product, error) {
					gotParams = params
					return product.Product{ID: 1}, nil
				},
			}
			svc := product.NewService(repo, product.StubTxManager{})

			_, err := svc.CreateProduct(context.Background(), tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.CreateProduct() error = %v, want: %v", err, tt.wantErr)
			}

			if tt.wantErr == nil && gotParams.Country != strings.TrimSpace(tt.params.Country) {
				t.Errorf("repo received country %q, want trimmed %q", gotParams.Country, strings.TrimSpace(tt.params.Country))
			}
		})
	}
}

func TestService_ImportCSV(t *testing.T) {
	t.Parallel()

	const doc = "country,product_name,category,hs_code,quantity,declared_value,risk_level,notes\n" +
		"China,Mobile phones,Electronics,8517,100,500000,3,\n" +
		"broken,row,with,bad,numbers,x,y,z\n" +
		"India,Rice,Food & Beverages,1006,200,80000,1,\n"

	var created []product.CreateProductParams
	repo := &product.StubRepository{
		CreateFunc: func(_ context.Context, params product.CreateProductParams) (product.Product, error) {
			created = append(created, params)
			return product.Product{ID: int64(len(created))}, nil
		},
	}
	svc := product.NewService(repo, product.StubTxManager{})

	inserted, err := svc.ImportCSV(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("svc.ImportCSV() error = %v", err)
	}

	if got, want := inserted, 2; got != want {
		t.Errorf("inserted = %d, want: %d", got, want)
	}

	if got, want := len(created), 2; got != want {
		t.Errorf("len(created) = %d, want: %d", got, want)
	}
}

func TestService_ImportCSV_RepoFailureAborts(t *testing.T) {
	t.Parallel()

	const doc = "country,product_name,category,quantity,declared_value,risk_level\n" +
		"China,Mobile phones,Electronics,100,500000,3\n"

	wantErr := errors.New("insert failed")
	repo := &product.StubRepository{
		CreateFunc: func(_ context.Context, _ product.CreateProductParams) (product.Product, error) {
			return product.Product{}, wantErr
		},
	}
	svc := product.NewService(repo, product.StubTxManager{})

	if _, err := svc.ImportCSV(context.Background(), strings.NewReader(doc)); !errors.Is(err, wantErr) {
		t.Errorf("svc.ImportCSV() error = %v, want: %v", err, wantErr)
	}
}
