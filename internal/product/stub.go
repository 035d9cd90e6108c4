package product

import (
	"context"
	"io"
)

// StubService is a Service test double with injectable behavior.
type StubService struct {
	ListProductsFunc  func(ctx context.Context, filters Filters) ([]Product, error)
	CreateProductFunc func(ctx context.Context, params CreateProductParams) (Product, error)
	DeleteProductFunc func(ctx context.Context, id int64) error
	ImportCSVFunc     func(ctx context.Context, r io.Reader) (int, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) ListProducts(ctx context.Context, filters Filters) ([]Product, error) {
	return s.ListProductsFunc(ctx, filters)
}

func (s *StubService) CreateProduct(ctx context.Context, params CreateProductParams) (Product, error) {
	return s.CreateProductFunc(ctx, params)
}

func (s *StubService) DeleteProduct(ctx context.Context, id int64) error {
	return s.DeleteProductFunc(ctx, id)
}

func (s *StubService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	return s.ImportCSVFunc(ctx, r)
}

// StubRepository is a ProductRepository test double with injectable behavior.
type StubRepository struct {
	CreateFunc func(ctx context.Context, params CreateProductParams) (Product, error)
	ListFunc   func(ctx context.Context, filters Filters) ([]Product, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ ProductRepository = (*StubRepository)(nil)

func (s *StubRepository) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	return s.CreateFunc(ctx, params)
}

func (s *StubRepository) List(ctx context.Context, filters Filters) ([]Product, error) {
	return s.ListFunc(ctx, filters)
}

func (s *StubRepository) Delete(ctx context.Context, id int64) error {
	return s.DeleteFunc(ctx, id)
}

// StubTxManager runs the function directly without a database.
type StubTxManager struct{}

func (StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
