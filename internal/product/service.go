package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ferdiebergado/inflowkit/internal/platform/db"
)

var ErrInvalidRiskLevel = errors.New("product service: risk level out of range")

// ProductRepository is the storage contract for product records.
type ProductRepository interface {
	Create(ctx context.Context, params CreateProductParams) (Product, error)
	List(ctx context.Context, filters Filters) ([]Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo  ProductRepository
	txMgr db.TxManager
}

var _ Service = (*service)(nil)

func NewService(repo ProductRepository, txMgr db.TxManager) *service {
	return &service{
		repo:  repo,
		txMgr: txMgr,
	}
}

func (s *service) ListProducts(ctx context.Context, filters Filters) ([]Product, error) {
	products, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, params CreateProductParams) (Product, error) {
	if params.RiskLevel < MinRiskLevel || params.RiskLevel > MaxRiskLevel {
		return Product{}, ErrInvalidRiskLevel
	}

	params.Country = strings.TrimSpace(params.Country)
	params.ProductName = strings.TrimSpace(params.ProductName)
	params.Category = strings.TrimSpace(params.Category)
	params.HSCode = strings.TrimSpace(params.HSCode)
	params.Notes = strings.TrimSpace(params.Notes)

	created, err := s.repo.Create(ctx, params)
	if err != nil {
		return Product{}, fmt.Errorf("create product %q: %w", params.ProductName, err)
	}
	return created, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// ImportCSV inserts the records from r in a single transaction. Rows that fail
// to parse are skipped, never aborting the batch.
func (s *service) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	records, err := ParseCSV(r)
	if err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	inserted := 0
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		for _, params := range records {
			if _, err := s.repo.Create(txCtx, params); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import products: %w", err)
	}

	return inserted, nil
}
