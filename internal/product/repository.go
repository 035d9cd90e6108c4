package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ferdiebergado/inflowkit/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("product repository: product not found")
	ErrQueryFailed = errors.New("product repository: query failed")
)

type Repository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

// executor returns the current transaction when one is in the context,
// otherwise the pooled connection.
func (r *Repository) executor(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

const queryProductCreate = `
INSERT INTO products (country, product_name, category, hs_code, quantity, declared_value, risk_level, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at
`

func (r *Repository) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	p := Product{
		Country:       params.Country,
		ProductName:   params.ProductName,
		Category:      params.Category,
		HSCode:        params.HSCode,
		Quantity:      params.Quantity,
		DeclaredValue: params.DeclaredValue,
		RiskLevel:     params.RiskLevel,
		Notes:         params.Notes,
	}

	row := r.executor(ctx).QueryRowContext(ctx, queryProductCreate,
		params.Country, params.ProductName, params.Category, params.HSCode,
		params.Quantity, params.DeclaredValue, params.RiskLevel, params.Notes)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return p, fmt.Errorf("%w: create product %q: %v", ErrQueryFailed, params.ProductName, err)
	}
	return p, nil
}

const queryProductList = `
SELECT id, country, product_name, category, hs_code, quantity, declared_value, risk_level, notes, created_at
FROM products
`

func (r *Repository) List(ctx context.Context, filters Filters) ([]Product, error) {
	var conds []string
	var args []any

	if filters.Country != "" {
		args = append(args, filters.Country)
		conds = append(conds, fmt.Sprintf("country = $%d", len(args)))
	}
	if filters.Category != "" {
		args = append(args, filters.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.RiskMin != nil {
		args = append(args, *filters.RiskMin)
		conds = append(conds, fmt.Sprintf("risk_level >= $%d", len(args)))
	}
	if filters.RiskMax != nil {
		args = append(args, *filters.RiskMax)
		conds = append(conds, fmt.Sprintf("risk_level <= $%d", len(args)))
	}

	query := queryProductList
	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	query += "ORDER BY created_at DESC, id DESC"

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Country, &p.ProductName, &p.Category, &p.HSCode,
			&p.Quantity, &p.DeclaredValue, &p.RiskLevel, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("product repository: scan row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product repository: iterate over product rows: %w", err)
	}

	return products, nil
}

const queryProductDelete = "DELETE FROM products WHERE id = $1"

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.executor(ctx).ExecContext(ctx, queryProductDelete, id); err != nil {
		return fmt.Errorf("%w: delete product %d: %v", ErrQueryFailed, id, err)
	}
	return nil
}
