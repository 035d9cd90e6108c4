package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	email text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id bigserial PRIMARY KEY,
	country text NOT NULL,
	product_name text NOT NULL,
	category text NOT NULL,
	hs_code text NOT NULL DEFAULT '',
	quantity integer NOT NULL,
	declared_value numeric NOT NULL,
	risk_level integer NOT NULL CHECK (risk_level BETWEEN 1 AND 5),
	notes text NOT NULL DEFAULT '',
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_country ON products (country);
CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products (created_at DESC);
`

// EnsureSchema creates the tables on startup when they do not exist yet.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	slog.Info("Ensuring database schema...")
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
