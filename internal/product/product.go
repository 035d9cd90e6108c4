// Package product manages product inflow declarations: the records of goods
// entering the country, their declared values and assessed risk levels.
package product

import "time"

const (
	MinRiskLevel = 1
	MaxRiskLevel = 5
)

type Product struct {
	ID            int64     `json:"id"`
	Country       string    `json:"country"`
	ProductName   string    `json:"product_name"`
	Category      string    `json:"category"`
	HSCode        string    `json:"hs_code,omitempty"`
	Quantity      int       `json:"quantity"`
	DeclaredValue float64   `json:"declared_value"`
	RiskLevel     int       `json:"risk_level"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateProductParams struct {
	Country       string
	ProductName   string
	Category      string
	HSCode        string
	Quantity      int
	DeclaredValue float64
	RiskLevel     int
	Notes         string
}

// Filters narrows a product listing. Country and Category are exact matches;
// nil risk bounds mean unbounded.
type Filters struct {
	Country  string
	Category string
	RiskMin  *int
	RiskMax  *int
}
