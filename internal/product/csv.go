package product

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVHeader is the column order used by both import and export.
var CSVHeader = []string{
	"country", "product_name", "category", "hs_code",
	"quantity", "declared_value", "risk_level", "notes",
}

// ParseCSV reads product records from a CSV document with a header row.
// Malformed rows are skipped; only an unreadable document is an error.
func ParseCSV(r io.Reader) ([]CreateProductParams, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var records []CreateProductParams
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		params, ok := rowToParams(index, row)
		if !ok {
			continue
		}
		records = append(records, params)
	}

	return records, nil
}

func rowToParams(index map[string]int, row []string) (CreateProductParams, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	quantity, err := strconv.Atoi(field("quantity"))
	if err != nil {
		return CreateProductParams{}, false
	}

	declaredValue, err := strconv.ParseFloat(field("declared_value"), 64)
	if err != nil {
		return CreateProductParams{}, false
	}

	riskLevel, err := strconv.Atoi(field("risk_level"))
	if err != nil || riskLevel < MinRiskLevel || riskLevel > MaxRiskLevel {
		return CreateProductParams{}, false
	}

	params := CreateProductParams{
		Country:       field("country"),
		ProductName:   field("product_name"),
		Category:      field("category"),
		HSCode:        field("hs_code"),
		Quantity:      quantity,
		DeclaredValue: declaredValue,
		RiskLevel:     riskLevel,
		Notes:         field("notes"),
	}

	if params.Country == "" || params.ProductName == "" || params.Category == "" {
		return CreateProductParams{}, false
	}

	return params, true
}

// WriteCSV writes the records as a CSV document with a leading id column.
func WriteCSV(w io.Writer, products []Product) error {
	writer := csv.NewWriter(w)

	header := append([]string{"id"}, CSVHeader...)
	header = append(header, "created_at")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Country,
			p.ProductName,
			p.Category,
			p.HSCode,
			strconv.Itoa(p.Quantity),
			strconv.FormatFloat(p.DeclaredValue, 'f', -1, 64),
			strconv.Itoa(p.RiskLevel),
			p.Notes,
			p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record %d: %w", p.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
