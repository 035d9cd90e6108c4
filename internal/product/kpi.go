package product

import (
	"math"
	"sort"
)

const topN = 10

// KPIs summarizes a set of product records.
type KPIs struct {
	TotalValue       float64      `json:"total_value"`
	TotalQuantity    int          `json:"total_quantity"`
	AvgRisk          float64      `json:"avg_risk"`
	TopCountries     []ValueByKey `json:"top_countries"`
	TopCategories    []ValueByKey `json:"top_categories"`
	RiskDistribution map[int]int  `json:"risk_distribution"`
}

// ValueByKey is a summed declared value grouped by country or category.
type ValueByKey struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// ComputeKPIs aggregates the given rows. The aggregates are computed over the
// rows as filtered, not over the whole table.
func ComputeKPIs(rows []Product) KPIs {
	kpis := KPIs{
		RiskDistribution: make(map[int]int, MaxRiskLevel),
	}
	for level := MinRiskLevel; level <= MaxRiskLevel; level++ {
		kpis.RiskDistribution[level] = 0
	}

	byCountry := make(map[string]float64)
	byCategory := make(map[string]float64)
	riskSum := 0

	for _, row := range rows {
		kpis.TotalValue += row.DeclaredValue
		kpis.TotalQuantity += row.Quantity
		riskSum += row.RiskLevel
		byCountry[row.Country] += row.DeclaredValue
		byCategory[row.Category] += row.DeclaredValue
		kpis.RiskDistribution[row.RiskLevel]++
	}

	if len(rows) > 0 {
		kpis.AvgRisk = round2(float64(riskSum) / float64(len(rows)))
	}
	kpis.TotalValue = round2(kpis.TotalValue)
	kpis.TopCountries = topValues(byCountry)
	kpis.TopCategories = topValues(byCategory)

	return kpis
}

func topValues(byKey map[string]float64) []ValueByKey {
	ranked := make([]ValueByKey, 0, len(byKey))
	for key, value := range byKey {
		ranked = append(ranked, ValueByKey{Key: key, Value: round2(value)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Key < ranked[j].Key
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
