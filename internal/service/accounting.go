package service

import (
	"context"

	"fleet-telemetry-service/internal/repository"
)

type AccountingInput struct {
	DateFrom *string
	DateTo   *string
	Plate    *string
}

type ExpenseEntry struct {
	Plate       string  `json:"plate"`
	TotalCost   float64 `json:"total_cost"`
	TotalLiters float64 `json:"total_liters"`
	TripCount   int     `json:"trip_count"`
}

type AccountingResult struct {
	Entries     []ExpenseEntry `json:"entries"`
	TotalCost   float64        `json:"total_cost"`
	TotalLiters float64        `json:"total_liters"`
}

// FuelExpense totals fuel spend per plate for the accounting view. Unlike
// the efficiency analysis it covers the whole fleet, not one category.
func (s *AnalysisService) FuelExpense(ctx context.Context, input AccountingInput) (*AccountingResult, error) {
	rows := fetchAll(ctx, s.log, "fuel_records", s.fuel, repository.FactFilter{
		Plate:    input.Plate,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
	})

	byPlate := make(map[string]*ExpenseEntry)
	var order []string
	for _, row := range rows {
		if row.Plate == "" {
			continue
		}
		entry, seen := byPlate[row.Plate]
		if !seen {
			entry = &ExpenseEntry{Plate: row.Plate}
			byPlate[row.Plate] = entry
			order = append(order, row.Plate)
		}
		entry.TotalCost += row.LineTotal
		entry.TotalLiters += row.FuelAmount
		entry.TripCount++
	}

	result := &AccountingResult{Entries: []ExpenseEntry{}}
	for _, plate := range order {
		entry := byPlate[plate]
		entry.TotalCost = round2(entry.TotalCost)
		entry.TotalLiters = round2(entry.TotalLiters)
		result.Entries = append(result.Entries, *entry)
		result.TotalCost += entry.TotalCost
		result.TotalLiters += entry.TotalLiters
	}
	result.TotalCost = round2(result.TotalCost)
	result.TotalLiters = round2(result.TotalLiters)
	return result, nil
}
