// Package analytics computes derived views over a user's journal entries.
// Every function is a read-only single pass; callers fetch the entries and
// decide how to present the result.
package analytics

import (
	"sort"
	"time"

	"github.com/farmbook/farmbook/models"
)

// TrendPoint is one (sowing date, profit) pair of the profit trend.
type TrendPoint struct {
	SowingDate string  `json:"sowing_date"`
	Profit     float64 `json:"profit"`
}

// CropProfit is the summed profit for one crop.
type CropProfit struct {
	CropName    string  `json:"crop_name"`
	TotalProfit float64 `json:"total_profit"`
}

// CropExpense is the summed expenses for one crop.
type CropExpense struct {
	CropName      string  `json:"crop_name"`
	TotalExpenses float64 `json:"total_expenses"`
}

// ProfitTrend returns profit per entry ordered ascending by sowing date.
// An empty entry set yields an empty trend, not an error.
func ProfitTrend(entries []models.FarmJournal) []TrendPoint {
	sorted := make([]models.FarmJournal, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SowingDate.Before(sorted[j].SowingDate)
	})

	points := make([]TrendPoint, 0, len(sorted))
	for _, entry := range sorted {
		points = append(points, TrendPoint{
			SowingDate: entry.SowingDate.Format(time.DateOnly),
			Profit:     entry.Profit,
		})
	}
	return points
}

// CropComparison sums profit grouped by crop name, in first-seen order.
func CropComparison(entries []models.FarmJournal) []CropProfit {
	totals := map[string]float64{}
	order := make([]string, 0)
	for _, entry := range entries {
		if _, seen := totals[entry.CropName]; !seen {
			order = append(order, entry.CropName)
		}
		totals[entry.CropName] += entry.Profit
	}

	result := make([]CropProfit, 0, len(order))
	for _, crop := range order {
		result = append(result, CropProfit{CropName: crop, TotalProfit: totals[crop]})
	}
	return result
}

// CostBreakdown sums expenses grouped by crop name, in first-seen order.
func CostBreakdown(entries []models.FarmJournal) []CropExpense {
	totals := map[string]float64{}
	order := make([]string, 0)
	for _, entry := range entries {
		if _, seen := totals[entry.CropName]; !seen {
			order = append(order, entry.CropName)
		}
		totals[entry.CropName] += entry.Expenses
	}

	result := make([]CropExpense, 0, len(order))
	for _, crop := range order {
		result = append(result, CropExpense{CropName: crop, TotalExpenses: totals[crop]})
	}
	return result
}
