package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmbook/farmbook/models"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleEntries() []models.FarmJournal {
	return []models.FarmJournal{
		{CropName: "Rice", SowingDate: day("2024-06-15"), Profit: 500, Expenses: 200},
		{CropName: "Wheat", SowingDate: day("2024-01-10"), Profit: -100, Expenses: 400},
		{CropName: "Rice", SowingDate: day("2024-03-20"), Profit: 250, Expenses: 150},
	}
}

func TestProfitTrend_SortedBySowingDate(t *testing.T) {
	points := ProfitTrend(sampleEntries())
	require.Len(t, points, 3)

	assert.Equal(t, "2024-01-10", points[0].SowingDate)
	assert.Equal(t, -100.0, points[0].Profit)
	assert.Equal(t, "2024-03-20", points[1].SowingDate)
	assert.Equal(t, 250.0, points[1].Profit)
	assert.Equal(t, "2024-06-15", points[2].SowingDate)
	assert.Equal(t, 500.0, points[2].Profit)
}

func TestProfitTrend_DoesNotMutateInput(t *testing.T) {
	entries := sampleEntries()
	ProfitTrend(entries)
	assert.Equal(t, "Rice", entries[0].CropName)
	assert.Equal(t, day("2024-06-15"), entries[0].SowingDate)
}

func TestCropComparison_FirstSeenOrder(t *testing.T) {
	result := CropComparison(sampleEntries())
	require.Len(t, result, 2)

	assert.Equal(t, "Rice", result[0].CropName)
	assert.Equal(t, 750.0, result[0].TotalProfit)
	assert.Equal(t, "Wheat", result[1].CropName)
	assert.Equal(t, -100.0, result[1].TotalProfit)
}

func TestCostBreakdown_FirstSeenOrder(t *testing.T) {
	result := CostBreakdown(sampleEntries())
	require.Len(t, result, 2)

	assert.Equal(t, "Rice", result[0].CropName)
	assert.Equal(t, 350.0, result[0].TotalExpenses)
	assert.Equal(t, "Wheat", result[1].CropName)
	assert.Equal(t, 400.0, result[1].TotalExpenses)
}

func TestEmptyInputs(t *testing.T) {
	assert.NotNil(t, ProfitTrend(nil))
	assert.Empty(t, ProfitTrend(nil))

	assert.NotNil(t, CropComparison(nil))
	assert.Empty(t, CropComparison(nil))

	assert.NotNil(t, CostBreakdown(nil))
	assert.Empty(t, CostBreakdown(nil))
}
