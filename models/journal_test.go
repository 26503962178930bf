package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFinancials(t *testing.T) {
	entry := FarmJournal{
		CropName:    "Wheat",
		YieldAmount: 100,
		SoldAmount:  80,
		UnitPrice:   20,
		Expenses:    300,
	}
	entry.ComputeFinancials()

	assert.Equal(t, 1600.0, entry.TotalRevenue)
	assert.Equal(t, 1300.0, entry.Profit)
}

func TestComputeFinancials_NothingSold(t *testing.T) {
	entry := FarmJournal{
		YieldAmount: 500,
		SoldAmount:  0,
		UnitPrice:   15,
		Expenses:    1200,
	}
	entry.ComputeFinancials()

	assert.Equal(t, 0.0, entry.TotalRevenue)
	assert.Equal(t, -1200.0, entry.Profit)
}

func TestComputeFinancials_Overwrite(t *testing.T) {
	// Derived fields must be replaced, never accumulated.
	entry := FarmJournal{
		SoldAmount:   10,
		UnitPrice:    5,
		Expenses:     20,
		TotalRevenue: 9999,
		Profit:       9999,
	}
	entry.ComputeFinancials()

	assert.Equal(t, 50.0, entry.TotalRevenue)
	assert.Equal(t, 30.0, entry.Profit)
}
