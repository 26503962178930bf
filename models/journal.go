package models

import "time"

// FarmJournal is one farming-cycle record: crop, dates, quantities, money.
// TotalRevenue and Profit are derived fields; they are recomputed through
// ComputeFinancials on every create and update and never mutated directly.
type FarmJournal struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	CropName     string     `gorm:"size:100;not null" json:"crop_name"`
	Season       string     `gorm:"size:50" json:"season"`
	FarmLocation string     `gorm:"type:text" json:"farm_location"`
	SowingDate   time.Time  `gorm:"type:date;not null" json:"-"`
	HarvestDate  *time.Time `gorm:"type:date" json:"-"`
	YieldAmount  float64    `gorm:"not null" json:"yield_amount"`
	SoldAmount   float64    `gorm:"not null;default:0" json:"sold_amount"`
	UnitPrice    float64    `gorm:"not null" json:"unit_price"`
	TotalRevenue float64    `gorm:"not null;default:0" json:"total_revenue"`
	Expenses     float64    `gorm:"not null" json:"expenses"`
	Profit       float64    `gorm:"not null;default:0" json:"profit"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ComputeFinancials recomputes the derived fields from the sold quantity,
// unit price and expenses. Yield that was not sold earns nothing.
func (j *FarmJournal) ComputeFinancials() {
	j.TotalRevenue = j.SoldAmount * j.UnitPrice
	j.Profit = j.TotalRevenue - j.Expenses
}
