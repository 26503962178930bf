package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmbook/farmbook/models"
	"github.com/farmbook/farmbook/utils"
)

// JournalController manages CRUD operations for farm journal entries.
// Derived revenue/profit are recomputed on every write.
type JournalController struct {
	db *gorm.DB
}

// NewJournalController creates a new JournalController instance.
func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{db: db}
}

type journalRequest struct {
	CropName     string   `json:"crop_name" binding:"required"`
	Season       string   `json:"season"`
	FarmLocation string   `json:"farm_location"`
	SowingDate   string   `json:"sowing_date" binding:"required"`
	HarvestDate  string   `json:"harvest_date"`
	YieldAmount  *float64 `json:"yield_amount" binding:"required"`
	SoldAmount   *float64 `json:"sold_amount"`
	UnitPrice    *float64 `json:"unit_price" binding:"required"`
	Expenses     *float64 `json:"expenses" binding:"required"`
	Notes        string   `json:"notes"`
}

type journalEntryResponse struct {
	ID           uint    `json:"id"`
	CropName     string  `json:"crop_name"`
	Season       string  `json:"season"`
	FarmLocation string  `json:"farm_location"`
	SowingDate   string  `json:"sowing_date"`
	HarvestDate  *string `json:"harvest_date"`
	YieldAmount  float64 `json:"yield_amount"`
	SoldAmount   float64 `json:"sold_amount"`
	UnitPrice    float64 `json:"unit_price"`
	TotalRevenue float64 `json:"total_revenue"`
	Expenses     float64 `json:"expenses"`
	Profit       float64 `json:"profit"`
	Notes        string  `json:"notes"`
	CreatedAt    string  `json:"created_at"`
}

// CreateEntry persists a new journal entry owned by the caller. The sold
// quantity defaults to zero and a blank or "None" harvest date becomes NULL.
func (j *JournalController) CreateEntry(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req journalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	sowing, err := time.Parse(time.DateOnly, req.SowingDate)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "sowing_date must be YYYY-MM-DD")
		return
	}
	harvest, err := parseHarvestDate(req.HarvestDate)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "harvest_date must be YYYY-MM-DD")
		return
	}

	soldAmount := 0.0
	if req.SoldAmount != nil {
		soldAmount = *req.SoldAmount
	}

	entry := models.FarmJournal{
		UserID:       userID,
		CropName:     strings.TrimSpace(req.CropName),
		Season:       req.Season,
		FarmLocation: req.FarmLocation,
		SowingDate:   sowing,
		HarvestDate:  harvest,
		YieldAmount:  *req.YieldAmount,
		SoldAmount:   soldAmount,
		UnitPrice:    *req.UnitPrice,
		Expenses:     *req.Expenses,
		Notes:        utils.Sanitize(req.Notes),
	}

	entry.ComputeFinancials()

	if err := j.db.Create(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create journal entry")
		return
	}

	utils.Message(ctx, http.StatusCreated, "Journal entry created successfully")
}

// ListEntries returns all entries owned by the caller, newest first.
func (j *JournalController) ListEntries(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var entries []models.FarmJournal
	if err := j.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list journal entries")
		return
	}

	result := make([]journalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toJournalResponse(entry))
	}

	ctx.JSON(http.StatusOK, result)
}

// UpdateEntry overwrites the mutable fields of an entry owned by the caller
// and recomputes the derived fields. A missing sold_amount keeps the stored
// value; entries owned by other users answer 404.
func (j *JournalController) UpdateEntry(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var entry models.FarmJournal
	if err := j.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, "Entry not found")
		return
	}

	var req journalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	sowing, err := time.Parse(time.DateOnly, req.SowingDate)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "sowing_date must be YYYY-MM-DD")
		return
	}
	harvest, err := parseHarvestDate(req.HarvestDate)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "harvest_date must be YYYY-MM-DD")
		return
	}

	entry.CropName = strings.TrimSpace(req.CropName)
	entry.Season = req.Season
	entry.FarmLocation = req.FarmLocation
	entry.SowingDate = sowing
	entry.HarvestDate = harvest
	entry.YieldAmount = *req.YieldAmount
	if req.SoldAmount != nil {
		entry.SoldAmount = *req.SoldAmount
	}
	entry.UnitPrice = *req.UnitPrice
	entry.Expenses = *req.Expenses
	entry.Notes = utils.Sanitize(req.Notes)

	entry.ComputeFinancials()

	if err := j.db.Save(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to update journal entry")
		return
	}

	utils.Message(ctx, http.StatusOK, "Journal entry updated successfully")
}

// DeleteEntry removes an entry owned by the caller; 404 otherwise.
func (j *JournalController) DeleteEntry(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var entry models.FarmJournal
	if err := j.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, "Entry not found")
		return
	}

	if err := j.db.Delete(&entry).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete journal entry")
		return
	}

	utils.Message(ctx, http.StatusOK, "Journal entry deleted successfully")
}

// parseHarvestDate normalizes the optional harvest date: empty and the
// literal "None" map to NULL.
func parseHarvestDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "None" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toJournalResponse(entry models.FarmJournal) journalEntryResponse {
	var harvest *string
	if entry.HarvestDate != nil {
		s := entry.HarvestDate.Format(time.DateOnly)
		harvest = &s
	}
	return journalEntryResponse{
		ID:           entry.ID,
		CropName:     entry.CropName,
		Season:       entry.Season,
		FarmLocation: entry.FarmLocation,
		SowingDate:   entry.SowingDate.Format(time.DateOnly),
		HarvestDate:  harvest,
		YieldAmount:  entry.YieldAmount,
		SoldAmount:   entry.SoldAmount,
		UnitPrice:    entry.UnitPrice,
		TotalRevenue: entry.TotalRevenue,
		Expenses:     entry.Expenses,
		Profit:       entry.Profit,
		Notes:        entry.Notes,
		CreatedAt:    entry.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
