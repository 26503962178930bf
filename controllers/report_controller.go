package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"github.com/farmbook/farmbook/models"
	"github.com/farmbook/farmbook/utils"
)

// ReportController renders a user's journal into downloadable documents.
type ReportController struct {
	db *gorm.DB
}

// NewReportController creates a new ReportController instance.
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{db: db}
}

// ExportPDF renders every journal entry owned by the caller into a paginated
// PDF, one bordered block per entry, and streams it as an attachment.
func (r *ReportController) ExportPDF(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var entries []models.FarmJournal
	if err := r.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load journal entries")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(200, 10, "Farm Journal Report", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	for _, entry := range entries {
		pdf.CellFormat(200, 10, fmt.Sprintf("Crop: %s - %s", entry.CropName, entry.Season), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		body := fmt.Sprintf(
			"Location: %s\nSowing Date: %s\nHarvest Date: %s\nYield: %g kg\nUnit Price: Rs.%g per kg\nExpenses: Rs.%g\nProfit: Rs.%g\nNotes: %s\n",
			entry.FarmLocation,
			entry.SowingDate.Format(time.DateOnly),
			formatOptionalDate(entry.HarvestDate),
			entry.YieldAmount,
			entry.UnitPrice,
			entry.Expenses,
			entry.Profit,
			entry.Notes,
		)
		pdf.MultiCell(0, 8, body, "1", "", false)
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 12)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to render report")
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="farm_journal.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "None"
	}
	return t.Format(time.DateOnly)
}
