package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"fintrack/internal/currency"
	"fintrack/internal/database"
	"fintrack/internal/models"
)

func (s *Server) userExpensesForExport(c *gin.Context) ([]models.Expense, *models.User, currency.Info, bool) {
	uid := userID(c)
	user := c.MustGet("user").(*models.User)

	var expenses []models.Expense
	if err := database.DB.Preload("Category").
		Where("user_id = ?", uid).
		Order("date desc, created_at desc").
		Find(&expenses).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return nil, nil, currency.Info{}, false
	}

	return expenses, user, userCurrency(uid), true
}

func categoryName(e models.Expense) string {
	if e.Category != nil {
		return e.Category.Name
	}
	return "N/A"
}

// GET /v1/export/csv
func (s *Server) exportCSV(c *gin.Context) {
	expenses, user, cur, ok := s.userExpensesForExport(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Date", "Title", "Category", "Amount", "Description"})
	for _, e := range expenses {
		w.Write([]string{
			e.Date,
			e.Title,
			categoryName(e),
			currency.Format(e.Amount, cur.Symbol),
			e.Description,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv", user.Username, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv", buf.Bytes())
}

// GET /v1/export/pdf
func (s *Server) exportPDF(c *gin.Context) {
	expenses, user, cur, ok := s.userExpensesForExport(c)
	if !ok {
		return
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Expense Report - %s", user.Username)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	summary := fmt.Sprintf("Total Expenses: %s | Count: %d", currency.Format(total, cur.Symbol), len(expenses))
	pdf.CellFormat(0, 8, tr(summary), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{30, 80, 40, 40}
	headers := []string{"Date", "Title", "Category", "Amount"}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, e := range expenses {
		cells := []string{
			e.Date,
			e.Title,
			categoryName(e),
			currency.Format(e.Amount, cur.Symbol),
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 8, tr(v), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.pdf", user.Username, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", buf.Bytes())
}
