package controllers

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
)

type bookingReportSummary struct {
	TotalBookings  int
	TotalRevenue   float64
	TotalDiscounts float64
	TotalGuests    int
	Confirmed      int
	Cancelled      int
	Completed      int
	Pending        int
}

func reportPeriodRange(period string) (time.Time, time.Time, bool) {
	now := time.Now()
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.Add(24 * time.Hour), true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		return now.AddDate(0, 0, -30).Truncate(24 * time.Hour), now.Add(24 * time.Hour), true
	}
	return time.Time{}, time.Time{}, false
}

func fetchBookingsForReport(start, end time.Time) ([]models.Booking, bookingReportSummary, error) {
	var bookings []models.Booking
	err := config.DB.Where("created_at >= ? AND created_at <= ?", start, end).
		Preload("Business").Preload("Product").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, bookingReportSummary{}, err
	}

	var summary bookingReportSummary
	for _, b := range bookings {
		summary.TotalBookings++
		summary.TotalGuests += b.NumberOfGuests
		summary.TotalRevenue += b.DiscountedPrice
		summary.TotalDiscounts += b.OriginalPrice - b.DiscountedPrice
		switch b.Status {
		case models.BookingStatusConfirmed:
			summary.Confirmed++
		case models.BookingStatusCancelled:
			summary.Cancelled++
		case models.BookingStatusCompleted:
			summary.Completed++
		default:
			summary.Pending++
		}
	}
	summary.TotalRevenue = utils.Round2(summary.TotalRevenue)
	summary.TotalDiscounts = utils.Round2(summary.TotalDiscounts)

	return bookings, summary, nil
}

// GetBookingReport returns the booking report summary for a period
func GetBookingReport(c *gin.Context) {
	utils.LogInfo("GetBookingReport called")

	period := c.DefaultQuery("period", "day")
	start, end, ok := reportPeriodRange(period)
	if !ok {
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	bookings, summary, err := fetchBookingsForReport(start, end)
	if err != nil {
		utils.LogError("Failed to fetch bookings for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", err.Error())
		return
	}

	rows := make([]gin.H, len(bookings))
	for i := range bookings {
		rows[i] = bookingResponse(&bookings[i])
	}

	utils.Success(c, "Booking report generated", gin.H{
		"period": period,
		"from":   start.Format("2006-01-02"),
		"to":     end.Format("2006-01-02"),
		"summary": gin.H{
			"total_bookings":  summary.TotalBookings,
			"total_revenue":   summary.TotalRevenue,
			"total_discounts": summary.TotalDiscounts,
			"total_guests":    summary.TotalGuests,
			"confirmed":       summary.Confirmed,
			"cancelled":       summary.Cancelled,
			"completed":       summary.Completed,
			"pending":         summary.Pending,
		},
		"bookings": rows,
	})
}

// DownloadBookingReportExcel exports the booking report as an Excel sheet
func DownloadBookingReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadBookingReportExcel called")

	period := c.DefaultQuery("period", "day")
	start, end, ok := reportPeriodRange(period)
	if !ok {
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	bookings, summary, err := fetchBookingsForReport(start, end)
	if err != nil {
		utils.LogError("Failed to fetch bookings for Excel report: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Booking Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	header := sheet.AddRow()
	header.AddCell().SetString("TARANA - Booking Report")
	header = sheet.AddRow()
	header.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + start.Format("2006-01-02") + " to " + end.Format("2006-01-02"))
	sheet.AddRow()

	headers := []string{"Reference", "Business", "Product", "Guest", "Guests", "Original", "Discount %", "Amount", "Status", "Paid", "Date"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, b := range bookings {
		row := sheet.AddRow()
		row.AddCell().SetString(b.ReferenceCode)
		row.AddCell().SetString(b.Business.Name)
		row.AddCell().SetString(b.Product.Name)
		row.AddCell().SetString(b.FirstName + " " + b.LastName)
		row.AddCell().SetInt(b.NumberOfGuests)
		row.AddCell().SetFloat(b.OriginalPrice)
		row.AddCell().SetFloat(b.DiscountPercent)
		row.AddCell().SetFloat(b.DiscountedPrice)
		row.AddCell().SetString(b.Status)
		if b.IsPaid {
			row.AddCell().SetString("Yes")
		} else {
			row.AddCell().SetString("No")
		}
		row.AddCell().SetString(b.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Total Bookings")
	summaryRow.AddCell().SetInt(summary.TotalBookings)
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Total Revenue")
	summaryRow.AddCell().SetFloat(summary.TotalRevenue)
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Total Discounts")
	summaryRow.AddCell().SetFloat(summary.TotalDiscounts)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel report: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	filename := fmt.Sprintf("booking-report-%s-%s.xlsx", period, time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// DownloadBookingReportPDF exports the booking report as a PDF
func DownloadBookingReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadBookingReportPDF called")

	period := c.DefaultQuery("period", "day")
	start, end, ok := reportPeriodRange(period)
	if !ok {
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	bookings, summary, err := fetchBookingsForReport(start, end)
	if err != nil {
		utils.LogError("Failed to fetch bookings for PDF report: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", err.Error())
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(120, 10, "TaraNa - Booking Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(120, 8, "Period: "+strings.ToUpper(period)+" | "+start.Format("2006-01-02")+" to "+end.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{32, 45, 45, 40, 15, 22, 18, 22, 24, 14}
	headers := []string{"Reference", "Business", "Product", "Guest", "Pax", "Original", "Disc %", "Amount", "Status", "Paid"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, b := range bookings {
		paid := "No"
		if b.IsPaid {
			paid = "Yes"
		}
		cells := []string{
			b.ReferenceCode,
			b.Business.Name,
			b.Product.Name,
			b.FirstName + " " + b.LastName,
			fmt.Sprintf("%d", b.NumberOfGuests),
			fmt.Sprintf("%.2f", b.OriginalPrice),
			fmt.Sprintf("%.0f", b.DiscountPercent),
			fmt.Sprintf("%.2f", b.DiscountedPrice),
			b.Status,
			paid,
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 7, v, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(120, 8, fmt.Sprintf("Total Bookings: %d | Revenue: %.2f | Discounts: %.2f | Guests: %d",
		summary.TotalBookings, summary.TotalRevenue, summary.TotalDiscounts, summary.TotalGuests))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate PDF report: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	filename := fmt.Sprintf("booking-report-%s-%s.pdf", period, time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/pdf", buf.Bytes())
}
