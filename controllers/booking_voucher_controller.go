package controllers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dcastillo-dev/TaraNa/config"
	"github.com/dcastillo-dev/TaraNa/models"
	"github.com/dcastillo-dev/TaraNa/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadBookingVoucher generates and returns a PDF voucher for a booking.
// The booking email doubles as the access check so walk-in customers can
// fetch their voucher too.
func DownloadBookingVoucher(c *gin.Context) {
	utils.LogInfo("DownloadBookingVoucher called")

	reference := strings.ToUpper(strings.TrimSpace(c.Param("reference")))
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		utils.BadRequest(c, "Email is required to download a voucher", nil)
		return
	}

	var booking models.Booking
	err := config.DB.Preload("Business").Preload("Product").
		Where("reference_code = ? AND LOWER(email) = LOWER(?)", reference, email).
		First(&booking).Error
	if err != nil {
		utils.LogError("Booking not found for voucher: %s", reference)
		utils.NotFound(c, "Booking not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "TaraNa Tourism")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Regional Tourism Directory & Booking")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Reference: "+booking.ReferenceCode)
	pdf.Cell(70, 8, "Booked: "+booking.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Status: "+booking.Status)
	paid := "No"
	if booking.IsPaid {
		paid = "Yes"
	}
	pdf.Cell(70, 8, "Paid: "+paid)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Guest:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, booking.FirstName+" "+booking.LastName)
	pdf.Ln(6)
	pdf.Cell(100, 8, booking.Email)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Phone: "+booking.Phone)
	pdf.Ln(6)
	pdf.Cell(100, 8, fmt.Sprintf("Guests: %d", booking.NumberOfGuests))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Booking Details:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, booking.Business.Name+" - "+booking.Product.Name)
	pdf.Ln(6)
	switch {
	case booking.CheckIn != nil && booking.CheckOut != nil:
		pdf.Cell(100, 8, "Check-in: "+booking.CheckIn.Format("2006-01-02"))
		pdf.Ln(6)
		pdf.Cell(100, 8, "Check-out: "+booking.CheckOut.Format("2006-01-02"))
	case booking.VisitDate != nil:
		pdf.Cell(100, 8, "Visit: "+booking.VisitDate.Format("2006-01-02")+" at "+booking.ActivityTime)
	case booking.ReservationDate != nil:
		pdf.Cell(100, 8, "Reservation: "+booking.ReservationDate.Format("2006-01-02")+" at "+booking.ReservationTime)
	}
	pdf.Ln(6)
	if booking.SpecialRequests != "" {
		pdf.Cell(100, 8, "Requests: "+booking.SpecialRequests)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Pricing:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, fmt.Sprintf("Original Price: %.2f", booking.OriginalPrice))
	pdf.Ln(6)
	if booking.DiscountPercent > 0 {
		pdf.Cell(100, 8, fmt.Sprintf("Discount: %.0f%%", booking.DiscountPercent))
		pdf.Ln(6)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 8, fmt.Sprintf("Amount Due: %.2f", booking.DiscountedPrice))
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(100, 8, "Present this voucher and a valid ID on arrival.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate voucher PDF for %s: %v", reference, err)
		utils.InternalServerError(c, "Failed to generate voucher", err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename=voucher-"+booking.ReferenceCode+".pdf")
	c.Data(200, "application/pdf", buf.Bytes())
}
