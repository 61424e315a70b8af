package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func smtpConfig() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email using the configured SMTP server
func SendEmail(to, subject, body string) error {
	config := smtpConfig()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return WrapError(err, "failed to send email")
	}

	return nil
}

// SendOTP sends a registration OTP via email
func SendOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to TaraNa!</h2>
		<p>Thank you for registering. Please use the following OTP to verify your email address:</p>
		<h1 style="color: #1E88E5; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 15 minutes.</p>
		<p>If you didn't request this OTP, please ignore this email.</p>
	`, otp)

	return SendEmail(to, "Your TaraNa Registration OTP", body)
}

// SendBookingConfirmation sends a booking confirmation with the reference
// code and the pricing snapshot
func SendBookingConfirmation(to, referenceCode, businessName string, guests int, total float64) error {
	body := fmt.Sprintf(`
		<h2>Your booking is in!</h2>
		<p>We have received your booking with <strong>%s</strong>.</p>
		<p>Reference code: <strong>%s</strong></p>
		<p>Guests: %d</p>
		<p>Amount due: <strong>%.2f</strong></p>
		<p>The business will confirm your booking shortly. Keep your reference code handy.</p>
	`, businessName, referenceCode, guests, total)

	return SendEmail(to, "TaraNa Booking Received - "+referenceCode, body)
}
