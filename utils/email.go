package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

const emailDisplayName = "GlowDesk"

// SendEmail delivers an HTML email through the configured SMTP account.
// EMAIL_FROM overrides the sender address when set; otherwise the SMTP
// account user is used.
func SendEmail(to, subject, body string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading SMTP settings from the environment")
	}

	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = user
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, emailDisplayName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return gomail.NewDialer(host, port, user, pass).DialAndSend(m)
}
