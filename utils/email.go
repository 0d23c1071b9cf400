package utils

import (
	"fmt"
	"io"
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

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
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

// SendEmail sends an HTML email using the configured SMTP relay.
func SendEmail(to, subject, body string) error {
	config := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendRefundStatementEmail mails the refund breakdown to the customer after a
// support agent reviews the return request.
func SendRefundStatementEmail(to, orderCode string, rows [][2]string, attachment []byte) error {
	config := emailConfigFromEnv()

	table := ""
	for _, row := range rows {
		table += fmt.Sprintf(`<tr><td style="padding:4px 12px 4px 0;">%s</td><td align="right">%s</td></tr>`, row[0], row[1])
	}

	body := fmt.Sprintf(`
		<h2>Thông tin hoàn tiền - Đơn hàng %s</h2>
		<p>Cảm ơn bạn đã mua sắm tại GlowCart. Chi tiết hoàn tiền cho yêu cầu trả hàng của bạn:</p>
		<table>%s</table>
		<p>Bảng kê chi tiết được đính kèm trong email này.</p>
		<p>Nếu bạn có thắc mắc, vui lòng liên hệ bộ phận chăm sóc khách hàng.</p>
	`, orderCode, table)

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Thông tin hoàn tiền cho đơn hàng %s", orderCode))
	m.SetBody("text/html", body)
	if len(attachment) > 0 {
		m.Attach(fmt.Sprintf("refund_statement_%s.pdf", orderCode),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(attachment)
				return err
			}))
	}

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
