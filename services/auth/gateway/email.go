package gateway

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/bimbelhub/platform/internal/pkg/logger"
	"github.com/bimbelhub/platform/internal/pkg/models"
)

// EmailGW delivers OTP codes over SMTP
type EmailGW struct {
	cfg *models.Config
}

// NewEmailGW creates a new email gateway instance
func NewEmailGW(cfg *models.Config) *EmailGW {
	return &EmailGW{cfg: cfg}
}

var purposeSubjects = map[models.OTPPurpose]string{
	models.PurposeRegister:      "Verify your email address",
	models.PurposeLogin:         "Your login code",
	models.PurposePasswordReset: "Reset your password",
}

// SendOTP delivers a one-time code to the given address. Failures are
// returned to the caller; the stored code stays valid until its TTL.
func (g *EmailGW) SendOTP(ctx context.Context, email, code string, purpose models.OTPPurpose, expiry time.Duration) error {
	subject, ok := purposeSubjects[purpose]
	if !ok {
		return fmt.Errorf("unknown OTP purpose: %s", purpose)
	}

	body := fmt.Sprintf(
		"Your verification code is %s.\r\nIt expires in %d minutes. If you did not request this code, you can ignore this message.",
		code, int(expiry.Minutes()),
	)

	if err := g.send(ctx, email, subject, body); err != nil {
		return fmt.Errorf("failed to deliver OTP: %w", err)
	}

	logger.Info("OTP delivered",
		logger.String("email", email),
		logger.String("purpose", string(purpose)))

	return nil
}

// send builds an RFC 2822 message and submits it to the configured relay
func (g *EmailGW) send(ctx context.Context, to, subject, body string) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", g.cfg.SMTP.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", g.cfg.SMTP.Host, g.cfg.SMTP.Port)

	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, g.cfg.SMTP.Host)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	defer client.Close()

	if g.cfg.SMTP.StartTLS {
		tlsConfig := &tls.Config{ServerName: g.cfg.SMTP.Host, MinVersion: tls.VersionTLS12}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("starting TLS: %w", err)
		}
	}

	if g.cfg.SMTP.Username != "" {
		auth := smtp.PlainAuth("", g.cfg.SMTP.Username, g.cfg.SMTP.Password, g.cfg.SMTP.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	if err := client.Mail(g.cfg.SMTP.From); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening message body: %w", err)
	}
	if _, err := w.Write([]byte(msg.String())); err != nil {
		return fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message body: %w", err)
	}

	return client.Quit()
}
