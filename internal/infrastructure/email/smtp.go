package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"gopkg.in/gomail.v2"

	"github.com/portalkit/portalkit/internal/shared/logger"
)

var ErrRecipientRequired = errors.New("email recipient is required")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	FrontendURL string
	MaxRetries  int
}

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailService sends the one-time-code mails, retrying transient
// delivery failures with exponential backoff.
type SMTPEmailService struct {
	config          SMTPConfig
	sender          Sender
	initialInterval time.Duration
	logger          logger.Interface
}

func NewSMTPEmailService(config SMTPConfig, logger logger.Interface) *SMTPEmailService {
	return NewSMTPEmailServiceWithSender(config, gomail.NewDialer(config.Host, config.Port, config.Username, config.Password), logger)
}

func NewSMTPEmailServiceWithSender(config SMTPConfig, sender Sender, logger logger.Interface) *SMTPEmailService {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	return &SMTPEmailService{
		config:          config,
		sender:          sender,
		initialInterval: 500 * time.Millisecond,
		logger:          logger,
	}
}

// SendPasswordResetOTP mails the code for the forgotten-password flow.
func (s *SMTPEmailService) SendPasswordResetOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	body := fmt.Sprintf("Your OTP is: %s\nValid for %d minutes.", code, minutes(ttl))
	return s.send(ctx, to, "Your Verification Code", body)
}

// SendCredentialOTP mails the code an administrator issues so a user can set
// a first password.
func (s *SMTPEmailService) SendCredentialOTP(ctx context.Context, to, username, code string, ttl time.Duration) error {
	link := strings.TrimRight(s.config.FrontendURL, "/") + "/verify-otp"
	body := fmt.Sprintf(`Hello %s,

Use the following one-time code to set your account password. This code will expire in %d minutes.

OTP: %s

Open the app and enter this code to set your password:
%s

If you did not request this, ignore this email.
`, username, minutes(ttl), code, link)
	return s.send(ctx, to, "Set your account password", body)
}

func (s *SMTPEmailService) send(ctx context.Context, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrRecipientRequired
	}

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.initialInterval

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		if err := s.sender.DialAndSend(m); err != nil {
			s.logger.Warnw("email delivery attempt failed", "subject", subject, "attempt", attempt, "error", err)
			return struct{}{}, err
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(uint(s.config.MaxRetries)+1))
	if err != nil {
		s.logger.Errorw("failed to send email", "subject", subject, "attempts", attempt, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("email sent", "subject", subject, "attempts", attempt)
	return nil
}

func minutes(d time.Duration) int {
	m := int(d / time.Minute)
	if m < 1 {
		return 1
	}
	return m
}
