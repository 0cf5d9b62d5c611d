// Package passwordreset is the application service for mailed one-time
// codes: self-service password reset and administrator-issued credentials.
package passwordreset

import (
	"context"
	"time"

	"github.com/portalkit/portalkit/internal/application/passwordreset/dto"
	"github.com/portalkit/portalkit/internal/application/passwordreset/usecases"
	domainReset "github.com/portalkit/portalkit/internal/domain/passwordreset"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type Dependencies struct {
	Users          usecases.UserStore
	OTPs           domainReset.Repository
	Credentials    domainReset.CredentialStore
	Mailer         usecases.Mailer
	Limiter        usecases.SendLimiter
	Recorder       usecases.OTPRecorder
	PasswordHasher user.PasswordHasher
	PasswordPolicy user.PasswordPolicy
}

type Config struct {
	CodeLength    int
	ResetTTL      time.Duration
	CredentialTTL time.Duration
}

type ServiceDDD struct {
	sendOTPUC         *usecases.SendOTPUseCase
	verifyOTPUC       *usecases.VerifyOTPUseCase
	sendCredentialsUC *usecases.SendCredentialsUseCase
	setPasswordUC     *usecases.SetPasswordUseCase
	purgeJob          *usecases.PurgeExpiredOTPJob
}

func NewServiceDDD(deps Dependencies, cfg Config, logger logger.Interface) *ServiceDDD {
	clock := biztime.SystemClock
	return &ServiceDDD{
		sendOTPUC: usecases.NewSendOTPUseCase(
			deps.Users, deps.OTPs, deps.Mailer, deps.Limiter, deps.Recorder,
			cfg.CodeLength, cfg.ResetTTL, clock, logger,
		),
		verifyOTPUC: usecases.NewVerifyOTPUseCase(
			deps.Users, deps.OTPs, deps.PasswordHasher, deps.PasswordPolicy, clock, logger,
		),
		sendCredentialsUC: usecases.NewSendCredentialsUseCase(
			deps.Users, deps.Credentials, deps.Mailer, deps.Limiter, deps.Recorder,
			cfg.CodeLength, cfg.CredentialTTL, logger,
		),
		setPasswordUC: usecases.NewSetPasswordUseCase(
			deps.Users, deps.Credentials, deps.PasswordHasher, deps.PasswordPolicy, logger,
		),
		purgeJob: usecases.NewPurgeExpiredOTPJob(deps.OTPs, clock, logger),
	}
}

func (s *ServiceDDD) SendOTP(ctx context.Context, req dto.SendOTPRequest) error {
	return s.sendOTPUC.Execute(ctx, req)
}

func (s *ServiceDDD) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) error {
	return s.verifyOTPUC.Execute(ctx, req)
}

func (s *ServiceDDD) SendCredentials(ctx context.Context, req dto.SendCredentialsRequest) error {
	return s.sendCredentialsUC.Execute(ctx, req)
}

func (s *ServiceDDD) SetPassword(ctx context.Context, req dto.SetPasswordRequest) error {
	return s.setPasswordUC.Execute(ctx, req)
}

// PurgeJob is registered with the scheduler.
func (s *ServiceDDD) PurgeJob() *usecases.PurgeExpiredOTPJob {
	return s.purgeJob
}
