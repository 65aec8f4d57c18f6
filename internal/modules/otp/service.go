package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/validator"
	"courtbook/internal/repository"
)

const defaultCountryCode = "+91"

type Config struct {
	TTL         time.Duration
	MaxAttempts int
	// DummyCode short-circuits code generation for dev and tests.
	DummyCode string
}

// Service implements phone-number login. At most one open verification
// record exists per phone: resending refreshes it instead of stacking
// siblings, so a verify always addresses the latest code.
type Service struct {
	otps  OTPRepository
	users UserRepository
	jwt   jwtService
	cfg   Config
}

func NewService(otps OTPRepository, users UserRepository, jwt jwtService, cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Service{otps: otps, users: users, jwt: jwt, cfg: cfg}
}

// Send issues a code for the phone number and returns its expiry. The SMS
// hand-off itself is out of scope; the code is stored for verification.
func (s *Service) Send(ctx context.Context, req SendRequest, ip, userAgent string) (time.Time, error) {
	if !validator.Var(req.PhoneNumber, "numeric,min=5,max=15") {
		return time.Time{}, ErrInvalidPhone
	}

	code, err := s.newCode()
	if err != nil {
		return time.Time{}, err
	}
	expiresAt := time.Now().UTC().Add(s.cfg.TTL)

	existing, err := s.otps.FindActiveByPhone(ctx, req.PhoneNumber)
	switch {
	case err == nil:
		existing.OTPCode = code
		existing.ExpiresAt = expiresAt
		existing.Attempts = 0
		if err := s.otps.Update(ctx, existing); err != nil {
			return time.Time{}, err
		}
	case errors.Is(err, repository.ErrNotFound):
		countryCode := req.CountryCode
		if countryCode == "" {
			countryCode = defaultCountryCode
		}
		record := &domain.OTPVerification{
			PhoneNumber: req.PhoneNumber,
			CountryCode: countryCode,
			OTPCode:     code,
			MaxAttempts: s.cfg.MaxAttempts,
			ExpiresAt:   expiresAt,
			IPAddress:   ip,
			UserAgent:   userAgent,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.otps.Create(ctx, record); err != nil {
			return time.Time{}, err
		}
	default:
		return time.Time{}, err
	}

	return expiresAt, nil
}

// Verify checks the submitted code and, on success, logs the user in,
// creating the account on first login. Returns the user and a signed token.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (*domain.User, string, error) {
	record, err := s.otps.FindActiveByPhone(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrNoActiveCode
		}
		return nil, "", err
	}

	if record.Attempts >= record.MaxAttempts {
		return nil, "", ErrTooManyAttempts
	}

	if record.OTPCode != req.OTPCode {
		record.Attempts++
		if err := s.otps.Update(ctx, record); err != nil {
			return nil, "", err
		}
		return nil, "", ErrCodeMismatch
	}

	now := time.Now().UTC()
	record.IsVerified = true
	record.VerifiedAt = &now
	if err := s.otps.Update(ctx, record); err != nil {
		return nil, "", err
	}

	user, err := s.loginUser(ctx, req.PhoneNumber, record.CountryCode, now)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.PhoneNumber)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) loginUser(ctx context.Context, phone, countryCode string, now time.Time) (*domain.User, error) {
	user, err := s.users.GetByPhone(ctx, phone)
	if errors.Is(err, repository.ErrNotFound) {
		user = &domain.User{
			PhoneNumber: phone,
			CountryCode: countryCode,
			IsVerified:  true,
			IsActive:    true,
			LastLoginAt: &now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) newCode() (string, error) {
	if s.cfg.DummyCode != "" {
		return s.cfg.DummyCode, nil
	}
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()+10000), nil
}
