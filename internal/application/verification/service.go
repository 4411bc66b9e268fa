package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/quoteshelf/api/internal/domain"
	"github.com/quoteshelf/api/internal/infrastructure/smtp"
)

type codeStore interface {
	SetCode(ctx context.Context, email, code string) error
	GetCode(ctx context.Context, email string) (string, bool, error)
	DeleteCode(ctx context.Context, email string) error
	MarkVerified(ctx context.Context, email string) error
}

type Service interface {
	SendCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
}

type service struct {
	codes  codeStore
	mailer smtp.Mailer
}

func NewService(codes codeStore, mailer smtp.Mailer) Service {
	return &service{codes: codes, mailer: mailer}
}

// SendCode stores a fresh 6-digit code for the email and mails it.
// A prior pending code for the same address is overwritten.
func (s *service) SendCode(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := s.codes.SetCode(ctx, email, code); err != nil {
		return fmt.Errorf("store code: %v: %w", err, domain.ErrDispatchFailed)
	}
	if err := s.mailer.SendEmail(email, "Your verification code", "Your verification code is "+code); err != nil {
		return fmt.Errorf("send mail: %v: %w", err, domain.ErrDispatchFailed)
	}
	slog.Info("verification code sent", "email", email)
	return nil
}

// VerifyCode checks the submitted code against the pending one. On match
// the code is deleted (single-use) and a verified marker is written for
// registration to consume.
func (s *service) VerifyCode(ctx context.Context, email, code string) error {
	stored, ok, err := s.codes.GetCode(ctx, email)
	if err != nil {
		return fmt.Errorf("get code: %v: %w", err, domain.ErrStoreUnavailable)
	}
	if !ok || stored != code {
		return domain.ErrCodeMismatch
	}
	if err := s.codes.DeleteCode(ctx, email); err != nil {
		return fmt.Errorf("delete code: %v: %w", err, domain.ErrStoreUnavailable)
	}
	if err := s.codes.MarkVerified(ctx, email); err != nil {
		return fmt.Errorf("mark verified: %v: %w", err, domain.ErrStoreUnavailable)
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
