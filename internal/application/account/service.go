package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quoteshelf/api/internal/domain"
)

type userStore interface {
	DeleteByID(ctx context.Context, userID int64) (int64, error)
}

type quoteStore interface {
	DeleteByUser(ctx context.Context, userID int64) error
}

type txRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service interface {
	DeleteAccount(ctx context.Context, userID int64) error
}

type service struct {
	users  userStore
	quotes quoteStore
	tx     txRunner
}

func NewService(users userStore, quotes quoteStore, tx txRunner) Service {
	return &service{users: users, quotes: quotes, tx: tx}
}

// DeleteAccount removes the user's quotes and then the user row inside one
// transaction: a failure at either step rolls the whole cascade back.
func (s *service) DeleteAccount(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("user id %d: %w", userID, domain.ErrInvalidUserID)
	}
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.quotes.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		rows, err := s.users.DeleteByID(ctx, userID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("user %d: %w", userID, domain.ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("account deleted", "user_id", userID)
	return nil
}
