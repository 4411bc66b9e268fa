package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quoteshelf/api/internal/domain"
)

// Postgres error code for unique_violation.
const uniqueViolation = "23505"

// UserRepo persists user rows.
type UserRepo struct {
	client *Client
}

func NewUserRepo(client *Client) *UserRepo {
	return &UserRepo{client: client}
}

// Create inserts the user and fills in the store-assigned id and
// timestamps. A duplicate email surfaces as domain.ErrEmailExists via the
// unique index, regardless of any prior existence check.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	row := r.client.db(ctx).QueryRow(ctx,
		`INSERT INTO users (email, password_hash, social_provider, social_id)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		 RETURNING id, created_at, updated_at`,
		u.Email, u.PasswordHash, string(u.Provider), u.SocialID)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("email %s: %w", u.Email, domain.ErrEmailExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail looks up a user by email, case-sensitive as stored.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.client.db(ctx).QueryRow(ctx,
		selectUser+` WHERE email = $1`, email))
}

// UpdateSocialLink sets the provider linkage fields. Idempotent: re-linking
// the same provider with a fresh provider id just overwrites.
func (r *UserRepo) UpdateSocialLink(ctx context.Context, userID int64, provider domain.SocialProvider, socialID string) error {
	tag, err := r.client.db(ctx).Exec(ctx,
		`UPDATE users SET social_provider = $2, social_id = $3, updated_at = now() WHERE id = $1`,
		userID, string(provider), socialID)
	if err != nil {
		return fmt.Errorf("update social link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, domain.ErrUserNotFound)
	}
	return nil
}

// DeleteByID removes the user row and reports whether a row was deleted.
func (r *UserRepo) DeleteByID(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.client.db(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected(), nil
}

const selectUser = `SELECT id, email, COALESCE(password_hash, ''), COALESCE(social_provider, ''), COALESCE(social_id, ''), created_at, updated_at FROM users`

func (r *UserRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var provider string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &provider, &u.SocialID, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Provider = domain.SocialProvider(provider)
	return &u, nil
}
