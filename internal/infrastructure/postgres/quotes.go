package postgres

import (
	"context"
	"fmt"

	"github.com/quoteshelf/api/internal/domain"
)

// QuoteRepo persists quote rows. The identity core only consumes the
// delete-by-owner operation; the rest of the quote feature lives in its own
// service.
type QuoteRepo struct {
	client *Client
}

func NewQuoteRepo(client *Client) *QuoteRepo {
	return &QuoteRepo{client: client}
}

// Create inserts a quote and fills in the store-assigned id.
func (r *QuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	row := r.client.db(ctx).QueryRow(ctx,
		`INSERT INTO quotes (content, author, is_public, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		q.Content, q.Author, q.IsPublic, q.UserID)
	if err := row.Scan(&q.ID, &q.CreatedAt); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// DeleteByUser removes every quote owned by the user. Zero rows is fine;
// an account with no content still deletes cleanly.
func (r *QuoteRepo) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.client.db(ctx).Exec(ctx, `DELETE FROM quotes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete quotes for user %d: %w", userID, err)
	}
	return nil
}
