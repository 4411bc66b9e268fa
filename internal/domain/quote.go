package domain

import "time"

// Quote is a content row owned by a user. The quote feature itself lives
// behind its own service; the identity core only needs ownership for the
// account deletion cascade.
type Quote struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	IsPublic  bool      `json:"is_public"`
	UserID    int64     `json:"user_idx"`
	CreatedAt time.Time `json:"created_at"`
}
