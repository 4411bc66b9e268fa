package domain

import "time"

// SocialProvider identifies a third-party identity provider. The set is
// closed: adding a provider means adding an adapter, not branching logic.
type SocialProvider string

const (
	ProviderKakao SocialProvider = "kakao"
	ProviderNaver SocialProvider = "naver"
)

// User is an account row. PasswordHash is empty for social-only accounts;
// SocialProvider/SocialID are empty for local-only accounts. A row with
// neither is invalid and rejected by a CHECK constraint in the store.
type User struct {
	ID           int64          `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Provider     SocialProvider `json:"social_provider,omitempty"`
	SocialID     string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// SocialOnly reports whether the account was created through provider
// linkage and has no local password.
func (u *User) SocialOnly() bool {
	return u.PasswordHash == "" && u.Provider != ""
}

// RegisterRequest is the local registration payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the local login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SocialLoginRequest carries a provider access token obtained by the client.
type SocialLoginRequest struct {
	AccessToken    string `json:"accessToken" validate:"required"`
	SocialProvider string `json:"socialProvider" validate:"required"`
}
