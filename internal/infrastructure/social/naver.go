package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quoteshelf/api/internal/domain"
)

const naverUserInfoURL = "https://openapi.naver.com/v1/nid/me"

// Naver resolves access tokens against the Naver profile endpoint.
type Naver struct {
	userInfoURL string
	client      *http.Client
}

func NewNaver() *Naver {
	return &Naver{userInfoURL: naverUserInfoURL, client: newHTTPClient()}
}

func (n *Naver) Name() domain.SocialProvider { return domain.ProviderNaver }

// naverUser mirrors the /v1/nid/me response, which nests the profile under
// a "response" envelope with a string id.
type naverUser struct {
	ResultCode string `json:"resultcode"`
	Response   struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"response"`
}

func (n *Naver) Profile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver user info: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver user info: status %d", resp.StatusCode)
	}

	var u naverUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode naver user info: %w", err)
	}
	if u.Response.ID == "" || u.Response.Email == "" {
		return nil, fmt.Errorf("naver: %w", domain.ErrIncompleteProfile)
	}
	return &Profile{ID: u.Response.ID, Email: u.Response.Email}, nil
}
