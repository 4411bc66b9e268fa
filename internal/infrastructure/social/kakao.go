package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/quoteshelf/api/internal/domain"
)

const kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"

// Kakao resolves access tokens against the Kakao user-info endpoint.
type Kakao struct {
	userInfoURL string
	client      *http.Client
}

func NewKakao() *Kakao {
	return &Kakao{userInfoURL: kakaoUserInfoURL, client: newHTTPClient()}
}

func (k *Kakao) Name() domain.SocialProvider { return domain.ProviderKakao }

// kakaoUser mirrors the /v2/user/me response. The id is numeric and the
// email sits under kakao_account.
type kakaoUser struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email string `json:"email"`
	} `json:"kakao_account"`
}

func (k *Kakao) Profile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao user info: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao user info: status %d", resp.StatusCode)
	}

	var u kakaoUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode kakao user info: %w", err)
	}
	if u.ID == 0 || u.KakaoAccount.Email == "" {
		return nil, fmt.Errorf("kakao: %w", domain.ErrIncompleteProfile)
	}
	return &Profile{ID: strconv.FormatInt(u.ID, 10), Email: u.KakaoAccount.Email}, nil
}
