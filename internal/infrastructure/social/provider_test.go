package social

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quoteshelf/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry(NewKakao(), NewNaver())

	p, err := reg.Resolve("kakao")
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderKakao, p.Name())

	p, err = reg.Resolve("naver")
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderNaver, p.Name())

	_, err = reg.Resolve("google")
	assert.True(t, errors.Is(err, domain.ErrInvalidProvider))
}

func TestKakao_Profile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1234567890,"kakao_account":{"email":"k@example.com"}}`))
	}))
	defer srv.Close()

	k := &Kakao{userInfoURL: srv.URL, client: srv.Client()}
	p, err := k.Profile(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", p.ID)
	assert.Equal(t, "k@example.com", p.Email)
}

func TestKakao_Profile_MissingEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":1234567890,"kakao_account":{}}`))
	}))
	defer srv.Close()

	k := &Kakao{userInfoURL: srv.URL, client: srv.Client()}
	_, err := k.Profile(context.Background(), "tok-1")
	assert.True(t, errors.Is(err, domain.ErrIncompleteProfile))
}

func TestKakao_Profile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	k := &Kakao{userInfoURL: srv.URL, client: srv.Client()}
	_, err := k.Profile(context.Background(), "bad-token")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrIncompleteProfile))
}

func TestNaver_Profile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-2", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"resultcode":"00","message":"success","response":{"id":"nv-77","email":"n@example.com"}}`))
	}))
	defer srv.Close()

	n := &Naver{userInfoURL: srv.URL, client: srv.Client()}
	p, err := n.Profile(context.Background(), "tok-2")
	require.NoError(t, err)
	assert.Equal(t, "nv-77", p.ID)
	assert.Equal(t, "n@example.com", p.Email)
}

func TestNaver_Profile_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resultcode":"00","response":{"email":"n@example.com"}}`))
	}))
	defer srv.Close()

	n := &Naver{userInfoURL: srv.URL, client: srv.Client()}
	_, err := n.Profile(context.Background(), "tok-2")
	assert.True(t, errors.Is(err, domain.ErrIncompleteProfile))
}
