package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quoteshelf/api/internal/application/account"
	"github.com/quoteshelf/api/internal/application/auth"
	"github.com/quoteshelf/api/internal/domain"
	"github.com/quoteshelf/api/internal/pkg/validate"
	"github.com/quoteshelf/api/internal/transport/http/middleware"
)

// AuthHandler handles registration, login, social login and deletion.
type AuthHandler struct {
	auth     auth.Service
	accounts account.Service
}

func NewAuthHandler(authSvc auth.Service, accountSvc account.Service) *AuthHandler {
	return &AuthHandler{auth: authSvc, accounts: accountSvc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.auth.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailExists),
			errors.Is(err, domain.ErrEmailNotVerified),
			errors.Is(err, domain.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}
	writeJSON(w, http.StatusCreated, RegisterEnvelope{ID: u.ID, Email: u.Email, Message: "Registration Success"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.auth.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSocialNoPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, err.Error())
		default:
			// ErrConfigMissing lands here: an operator problem, not a
			// client one.
			writeError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Logout successful. Please clear your token."})
}

func (h *AuthHandler) SocialLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.SocialLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.auth.SocialLogin(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidProvider),
			errors.Is(err, domain.ErrIncompleteProfile),
			errors.Is(err, domain.ErrProviderConflict):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "social login failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: token})
}

func (h *AuthHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.accounts.DeleteAccount(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUserID):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete account")
		}
		return
	}
	writeJSON(w, http.StatusOK, DeleteEnvelope{UserIdx: userID, Message: "Account deleted successfully"})
}
