package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/leadsdk"
	"github.com/aussiebroadwan/leads/pkg/slogx"
)

// AuthHandler serves admin login and the session endpoints.
type AuthHandler struct {
	TokenService *service.TokenService
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Admin login
//	@Description	Exchanges the admin username and password (plus a TOTP code when enrolled) for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.LoginRequest	true	"Admin credentials"
//	@Success		200		{object}	leadsdk.TokenResponse	"token, token_type, expires_in, expires_at"
//	@Failure		400		{object}	leadsdk.ErrorResponse	"InvalidRequest"
//	@Failure		401		{object}	leadsdk.ErrorResponse	"InvalidCredentials"
//	@Failure		429		{object}	leadsdk.ErrorResponse	"rate_limit_exceeded"
//	@Failure		500		{object}	leadsdk.ErrorResponse	"StoreFailure"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req leadsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	details := map[string]string{}
	if req.Username == "" {
		details["username"] = "is required"
	}
	if req.Password == "" {
		details["password"] = "is required"
	}
	if len(details) > 0 {
		invalidRequest(w, details)
		return
	}

	tok, err := h.TokenService.Issue(r.Context(), req.Username, req.Password, strings.TrimSpace(req.OTP))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.TokenResponse{
		Token:     tok.Token,
		TokenType: tok.TokenType,
		ExpiresIn: int(tok.ExpiresIn.Seconds()),
		ExpiresAt: tok.ExpiresAt,
	})
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Admin logout
//	@Description	Ends the session. When revocation is enabled the token is denylisted until it expires.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"No Content"
//	@Failure		401	{object}	leadsdk.ErrorResponse	"Missing, Malformed, BadSignature, Expired or Revoked"
//	@Failure		500	{object}	leadsdk.ErrorResponse	"StoreFailure"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		leadsdk.ErrMissing.WriteError(w)
		return
	}

	if err := h.TokenService.Revoke(r.Context(), p); err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("admin logged out")
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Current admin
//	@Description	Returns the subject and expiry of the presented token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	leadsdk.MeResponse		"subject, token_id, expires_at"
//	@Failure		401	{object}	leadsdk.ErrorResponse	"Missing, Malformed, BadSignature, Expired or Revoked"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		leadsdk.ErrMissing.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.MeResponse{
		Subject:   p.Subject,
		TokenID:   p.TokenID,
		ExpiresAt: p.ExpiresAt,
	})
}

func principal(r *http.Request) (domain.Principal, bool) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		return domain.Principal{}, false
	}
	dp, ok := p.(domain.Principal)
	return dp, ok
}
