package http

import (
	"net/http"
	"strings"

	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/pkg/authsdk"
	"github.com/longevlabs/longev-auth/pkg/httpx"
	"github.com/longevlabs/longev-auth/pkg/slogx"
)

// PasswordLoginHandler serves POST /auth/token-pwd.
type PasswordLoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Password Login
//	@Description	Exchanges email and password for a signed bearer access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.PasswordLoginRequest	true	"Login credentials"
//	@Success		200		{object}	authsdk.TokenResponse			"token"
//	@Failure		400		{object}	authsdk.APIError				"profile_inactive, incorrect_password"
//	@Failure		404		{object}	authsdk.APIError				"not_found"
//	@Failure		500		{object}	authsdk.APIError				"server_error"
//	@Router			/auth/token-pwd [post].
func (h *PasswordLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.PasswordLoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		authsdk.NewValidationError("email and password are required").WriteError(w)
		return
	}

	token, err := h.AuthService.PasswordLogin(ctx, email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: token})
}
