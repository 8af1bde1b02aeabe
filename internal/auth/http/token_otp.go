package http

import (
	"net/http"
	"strings"

	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/pkg/authsdk"
	"github.com/longevlabs/longev-auth/pkg/httpx"
	"github.com/longevlabs/longev-auth/pkg/slogx"
)

// OTPLoginHandler serves POST /auth/token-otp.
type OTPLoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		OTP Login
//	@Description	Exchanges email and a one-time passcode for a signed bearer access token. The passcode is consumed on success.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.OTPLoginRequest	true	"Email and passcode"
//	@Success		200		{object}	authsdk.TokenResponse	"token"
//	@Failure		400		{object}	authsdk.APIError		"profile_inactive, incorrect_otp"
//	@Failure		404		{object}	authsdk.APIError		"not_found"
//	@Failure		500		{object}	authsdk.APIError		"server_error"
//	@Router			/auth/token-otp [post].
func (h *OTPLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.OTPLoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	email := strings.TrimSpace(req.Email)
	otp := strings.TrimSpace(req.OTP)
	if email == "" || otp == "" {
		authsdk.NewValidationError("email and otp are required").WriteError(w)
		return
	}

	token, err := h.AuthService.VerifyOTP(ctx, email, otp)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: token})
}
