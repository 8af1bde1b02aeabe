package http

import (
	"net/http"
	"strings"

	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/pkg/authsdk"
	"github.com/longevlabs/longev-auth/pkg/httpx"
	"github.com/longevlabs/longev-auth/pkg/slogx"
)

// OTPRequestHandler serves POST /auth/otp.
type OTPRequestHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Request OTP
//	@Description	Emails a one-time passcode to the user. Any previously issued passcode is replaced.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.OTPRequest		true	"Account email"
//	@Success		200		{object}	authsdk.MessageResponse	"message"
//	@Failure		400		{object}	authsdk.APIError		"profile_inactive"
//	@Failure		404		{object}	authsdk.APIError		"not_found"
//	@Failure		500		{object}	authsdk.APIError		"server_error"
//	@Router			/auth/otp [post].
func (h *OTPRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.OTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		authsdk.NewValidationError("email is required").WriteError(w)
		return
	}

	if err := h.AuthService.RequestOTP(ctx, email); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Your one-time passcode has been sent to " + email,
	})
}
