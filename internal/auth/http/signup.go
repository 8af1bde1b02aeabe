package http

import (
	"net/http"

	"github.com/longevlabs/longev-auth/internal/auth/domain"
	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/pkg/authsdk"
	"github.com/longevlabs/longev-auth/pkg/httpx"
	"github.com/longevlabs/longev-auth/pkg/slogx"
)

// SignupHandler serves POST /user/signup.
type SignupHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Sign Up
//	@Description	Registers a new user account. Passwords must be between 8 and 32 characters.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SignupRequest	true	"New account details"
//	@Success		201		{object}	authsdk.UserResponse	"created user"
//	@Failure		400		{object}	authsdk.APIError		"validation_error, email_exists"
//	@Failure		500		{object}	authsdk.APIError		"server_error"
//	@Router			/user/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	u, err := h.UserService.Signup(ctx, req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(u))
}

func userResponse(u domain.User) authsdk.UserResponse {
	return authsdk.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
