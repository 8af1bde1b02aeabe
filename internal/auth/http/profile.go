package http

import (
	"net/http"

	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/pkg/authsdk"
	"github.com/longevlabs/longev-auth/pkg/httpx"
	"github.com/longevlabs/longev-auth/pkg/slogx"
)

// ProfileHandler serves /user/profile for the authenticated user. The user
// id comes from the verified bearer token, never from the request.
type ProfileHandler struct {
	UserService *service.UserService
}

// HandleGet godoc
//
//	@Summary		Get Profile
//	@Description	Returns the authenticated user's profile.
//	@Tags			User
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.UserResponse	"profile"
//	@Failure		401	{object}	authsdk.APIError		"invalid_token"
//	@Failure		500	{object}	authsdk.APIError		"server_error"
//	@Router			/user/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	u, err := h.UserService.Profile(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(u))
}

// HandlePut godoc
//
//	@Summary		Replace Profile Names
//	@Description	Replaces the first and last name. Email is immutable.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.ProfileUpdateRequest	true	"New names"
//	@Success		200		{object}	authsdk.ProfileUpdateResponse	"data, message"
//	@Failure		400		{object}	authsdk.APIError				"invalid_request"
//	@Failure		401		{object}	authsdk.APIError				"invalid_token"
//	@Failure		500		{object}	authsdk.APIError				"server_error"
//	@Router			/user/profile [put].
func (h *ProfileHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req authsdk.ProfileUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	u, err := h.UserService.UpdateName(ctx, userID, req.FirstName, req.LastName)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ProfileUpdateResponse{
		Data:    userResponse(u),
		Message: "Profile has been updated",
	})
}

// HandlePatch godoc
//
//	@Summary		Update Profile Names
//	@Description	Updates the provided name fields, leaving omitted ones unchanged.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		authsdk.ProfileUpdateRequest	true	"Name fields to change"
//	@Success		200		{object}	authsdk.ProfileUpdateResponse	"data, message"
//	@Failure		400		{object}	authsdk.APIError				"invalid_request"
//	@Failure		401		{object}	authsdk.APIError				"invalid_token"
//	@Failure		500		{object}	authsdk.APIError				"server_error"
//	@Router			/user/profile [patch].
func (h *ProfileHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	// Pointer fields distinguish "omitted" from "set to empty".
	var req struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		authsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	current, err := h.UserService.Profile(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	firstName := current.FirstName
	lastName := current.LastName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}

	u, err := h.UserService.UpdateName(ctx, userID, firstName, lastName)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ProfileUpdateResponse{
		Data:    userResponse(u),
		Message: "Profile has been updated",
	})
}

// HandleDelete godoc
//
//	@Summary		Deactivate Profile
//	@Description	Marks the authenticated user's account inactive. Subsequent logins are rejected.
//	@Tags			User
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.MessageResponse	"message"
//	@Failure		401	{object}	authsdk.APIError		"invalid_token"
//	@Failure		500	{object}	authsdk.APIError		"server_error"
//	@Router			/user/profile [delete].
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.UserService.Deactivate(ctx, userID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "User profile has been deactivated",
	})
}
