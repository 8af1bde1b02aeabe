package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/pkg/authsdk"
)

// writeServiceError translates service-layer errors into the JSON error
// envelope. Anything unrecognised is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, l *slog.Logger, err error) {
	var ve *service.ValidationError

	switch {
	case errors.Is(err, service.ErrUserNotFound):
		authsdk.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrProfileInactive):
		authsdk.ErrProfileInactive.WriteError(w)
	case errors.Is(err, service.ErrIncorrectPassword):
		authsdk.ErrIncorrectPassword.WriteError(w)
	case errors.Is(err, service.ErrIncorrectOTP):
		authsdk.ErrIncorrectOTP.WriteError(w)
	case errors.Is(err, service.ErrEmailExists):
		authsdk.ErrEmailExists.WriteError(w)
	case errors.As(err, &ve):
		authsdk.NewValidationError(ve.Message).WriteError(w)
	default:
		l.Error("request failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
	}
}
