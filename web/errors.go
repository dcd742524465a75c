package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/CrestNiraj12/postcards/domain"
)

var errBadForm = errors.New("bad form")

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap turns handler errors into status codes and logs them.
func wrap(log *zap.Logger, fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		code := statusFor(err)
		log.Warn("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", code),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(code), code)
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrControlNotFound), errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmptyPost), errors.Is(err, errBadForm):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicatePostID):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
