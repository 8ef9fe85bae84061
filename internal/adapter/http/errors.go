package http

import (
	"errors"
	"net/http"

	"fundo-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const msgInternal = "An internal server error occurred"

func statusFor(k apperr.Kind) int {
	switch k {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler maps domain errors to their status codes and hides
// everything else behind a generic 500 that is logged with the request id.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		trace := traceID(c)

		var (
			code int
			body ErrorResponse
			ae   *apperr.Error
			he   *echo.HTTPError
		)
		switch {
		case errors.As(err, &ae):
			code = statusFor(ae.Kind)
			body = ErrorResponse{Error: ae.Message, TraceID: trace}
		case errors.As(err, &he):
			code = he.Code
			msg := http.StatusText(code)
			if s, ok := he.Message.(string); ok {
				msg = s
			}
			body = ErrorResponse{Error: msg, TraceID: trace}
		default:
			code = http.StatusInternalServerError
			body = ErrorResponse{Error: msgInternal, TraceID: trace}
		}
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("request_id", trace).Str("path", c.Path()).Msg("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, body)
		}
		if werr != nil {
			log.Error().Err(werr).Msg("write error response")
		}
	}
}
