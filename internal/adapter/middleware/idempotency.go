package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// How long we hold the "in-progress" lock before it must be refreshed by finishing the handler.
	provisionalLockTTL = 60 * time.Second
	// Allowed client/server clock skew for Ax-Request-At (in UTC).
	maxClockSkew = 10 * time.Minute

	HeaderRequestID = "Ax-Request-Id"
	HeaderRequestAt = "Ax-Request-At"
)

// ---- Data types ----
type idempEntry struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	RequestID   string    `json:"request_id"`
	RequestAtMS int64     `json:"request_at_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// IdempotencyMiddleware deduplicates mutating requests that carry
// Ax-Request-Id. The key is method + route + username + request id, so it
// must run after RequireAuth. Requests without the header pass through.
//
// Ax-Request-At is optional; when sent it must be epoch (seconds or ms) or
// RFC3339 with a timezone, and within maxClockSkew of server time.
//
// A 5xx response releases the lock so the client may retry; anything else is
// stored for ttl and replayed verbatim.
func IdempotencyMiddleware(rdb redis.Cmdable, ttl time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			method := req.Method

			// Only enforce on mutating methods
			switch method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			reqID := strings.TrimSpace(req.Header.Get(HeaderRequestID))
			if reqID == "" {
				return next(c)
			}
			if !validReqID(reqID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid Ax-Request-Id format"})
			}

			now := nowUTC()
			reqAt := now
			if raw := req.Header.Get(HeaderRequestAt); strings.TrimSpace(raw) != "" {
				t, err := parseAxRequestAt(raw)
				if err != nil {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
				}
				if !withinSkew(t, now) {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "Ax-Request-At too skewed"})
				}
				reqAt = t
			}

			principal := Username(c)
			if principal == "" {
				principal = "anonymous"
			}

			// Buffer & hash body
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body))
			bhash := bodyHash(body)

			key := buildKey(method, c.Path(), principal, reqID)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			entry := idempEntry{
				InProgress:  true,
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   now,
			}
			ok, err := provisionalSet(ctx, rdb, key, entry)
			if err != nil {
				log.Error().Err(err).Str("key", key).Msg("idempotency store unavailable")
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}
			if !ok {
				// Key exists: body must match, and we may be able to replay
				cur, errLoad := loadEntry(ctx, rdb, key)
				if errLoad != nil && !errors.Is(errLoad, redis.Nil) {
					log.Warn().Err(errLoad).Str("key", key).Msg("idempotency entry unreadable")
				}

				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return c.JSON(http.StatusConflict, map[string]string{"error": "Ax-Request-Id reused with different body"})
				}
				if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
					log.Debug().Str("key", key).Int("status", cur.Code).Msg("idempotent replay")
					return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
				}
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}

			// Call next and record final response
			orig := c.Response().Writer
			rec := &respRecorder{w: orig, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}
			c.Response().Writer = orig

			if rec.code >= http.StatusInternalServerError {
				if err := releaseLock(context.Background(), rdb, key); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("release idempotency lock")
				}
				return nil
			}

			final := idempEntry{
				InProgress:  false,
				Code:        rec.code,
				Body:        rec.buf.Bytes(),
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   nowUTC(),
			}
			if err := saveFinal(context.Background(), rdb, key, final, ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("store idempotent response")
			}
			return nil
		}
	}
}
