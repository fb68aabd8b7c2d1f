package http_requestid_middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-Id"
	ContextKey      = "request_id"
)

type Middleware struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Middleware{logger: logger}
}

// Tag assigns every request a UUID (reusing an inbound X-Request-Id if
// present), echoes it on the response, and writes one access log line.
func (m *Middleware) Tag() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(ContextKey, id)
		ctx.Header(HeaderRequestID, id)

		start := time.Now()
		ctx.Next()

		m.logger.Info("request",
			slog.String("request_id", id),
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.Request.URL.Path),
			slog.Int("status", ctx.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}
