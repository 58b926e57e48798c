package rest

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger - writes one slog record per request instead of gin's default text logger.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		level := slog.LevelInfo
		if ctx.Writer.Status() >= 500 {
			level = slog.LevelError
		}

		logger.Log(ctx.Request.Context(), level, "request",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"latency", time.Since(start),
			"errors", ctx.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}
