// Package middleware provides ready-made dyngen.Registry interceptors.
package middleware

import (
	"log/slog"
	"time"

	"github.com/broady/dyngen"
)

// LoggingInterceptor creates an interceptor that logs conversions using slog.
// It logs the start and end of each conversion, including duration and error code.
func LoggingInterceptor(logger *slog.Logger) dyngen.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(name string, sample any, next dyngen.ConvertFunc) (dyngen.Value, error) {
		start := time.Now()

		logger.Debug("conversion started",
			slog.String("type", name),
		)

		v, err := next(sample)
		duration := time.Since(start)

		if err != nil {
			logger.Error("conversion failed",
				slog.String("type", name),
				slog.Duration("duration", duration),
				slog.String("code", string(dyngen.CodeOf(err))),
				slog.Any("error", err),
			)
		} else {
			logger.Info("conversion completed",
				slog.String("type", name),
				slog.Duration("duration", duration),
			)
		}

		return v, err
	}
}
