package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	"github.com/thenoetrevino/todoapi/internal/config"
)

// newCORS restricts browser-origin requests to the configured allow-list
func newCORS(cfg config.CORSConfig, logger *slog.Logger) *cors.Cors {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: cfg.AllowCredentials,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	})
	c.Log = slogCORSLogger{logger: logger}
	return c
}

// slogCORSLogger adapts rs/cors debug output to slog
type slogCORSLogger struct {
	logger *slog.Logger
}

func (l slogCORSLogger) Printf(format string, args ...interface{}) {
	l.logger.Debug("cors", "detail", fmt.Sprintf(format, args...))
}
