package middleware

import (
	"hotel/shared/constant"
	"net/http"

	"github.com/go-chi/cors"
)

var (
	defaultAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	defaultAllowedHeaders = []string{"Accept", constant.RequestHeaderContentType, constant.RequestHeaderRequestID}
)

// CORS allows every origin unless APP_CORS_ENABLE narrows it to the
// configured lists.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	corsCfg := a.config.App.CORS

	if !corsCfg.Enable {
		return cors.AllowAll().Handler
	}

	options := cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		ExposedHeaders:   []string{constant.RequestHeaderRequestID, constant.RequestHeaderRateLimit, constant.RequestHeaderRateLimitRemaining},
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAgeSeconds,
	}

	if len(options.AllowedMethods) == 0 {
		options.AllowedMethods = defaultAllowedMethods
	}

	if len(options.AllowedHeaders) == 0 {
		options.AllowedHeaders = defaultAllowedHeaders
	}

	return cors.Handler(options)
}
