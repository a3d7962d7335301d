package middleware

import (
	"net/http"

	"github.com/prostech/outbound-api/internal/config"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// SecurityHeaders returns a middleware that adds security headers to
// responses. HSTS is sent on every response when enabled since TLS ends at
// the load balancer.
func SecurityHeaders(cfg *config.SecurityConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	opts := secure.Options{
		FrameDeny:             cfg.FrameDeny,
		ContentTypeNosniff:    cfg.ContentTypeNosniff,
		BrowserXssFilter:      cfg.BrowserXSSFilter,
		ContentSecurityPolicy: cfg.ContentSecurityPolicy,
		ReferrerPolicy:        cfg.ReferrerPolicy,
		PermissionsPolicy:     cfg.PermissionsPolicy,
	}
	if cfg.EnableHSTS {
		opts.STSSeconds = int64(cfg.HSTSMaxAge)
		opts.STSIncludeSubdomains = cfg.HSTSIncludeSubdomains
		opts.STSPreload = cfg.HSTSPreload
		opts.ForceSTSHeader = true
	}
	sm := secure.New(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sm.Process(w, r); err != nil {
				logger.Warn("secure headers blocked request", zap.Error(err), zap.String("path", r.URL.Path))
				return
			}
			// Remove headers that leak server information
			w.Header().Del("X-Powered-By")
			w.Header().Del("Server")

			next.ServeHTTP(w, r)
		})
	}
}
