// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown should live here.
type AppConfig struct {
	// UI session cookie
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: stemboard-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // gorilla/csrf auth key, exactly 32 bytes

	// Dashboard behavior
	NotificationTTL time.Duration // How long a banner stays before it dismisses itself
	SeedMockData    bool          // Start with three sample records per collection

	// Public contact form throttling
	ContactRateLimit  int           // Submissions allowed per window, per IP and per email
	ContactRateWindow time.Duration // Length of the throttling window

	// Observability
	MetricsEnabled bool // Mount the Prometheus /metrics endpoint
}
