// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for stemboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_key, seed_mock_data, etc.
//   - Environment variables: STEMBOARD_SESSION_KEY, STEMBOARD_SEED_MOCK_DATA, etc.
//   - Command-line flags: --session_key, --seed_mock_data, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "stemboard-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "csrf_key", Default: "dev-only-csrf-key-0123456789abcd", Desc: "CSRF auth key (exactly 32 bytes)"},

	// Dashboard behavior
	{Name: "notification_ttl", Default: "5s", Desc: "Banner auto-dismiss delay (e.g., 5s, 1m)"},
	{Name: "seed_mock_data", Default: true, Desc: "Seed three sample records per collection at startup"},

	// Contact form throttling
	{Name: "contact_rate_limit", Default: 5, Desc: "Contact submissions allowed per window, per IP and per email"},
	{Name: "contact_rate_window", Default: "1m", Desc: "Contact throttling window (e.g., 1m, 10m)"},

	// Observability
	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},
}

const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// Defaults used when a duration key is present but unparseable.
const (
	defaultNotificationTTL   = 5 * time.Second
	defaultContactRateWindow = time.Minute
)

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STEMBOARD_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STEMBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		CSRFKey:       appValues.String("csrf_key"),

		NotificationTTL: appValues.Duration("notification_ttl", defaultNotificationTTL),
		SeedMockData:    appValues.Bool("seed_mock_data"),

		ContactRateLimit:  appValues.Int("contact_rate_limit"),
		ContactRateWindow: appValues.Duration("contact_rate_window", defaultContactRateWindow),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return err
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		logger.Warn("production is running with the development session key")
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	var errs []error
	if appCfg.SessionKey == "" {
		errs = append(errs, errors.New("session_key must not be empty"))
	}
	if len(appCfg.CSRFKey) != 32 {
		errs = append(errs, fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey)))
	}
	if appCfg.NotificationTTL <= 0 {
		errs = append(errs, fmt.Errorf("notification_ttl must be positive, got %s", appCfg.NotificationTTL))
	}
	if appCfg.ContactRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("contact_rate_limit must be positive, got %d", appCfg.ContactRateLimit))
	}
	if appCfg.ContactRateWindow <= 0 {
		errs = append(errs, fmt.Errorf("contact_rate_window must be positive, got %s", appCfg.ContactRateWindow))
	}
	return errors.Join(errs...)
}
