// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/stemboard/internal/app/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the collections
// are ready but before the HTTP handler is built. Shared templates must be
// registered here, before BuildHandler boots the engine.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	logger.Info("stemboard starting",
		zap.String("env", coreCfg.Env),
		zap.Duration("notification_ttl", appCfg.NotificationTTL),
		zap.Int("contact_rate_limit", appCfg.ContactRateLimit),
		zap.Duration("contact_rate_window", appCfg.ContactRateWindow),
		zap.Bool("metrics_enabled", appCfg.MetricsEnabled))
	return nil
}
