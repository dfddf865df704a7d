// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/stemboard/internal/app/store/mockdata"
	"github.com/dalemusser/stemboard/internal/app/store/state"
	"github.com/dalemusser/stemboard/internal/app/system/clock"
	"github.com/dalemusser/stemboard/internal/app/system/ratelimit"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the in-memory collections, seeded with the sample
// dataset unless seed_mock_data is off, and the contact-form limiter that
// shares their lifetime.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if err := ctx.Err(); err != nil {
		return DBDeps{}, err
	}

	ds := mockdata.Empty()
	if appCfg.SeedMockData {
		ds = mockdata.Seed()
	}

	clk := clock.Real{}
	deps := DBDeps{
		State:   state.New(ds),
		Clock:   clk,
		Limiter: ratelimit.NewContactLimiter(appCfg.ContactRateLimit, appCfg.ContactRateWindow, clk),
	}
	logger.Info("in-memory state ready", zap.Bool("seeded", appCfg.SeedMockData))
	return deps, nil
}

// EnsureSchema checks the collections ConnectDB built and logs their sizes.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.State == nil {
		return errors.New("state not initialized")
	}
	fields := make([]zap.Field, 0, len(models.Kinds))
	for _, k := range models.Kinds {
		fields = append(fields, zap.Int(string(k), deps.State.Len(k)))
	}
	logger.Info("collections loaded", fields...)
	return nil
}
