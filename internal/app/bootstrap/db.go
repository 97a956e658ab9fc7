// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/lbertrand/familyserve/internal/app/system/indexes"
	"github.com/lbertrand/familyserve/internal/app/system/validators"
	"go.uber.org/zap"
)

// EnsureSchema reconciles indexes and attaches the groups collection's
// JSON-Schema validator. Both are idempotent, so startup after a crash
// or upgrade converges to the same state.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("index reconciliation failed", zap.Error(err))
		return err
	}
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("collection validators failed", zap.Error(err))
		return err
	}
	return nil
}
