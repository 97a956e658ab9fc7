// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for FamilyServe, loaded
// via WAFFLE's config system:
//   - Config files: mongo_uri, mongo_database, etc.
//   - Environment variables: FAMILYSERVE_MONGO_URI, FAMILYSERVE_AUDIT_LOG, etc.
//   - Command-line flags: --mongo_uri, --audit_log, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "familyserve", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},
	{Name: "audit_log", Default: "all", Desc: "Mutation audit logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config. It runs
// early in startup so both WAFFLE and the app have configuration before
// any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FAMILYSERVE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		AuditLog:         appValues.String("audit_log"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation, catching
// configuration errors before any connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.AuditLog {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("audit_log must be one of all/db/log/off, got %q", appCfg.AuditLog)
	}

	return nil
}
