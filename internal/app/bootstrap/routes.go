// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	groupsfeature "github.com/lbertrand/familyserve/internal/app/features/groups"
	healthfeature "github.com/lbertrand/familyserve/internal/app/features/health"
	groupsvc "github.com/lbertrand/familyserve/internal/app/service/groups"
	"github.com/lbertrand/familyserve/internal/app/store/audit"
	groupstore "github.com/lbertrand/familyserve/internal/app/store/groups"
	"github.com/lbertrand/familyserve/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler. WAFFLE calls this after
// configuration, the DB connection and schema setup have completed.
//
// The store, service and audit logger are built once here and shared by
// every request; all of them are safe for concurrent use because the
// underlying Mongo client is.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	auditStore := audit.New(db)
	auditLogger := auditlog.New(auditStore, logger, appCfg.AuditLog)
	store := groupstore.New(db)
	svc := groupsvc.New(store, auditLogger, logger)

	r := chi.NewRouter()
	r.Mount("/groups", groupsfeature.Routes(groupsfeature.NewHandler(svc, auditStore, logger)))
	r.Mount("/healthz", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	return r, nil
}
