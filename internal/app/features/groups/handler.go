// internal/app/features/groups/handler.go
package groups

import (
	"encoding/json"
	"errors"
	"net/http"

	groupsvc "github.com/lbertrand/familyserve/internal/app/service/groups"
	"github.com/lbertrand/familyserve/internal/app/store/audit"
	groupstore "github.com/lbertrand/familyserve/internal/app/store/groups"
	"github.com/lbertrand/familyserve/internal/app/system/inputval"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the groups feature.
type Handler struct {
	Svc   *groupsvc.Service
	Audit *audit.Store
	Log   *zap.Logger
}

// NewHandler constructs the groups Handler. It is called from bootstrap
// BuildHandler, where the service and logger are already initialized.
func NewHandler(svc *groupsvc.Service, auditStore *audit.Store, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Audit: auditStore, Log: logger}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("response encode failed", zap.Error(err))
	}
}

// writeError maps service/store errors onto the response taxonomy:
// 400 for validation, 404 for unresolved targets, 409 for duplicate
// names, 500 for propagated store failures.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case inputval.IsValidation(err), errors.Is(err, groupstore.ErrEmptyName):
		h.writeJSON(w, http.StatusBadRequest, errBody(err.Error()))
	case errors.Is(err, mongo.ErrNoDocuments):
		h.writeJSON(w, http.StatusNotFound, errBody("not found"))
	case errors.Is(err, groupstore.ErrDuplicateName):
		h.writeJSON(w, http.StatusConflict, errBody(err.Error()))
	default:
		h.Log.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errBody("internal error"))
	}
}

func errBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// objectIDParam resolves a chi URL parameter into an ObjectID. A
// malformed identifier cannot resolve to anything, so it reports
// not-found rather than a validation failure.
func objectIDParam(raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) notFound(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusNotFound, errBody("not found"))
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errBody(msg))
}
